package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paytrack/constants"
	"paytrack/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate() error {
	args := m.Called()
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Emit(notifType, message string) error {
	args := m.Called(notifType, message)
	return args.Error(0)
}

func newPaymentTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *MockInvalidator, *MockNotifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Customer{}, &models.Payment{}); err != nil {
		t.Fatalf("failed to migrate test tables: %v", err)
	}

	invalidator := new(MockInvalidator)
	notifier := new(MockNotifier)

	router := gin.New()
	ctrl := NewPaymentController(db, invalidator, notifier)
	router.POST("/payments", ctrl.CreatePayment)

	return router, db, invalidator, notifier
}

func TestCreatePayment_DropsCustomerListingCache(t *testing.T) {
	router, db, invalidator, notifier := newPaymentTestRouter(t)

	customer := models.Customer{
		Name:          "Acme",
		DueDate:       time.Now().AddDate(0, 0, 7),
		PaymentStatus: constants.PaymentStatusPending,
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}

	invalidator.On("Invalidate").Return(nil)
	notifier.On("Emit", constants.NotificationPaymentReceived, mock.Anything).Return(nil)

	body := []byte(`{"customerId": 1, "amount": 250}`)
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	invalidator.AssertNumberOfCalls(t, "Invalidate", 1)
	notifier.AssertExpectations(t)

	var reloaded models.Customer
	assert.NoError(t, db.First(&reloaded, customer.ID).Error)
	assert.Equal(t, constants.PaymentStatusCompleted, reloaded.PaymentStatus)
}

func TestCreatePayment_NoInvalidationWhenCustomerMissing(t *testing.T) {
	router, _, invalidator, notifier := newPaymentTestRouter(t)

	body := []byte(`{"customerId": 42, "amount": 250}`)
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	invalidator.AssertNotCalled(t, "Invalidate")
	notifier.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}
