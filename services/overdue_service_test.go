package services

import (
	"errors"
	"testing"
	"time"

	"paytrack/models"
	"paytrack/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCustomerSource is a mock implementation of CustomerSource.
type MockCustomerSource struct {
	mock.Mock
}

func (m *MockCustomerSource) OverdueCustomers() ([]models.Customer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

// MockNotifier is a mock implementation of notification.Service.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Emit(notifType, message string) error {
	args := m.Called(notifType, message)
	return args.Error(0)
}

func overdueCustomer(id uint, name string, amount float64) models.Customer {
	return models.Customer{
		ID:                id,
		Name:              name,
		OutstandingAmount: amount,
		DueDate:           time.Now().Add(-24 * time.Hour),
		PaymentStatus:     "Pending",
	}
}

func TestNotifyOverdueCustomers_EmitsOncePerMatch(t *testing.T) {
	source := new(MockCustomerSource)
	notifier := new(MockNotifier)

	source.On("OverdueCustomers").Return([]models.Customer{
		overdueCustomer(1, "Acme", 500),
		overdueCustomer(2, "Globex", 120),
	}, nil)
	notifier.On("Emit", "payment_overdue", mock.MatchedBy(func(msg string) bool {
		return msg == "Payment overdue for customer Acme: 500.00 outstanding"
	})).Return(nil).Once()
	notifier.On("Emit", "payment_overdue", mock.MatchedBy(func(msg string) bool {
		return msg == "Payment overdue for customer Globex: 120.00 outstanding"
	})).Return(nil).Once()

	svc := NewOverdueService(source, notifier, logger.NewDefaultLogger(logger.ErrorLevel))
	err := svc.NotifyOverdueCustomers()

	assert.NoError(t, err)
	source.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestNotifyOverdueCustomers_QueryFailureSkipsTick(t *testing.T) {
	source := new(MockCustomerSource)
	notifier := new(MockNotifier)

	source.On("OverdueCustomers").Return(nil, errors.New("connection reset"))

	svc := NewOverdueService(source, notifier, logger.NewDefaultLogger(logger.ErrorLevel))
	err := svc.NotifyOverdueCustomers()

	assert.Error(t, err)
	notifier.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

func TestNotifyOverdueCustomers_OneFailureDoesNotBlockOthers(t *testing.T) {
	source := new(MockCustomerSource)
	notifier := new(MockNotifier)

	source.On("OverdueCustomers").Return([]models.Customer{
		overdueCustomer(1, "Acme", 500),
		overdueCustomer(2, "Globex", 120),
		overdueCustomer(3, "Initech", 75),
	}, nil)
	notifier.On("Emit", "payment_overdue", mock.MatchedBy(func(msg string) bool {
		return msg == "Payment overdue for customer Globex: 120.00 outstanding"
	})).Return(errors.New("insert failed"))
	notifier.On("Emit", "payment_overdue", mock.Anything).Return(nil)

	svc := NewOverdueService(source, notifier, logger.NewDefaultLogger(logger.ErrorLevel))
	err := svc.NotifyOverdueCustomers()

	// a single emit failure is logged, not propagated
	assert.NoError(t, err)
	notifier.AssertNumberOfCalls(t, "Emit", 3)
}

func TestNotifyOverdueCustomers_NoMatchesNoEmits(t *testing.T) {
	source := new(MockCustomerSource)
	notifier := new(MockNotifier)

	source.On("OverdueCustomers").Return([]models.Customer{}, nil)

	svc := NewOverdueService(source, notifier, logger.NewDefaultLogger(logger.ErrorLevel))
	err := svc.NotifyOverdueCustomers()

	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}
