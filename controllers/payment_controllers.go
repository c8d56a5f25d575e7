package controllers

import (
	"errors"

	"paytrack/constants"
	"paytrack/dto"
	apperrors "paytrack/errors"
	"paytrack/models"
	"paytrack/response"
	"paytrack/services"
	"paytrack/services/notification"
	"paytrack/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentController struct {
	db       *gorm.DB
	cache    services.CacheInvalidator
	notifier notification.Service
}

func NewPaymentController(db *gorm.DB, cache services.CacheInvalidator, notifier notification.Service) *PaymentController {
	return &PaymentController{
		db:       db,
		cache:    cache,
		notifier: notifier,
	}
}

// CreatePayment records a payment, flips the customer to Completed and
// emits a payment_received notification.
func (ctrl *PaymentController) CreatePayment(c *gin.Context) {
	var request dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateAmount(request.Amount); err != nil {
		response.ValidationError(c, "Amount must be greater than zero")
		return
	}

	var customer models.Customer
	if err := ctrl.db.First(&customer, request.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.StorageError(c, err)
		return
	}

	payment, err := services.RecordPayment(ctrl.db, request.CustomerID, request.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrCustomerNotFound) {
			response.NotFound(c)
			return
		}
		response.StorageError(c, err)
		return
	}

	// the status flip changes what the customer listing returns
	if ctrl.cache != nil {
		_ = ctrl.cache.Invalidate()
	}

	_ = ctrl.notifier.Emit(constants.NotificationPaymentReceived,
		notification.PaymentReceivedMessage(customer.Name, payment.Amount))

	response.Success(c, gin.H{
		"message": "Payment recorded",
		"payment": payment,
	})
}
