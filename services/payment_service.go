package services

import (
	"errors"
	"time"

	"paytrack/constants"
	apperrors "paytrack/errors"
	"paytrack/models"

	"gorm.io/gorm"
)

// RecordPayment inserts one payment row and flips the customer's status to
// Completed in a single transaction.
func RecordPayment(db *gorm.DB, customerID uint, amount float64) (models.Payment, error) {
	var customer models.Customer
	if err := db.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, apperrors.ErrCustomerNotFound
		}
		return models.Payment{}, err
	}

	payment := models.Payment{
		CustomerID:  customerID,
		Amount:      amount,
		PaymentDate: time.Now(),
	}

	tx := db.Begin()
	if tx.Error != nil {
		return models.Payment{}, tx.Error
	}

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return models.Payment{}, err
	}

	if err := tx.Model(&models.Customer{}).
		Where("id = ?", customerID).
		Update("payment_status", constants.PaymentStatusCompleted).Error; err != nil {
		tx.Rollback()
		return models.Payment{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return models.Payment{}, err
	}

	return payment, nil
}
