package validator

import (
	"regexp"
	"time"

	"paytrack/errors"
	"paytrack/models"
)

// DueDateLayout is the wire format for due dates.
const DueDateLayout = "2006-01-02"

// ValidateCustomer validates a customer row before it is written
func ValidateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Name must not be empty", nil)
	}

	if customer.OutstandingAmount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Outstanding amount must not be negative", nil)
	}

	if customer.DueDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Due date must not be empty", nil)
	}

	if customer.PaymentStatus == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Payment status must not be empty", nil)
	}

	return nil
}

// ValidateAmount validates a payment amount
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Amount must be greater than zero", nil)
	}
	return nil
}

// ParseDueDate parses a due date in the wire format
func ParseDueDate(value string) (time.Time, error) {
	dueDate, err := time.Parse(DueDateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid due date format, expected YYYY-MM-DD", err)
	}
	return dueDate, nil
}

// ValidateEmail checks that email is well formed
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email", nil)
	}
	return nil
}

// ValidatePassword checks the minimum password length
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Password must be at least 6 characters", nil)
	}
	return nil
}
