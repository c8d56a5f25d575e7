package services

import (
	"sync"
	"time"

	"paytrack/constants"
	"paytrack/models"
	"paytrack/services/logger"
	"paytrack/services/notification"

	"gorm.io/gorm"
)

// CustomerSource yields the customers whose payment is pending and past due.
type CustomerSource interface {
	OverdueCustomers() ([]models.Customer, error)
}

// OverdueService runs one scan per timer tick. A customer stays in the
// result set until its status changes, so it is re-notified every tick.
type OverdueService struct {
	source   CustomerSource
	notifier notification.Service
	logger   logger.Logger
}

func NewOverdueService(source CustomerSource, notifier notification.Service, log logger.Logger) *OverdueService {
	return &OverdueService{
		source:   source,
		notifier: notifier,
		logger:   log,
	}
}

// NotifyOverdueCustomers queries the overdue set and emits one
// payment_overdue notification per match. Each emit runs in its own
// goroutine; a failing emit is logged and never blocks its siblings.
// A failing query skips the whole tick.
func (s *OverdueService) NotifyOverdueCustomers() error {
	customers, err := s.source.OverdueCustomers()
	if err != nil {
		s.logger.Error("overdue scan query failed, skipping this run: %v", err)
		return err
	}

	if len(customers) == 0 {
		s.logger.Debug("overdue scan found no pending customers past due")
		return nil
	}

	var wg sync.WaitGroup
	for _, customer := range customers {
		wg.Add(1)
		go func(customer models.Customer) {
			defer wg.Done()
			message := notification.PaymentOverdueMessage(customer.Name, customer.OutstandingAmount)
			if err := s.notifier.Emit(constants.NotificationPaymentOverdue, message); err != nil {
				s.logger.Error("failed to notify overdue customer %d: %v", customer.ID, err)
			}
		}(customer)
	}
	wg.Wait()

	s.logger.Info("overdue scan notified %d customers", len(customers))
	return nil
}

// GormCustomerSource reads the overdue set from the shared gorm handle.
type GormCustomerSource struct {
	db *gorm.DB
}

func NewGormCustomerSource(db *gorm.DB) *GormCustomerSource {
	return &GormCustomerSource{db: db}
}

func (g *GormCustomerSource) OverdueCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	err := g.db.
		Where("payment_status = ? AND due_date < ?", constants.PaymentStatusPending, time.Now()).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}
