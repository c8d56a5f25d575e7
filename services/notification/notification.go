package notification

import (
	"fmt"
	"time"

	"paytrack/models"
	"paytrack/services/logger"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

// Service emits a notification: one durable write, then a best-effort push
// to every connected subscriber.
type Service interface {
	Emit(notifType, message string) error
}

// Recorder persists notification rows.
type Recorder interface {
	Record(n *models.Notification) error
}

// Broadcaster pushes a payload to all open subscriber connections.
// *melody.Melody satisfies this directly.
type Broadcaster interface {
	Broadcast(msg []byte) error
}

// Invalidator drops the cached notification listing once a new row lands,
// so the listing endpoint cannot serve a stale page.
type Invalidator interface {
	Invalidate() error
}

type payload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type NotifyService struct {
	recorder    Recorder
	broadcaster Broadcaster
	invalidator Invalidator
	logger      logger.Logger
}

// NewNotifyService wires the emitter. invalidator may be nil when no cache
// is in front of the listing.
func NewNotifyService(recorder Recorder, broadcaster Broadcaster, invalidator Invalidator, log logger.Logger) *NotifyService {
	return &NotifyService{
		recorder:    recorder,
		broadcaster: broadcaster,
		invalidator: invalidator,
		logger:      log,
	}
}

// Emit inserts the notification row, drops the cached listing, then
// broadcasts {type, message} to all
// currently connected subscribers. An insert failure aborts the emit; a
// broadcast failure is logged and does not fail the emit. Subscribers that
// connect later only see the row through the listing endpoint.
func (s *NotifyService) Emit(notifType, message string) error {
	n := &models.Notification{
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := s.recorder.Record(n); err != nil {
		s.logger.Error("failed to persist %s notification: %v", notifType, err)
		return err
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(); err != nil {
			s.logger.Error("failed to invalidate notification cache: %v", err)
		}
	}

	body, err := json.Marshal(payload{Type: notifType, Message: message})
	if err != nil {
		s.logger.Error("failed to serialize %s notification: %v", notifType, err)
		return nil
	}

	if err := s.broadcaster.Broadcast(body); err != nil {
		s.logger.Error("broadcast of %s notification failed: %v", notifType, err)
	}

	return nil
}

// GormRecorder persists notifications through the shared gorm handle.
type GormRecorder struct {
	db *gorm.DB
}

func NewGormRecorder(db *gorm.DB) *GormRecorder {
	return &GormRecorder{db: db}
}

func (r *GormRecorder) Record(n *models.Notification) error {
	return r.db.Create(n).Error
}

// CustomerAddedMessage builds the push text for a new customer
func CustomerAddedMessage(name string) string {
	return fmt.Sprintf("Customer %s has been added", name)
}

// PaymentReceivedMessage builds the push text for a recorded payment
func PaymentReceivedMessage(name string, amount float64) string {
	return fmt.Sprintf("Payment of %.2f received from customer %s", amount, name)
}

// PaymentOverdueMessage builds the push text for an overdue customer
func PaymentOverdueMessage(name string, amount float64) string {
	return fmt.Sprintf("Payment overdue for customer %s: %.2f outstanding", name, amount)
}
