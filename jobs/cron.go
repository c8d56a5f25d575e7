package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// OverdueNotifier runs one overdue-payment scan
type OverdueNotifier interface {
	NotifyOverdueCustomers() error
}

var overdueNotifier OverdueNotifier

// SetOverdueNotifier installs the OverdueNotifier implementation
func SetOverdueNotifier(notifier OverdueNotifier) {
	overdueNotifier = notifier
}

// InitCronJobs registers the recurring jobs and starts the scheduler
func InitCronJobs(c *cron.Cron) error {
	// Hourly overdue-payment scan
	_, err := c.AddFunc("@every 1h", func() {
		log.Printf("Running overdue payment scan at: %v", time.Now())
		if overdueNotifier == nil {
			log.Printf("Overdue notifier is not configured, skipping scan")
			return
		}
		if err := overdueNotifier.NotifyOverdueCustomers(); err != nil {
			log.Printf("Overdue payment scan failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
