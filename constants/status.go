package constants

// Payment status. Stored as free text; these are the two values the
// system itself writes.
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
)

// Notification types
const (
	NotificationCustomerAdded   = "customer_added"
	NotificationPaymentReceived = "payment_received"
	NotificationPaymentOverdue  = "payment_overdue"
)
