package models

import "time"

// Payment rows are immutable once recorded.
type Payment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null" json:"customerId"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `gorm:"autoCreateTime" json:"paymentDate"`
	Customer    *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;references:ID"`
}
