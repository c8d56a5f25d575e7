package models

import "time"

type Customer struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name              string    `gorm:"not null" json:"name"`
	Contact           string    `json:"contact"`
	OutstandingAmount float64   `json:"outstandingAmount"`
	DueDate           time.Time `json:"dueDate"`
	PaymentStatus     string    `gorm:"default:'Pending'" json:"paymentStatus"`
	Payments          []Payment `json:"payments,omitempty" gorm:"foreignKey:CustomerID"`
}
