package dto

import (
	"time"

	"paytrack/models"
)

type CreateCustomerRequest struct {
	Name              string  `json:"name" binding:"required"`
	Contact           string  `json:"contact"`
	OutstandingAmount float64 `json:"outstandingAmount"`
	DueDate           string  `json:"dueDate" binding:"required"`
	PaymentStatus     string  `json:"paymentStatus"`
}

type UpdateCustomerRequest struct {
	Name string `json:"name"`
}

type CustomerResponse struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Contact           string    `json:"contact"`
	OutstandingAmount float64   `json:"outstandingAmount"`
	DueDate           time.Time `json:"dueDate"`
	PaymentStatus     string    `json:"paymentStatus"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ScoredCustomer carries a search relevance score alongside the row.
type ScoredCustomer struct {
	Customer models.Customer `json:"customer"`
	Score    int             `json:"score"`
}
