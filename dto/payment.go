package dto

type CreatePaymentRequest struct {
	CustomerID uint    `json:"customerId" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
}
