package services

import (
	"testing"

	"paytrack/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "acme", NormalizeInput("  Acme "))
	assert.Equal(t, "cafe du monde", NormalizeInput("Café du Monde"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, CalculateSimilarity("acme", "acme"))
	assert.Equal(t, 1.0, CalculateSimilarity("", ""))
	assert.Less(t, CalculateSimilarity("acme", "globex"), 0.5)
	assert.Greater(t, CalculateSimilarity("acme corp", "acme corp."), 0.7)
}

func TestParsePaymentStatusQuery(t *testing.T) {
	assert.Equal(t, "Pending", ParsePaymentStatusQuery("unpaid customers"))
	assert.Equal(t, "Completed", ParsePaymentStatusQuery("paid"))
	assert.Equal(t, "", ParsePaymentStatusQuery("acme"))
}

func TestFilterAndScoreCustomers_RanksExactNameFirst(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Globex", PaymentStatus: "Pending"},
		{ID: 2, Name: "Acme", PaymentStatus: "Pending"},
		{ID: 3, Name: "Acme Corp", PaymentStatus: "Completed"},
	}

	scored := FilterAndScoreCustomers("acme", customers)

	assert.NotEmpty(t, scored)
	assert.Equal(t, "Acme", scored[0].Customer.Name)
	for _, s := range scored {
		assert.NotEqual(t, uint(1), s.Customer.ID)
	}
}

func TestFilterAndScoreCustomers_NoMatches(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Globex", PaymentStatus: "Pending"},
	}

	scored := FilterAndScoreCustomers("zzzzzz", customers)

	assert.Empty(t, scored)
}
