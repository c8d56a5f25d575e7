package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func buildSheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			assert.NoError(t, err)
			assert.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)
	return buf
}

var headerRow = []interface{}{"Name", "Contact", "Outstanding Amount", "Due Date", "Payment Status"}

func TestParseCustomerSheet_ValidRows(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		headerRow,
		{"Acme", "555-0100", "500", "2020-01-01", "Pending"},
		{"Globex", "555-0101", "120.50", "2030-06-15", "Completed"},
	})

	customers, err := ParseCustomerSheet(buf)
	assert.NoError(t, err)
	assert.Len(t, customers, 2)

	assert.Equal(t, "Acme", customers[0].Name)
	assert.Equal(t, "555-0100", customers[0].Contact)
	assert.Equal(t, 500.0, customers[0].OutstandingAmount)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), customers[0].DueDate)
	assert.Equal(t, "Pending", customers[0].PaymentStatus)

	assert.Equal(t, 120.5, customers[1].OutstandingAmount)
	assert.Equal(t, "Completed", customers[1].PaymentStatus)
}

func TestParseCustomerSheet_MalformedAmountFailsWholeBatch(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		headerRow,
		{"Acme", "555-0100", "500", "2020-01-01", "Pending"},
		{"Globex", "555-0101", "not-a-number", "2030-06-15", "Pending"},
	})

	customers, err := ParseCustomerSheet(buf)
	assert.Error(t, err)
	assert.Nil(t, customers)
	assert.Contains(t, err.Error(), "row 3")
}

func TestParseCustomerSheet_MalformedDateFailsWholeBatch(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		headerRow,
		{"Acme", "555-0100", "500", "01/01/2020", "Pending"},
	})

	_, err := ParseCustomerSheet(buf)
	assert.Error(t, err)
}

func TestParseCustomerSheet_WrongHeader(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		{"Customer", "Phone", "Amount", "Date", "Status"},
		{"Acme", "555-0100", "500", "2020-01-01", "Pending"},
	})

	_, err := ParseCustomerSheet(buf)
	assert.Error(t, err)
}

func TestParseCustomerSheet_NoDataRows(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{headerRow})

	_, err := ParseCustomerSheet(buf)
	assert.Error(t, err)
}

func TestParseCustomerSheet_DefaultsEmptyStatusToPending(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		headerRow,
		{"Acme", "555-0100", "500", "2020-01-01", ""},
	})

	customers, err := ParseCustomerSheet(buf)
	assert.NoError(t, err)
	assert.Len(t, customers, 1)
	assert.Equal(t, "Pending", customers[0].PaymentStatus)
}
