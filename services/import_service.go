package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"paytrack/constants"
	"paytrack/models"
	"paytrack/utils"
	pkgvalidator "paytrack/validator"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// CustomerImportRow is one parsed spreadsheet row
type CustomerImportRow struct {
	Name              string    `validate:"required"`
	Contact           string    `validate:"required"`
	OutstandingAmount float64   `validate:"gte=0"`
	DueDate           time.Time `validate:"required"`
	PaymentStatus     string    `validate:"required"`
}

var expectedHeader = []string{"Name", "Contact", "Outstanding Amount", "Due Date", "Payment Status"}

// ParseCustomerSheet reads the first sheet of an uploaded xlsx file and
// returns the customer rows. Any malformed row fails the whole parse so
// the caller never inserts a partial batch.
func ParseCustomerSheet(r io.Reader) ([]models.Customer, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("spreadsheet is empty")
	}

	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	var customers []models.Customer
	for i, row := range rows[1:] {
		rowNum := i + 2

		parsed, err := parseRow(row)
		if err != nil {
			utils.LogError("customer import: row %d rejected: %v", rowNum, err)
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		if err := validate.Struct(parsed); err != nil {
			utils.LogError("customer import: row %d failed validation: %v", rowNum, err)
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		customers = append(customers, models.Customer{
			Name:              parsed.Name,
			Contact:           parsed.Contact,
			OutstandingAmount: parsed.OutstandingAmount,
			DueDate:           parsed.DueDate,
			PaymentStatus:     parsed.PaymentStatus,
			CreatedAt:         time.Now(),
			UpdatedAt:         time.Now(),
		})
	}

	if len(customers) == 0 {
		return nil, fmt.Errorf("spreadsheet contains no customer rows")
	}

	return customers, nil
}

func checkHeader(header []string) error {
	if len(header) < len(expectedHeader) {
		return fmt.Errorf("header row must be: %s", strings.Join(expectedHeader, ", "))
	}
	for i, want := range expectedHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("unexpected column %d: got %q, want %q", i+1, header[i], want)
		}
	}
	return nil
}

func parseRow(row []string) (CustomerImportRow, error) {
	var parsed CustomerImportRow

	// GetRows drops trailing empty cells, so pad short rows back out;
	// required columns are still caught by parsing and validation.
	for len(row) < len(expectedHeader) {
		row = append(row, "")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return parsed, fmt.Errorf("invalid outstanding amount %q", row[2])
	}

	dueDate, err := time.Parse(pkgvalidator.DueDateLayout, strings.TrimSpace(row[3]))
	if err != nil {
		return parsed, fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", row[3])
	}

	status := strings.TrimSpace(row[4])
	if status == "" {
		status = constants.PaymentStatusPending
	}

	parsed = CustomerImportRow{
		Name:              strings.TrimSpace(row[0]),
		Contact:           strings.TrimSpace(row[1]),
		OutstandingAmount: amount,
		DueDate:           dueDate,
		PaymentStatus:     status,
	}
	return parsed, nil
}

// ImportCustomers inserts the batch inside one transaction: all rows or none.
func ImportCustomers(db *gorm.DB, customers []models.Customer) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range customers {
			if err := tx.Create(&customers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
