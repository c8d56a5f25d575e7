package controllers

import (
	"fmt"

	"paytrack/response"
	"paytrack/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ImportController struct {
	db *gorm.DB
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{db: db}
}

// UploadCustomers bulk-imports customers from an uploaded spreadsheet.
// The batch is transactional: one bad row rolls back all of it.
func (ctrl *ImportController) UploadCustomers(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Could not open file")
		return
	}
	defer src.Close()

	customers, err := services.ParseCustomerSheet(src)
	if err != nil {
		response.StorageError(c, err)
		return
	}

	if err := services.ImportCustomers(ctrl.db, customers); err != nil {
		response.StorageError(c, err)
		return
	}

	response.Success(c, gin.H{
		"message": fmt.Sprintf("Imported %d customers", len(customers)),
	})
}
