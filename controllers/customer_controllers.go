package controllers

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"paytrack/config"
	"paytrack/constants"
	"paytrack/dto"
	"paytrack/models"
	"paytrack/response"
	"paytrack/services"
	"paytrack/services/notification"
	"paytrack/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CustomerController struct {
	db       *gorm.DB
	rdb      *redis.Client
	notifier notification.Service
}

func NewCustomerController(db *gorm.DB, rdb *redis.Client, notifier notification.Service) *CustomerController {
	return &CustomerController{
		db:       db,
		rdb:      rdb,
		notifier: notifier,
	}
}

// CreateCustomer creates one customer and emits a customer_added notification
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var request dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	dueDate, err := validator.ParseDueDate(request.DueDate)
	if err != nil {
		response.BadRequest(c, "Invalid due date format, expected YYYY-MM-DD")
		return
	}

	status := request.PaymentStatus
	if status == "" {
		status = constants.PaymentStatusPending
	}

	customer := models.Customer{
		Name:              request.Name,
		Contact:           request.Contact,
		OutstandingAmount: request.OutstandingAmount,
		DueDate:           dueDate,
		PaymentStatus:     status,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := validator.ValidateCustomer(&customer); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := ctrl.db.Create(&customer).Error; err != nil {
		response.StorageError(c, err)
		return
	}

	ctrl.invalidateCache()

	// the customer row is already committed, the notification is best effort
	_ = ctrl.notifier.Emit(constants.NotificationCustomerAdded, notification.CustomerAddedMessage(customer.Name))

	response.Success(c, customer)
}

// GetCustomers lists customers with paging and optional name/status filters
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	statusFilter := c.Query("status")

	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	// Unfiltered first page is served from cache when possible
	cacheable := page == 0 && nameFilter == "" && statusFilter == "" && limit == 10
	if cacheable && ctrl.rdb != nil {
		var cached []dto.CustomerResponse
		if err := services.GetFromRedis(config.Ctx, ctrl.rdb, services.CustomerListCacheKey, &cached); err == nil && len(cached) > 0 {
			response.SuccessWithPagination(c, cached, page, limit, len(cached))
			return
		}
	}

	tx := ctrl.db.Model(&models.Customer{})
	if nameFilter != "" {
		decodedNameFilter, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ?", "%"+decodedNameFilter+"%")
	}
	if statusFilter != "" {
		tx = tx.Where("payment_status = ?", statusFilter)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.StorageError(c, err)
		return
	}

	var customers []models.Customer
	if err := tx.Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&customers).Error; err != nil {
		response.StorageError(c, err)
		return
	}

	var customerResponses []dto.CustomerResponse
	for _, customer := range customers {
		customerResponses = append(customerResponses, dto.CustomerResponse{
			ID:                customer.ID,
			Name:              customer.Name,
			Contact:           customer.Contact,
			OutstandingAmount: customer.OutstandingAmount,
			DueDate:           customer.DueDate,
			PaymentStatus:     customer.PaymentStatus,
			CreatedAt:         customer.CreatedAt,
			UpdatedAt:         customer.UpdatedAt,
		})
	}

	if cacheable && ctrl.rdb != nil {
		_ = services.SetToRedis(config.Ctx, ctrl.rdb, services.CustomerListCacheKey, customerResponses, 5*time.Minute)
	}

	response.SuccessWithPagination(c, customerResponses, page, limit, int(total))
}

// GetCustomerDetail returns one customer by id
func (ctrl *CustomerController) GetCustomerDetail(c *gin.Context) {
	var customer models.Customer
	if err := ctrl.db.Where("id = ?", c.Param("id")).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.StorageError(c, err)
		return
	}

	response.Success(c, customer)
}

// UpdateCustomer updates the customer's name only
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	var request dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if request.Name == "" {
		response.ValidationError(c, "Name is required")
		return
	}

	var customer models.Customer
	if err := ctrl.db.First(&customer, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.StorageError(c, err)
		return
	}

	customer.Name = request.Name
	customer.UpdatedAt = time.Now()

	if err := ctrl.db.Save(&customer).Error; err != nil {
		response.StorageError(c, err)
		return
	}

	ctrl.invalidateCache()

	response.Success(c, customer)
}

// DeleteCustomer removes one customer by id
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	if err := ctrl.db.Delete(&models.Customer{}, c.Param("id")).Error; err != nil {
		response.StorageError(c, err)
		return
	}

	ctrl.invalidateCache()

	response.Success(c, gin.H{"message": "Customer deleted"})
}

// SearchCustomers ranks customers against a free-text query
func (ctrl *CustomerController) SearchCustomers(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.BadRequest(c, "query is required")
		return
	}

	var customers []models.Customer
	if err := ctrl.db.Find(&customers).Error; err != nil {
		response.StorageError(c, err)
		return
	}

	scored := services.FilterAndScoreCustomers(query, customers)

	response.Success(c, scored)
}

func (ctrl *CustomerController) invalidateCache() {
	if ctrl.rdb == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, ctrl.rdb, services.CustomerListCacheKey)
}
