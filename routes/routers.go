package routes

import (
	"paytrack/controllers"
	middlewares "paytrack/middleware"
	"paytrack/services"
	"paytrack/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, notifier notification.Service) {

	customerController := controllers.NewCustomerController(db, redisCli, notifier)
	paymentController := controllers.NewPaymentController(db,
		services.RedisInvalidator{Client: redisCli, Key: services.CustomerListCacheKey}, notifier)
	notificationController := controllers.NewNotificationController(db, redisCli)
	importController := controllers.NewImportController(db)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)

	v1.GET("/customers", middlewares.AuthMiddleware(), customerController.GetCustomers)
	v1.GET("/customerSearch", middlewares.AuthMiddleware(), customerController.SearchCustomers)
	v1.POST("/customers", middlewares.AuthMiddleware(), customerController.CreateCustomer)
	v1.GET("/customers/:id", middlewares.AuthMiddleware(), customerController.GetCustomerDetail)
	v1.PUT("/customers/:id", middlewares.AuthMiddleware(), customerController.UpdateCustomer)
	v1.DELETE("/customers/:id", middlewares.AuthMiddleware(), customerController.DeleteCustomer)

	v1.POST("/payments", middlewares.AuthMiddleware(), paymentController.CreatePayment)

	v1.GET("/notifications", middlewares.AuthMiddleware(), notificationController.GetAllNotifications)

	v1.POST("/upload-customers", middlewares.AuthMiddleware(), importController.UploadCustomers)
}
