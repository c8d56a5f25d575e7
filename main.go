package main

import (
	"log"
	"net/http"
	"os"

	"paytrack/config"
	"paytrack/jobs"
	"paytrack/models"
	"paytrack/routes"
	"paytrack/services"
	"paytrack/services/logger"
	"paytrack/services/notification"

	"github.com/gin-gonic/gin"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.User{}, &models.Customer{}, &models.Payment{}, &models.Notification{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	notifier := notification.NewNotifyService(
		notification.NewGormRecorder(config.DB),
		m,
		services.RedisInvalidator{Client: config.RedisClient, Key: services.NotificationListCacheKey},
		appLogger,
	)

	overdueService := services.NewOverdueService(
		services.NewGormCustomerSource(config.DB),
		notifier,
		appLogger,
	)
	jobs.SetOverdueNotifier(overdueService)

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, notifier)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
