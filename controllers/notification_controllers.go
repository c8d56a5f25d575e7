package controllers

import (
	"time"

	"paytrack/config"
	"paytrack/models"
	"paytrack/response"
	"paytrack/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type NotificationController struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewNotificationController(db *gorm.DB, rdb *redis.Client) *NotificationController {
	return &NotificationController{
		db:  db,
		rdb: rdb,
	}
}

// GetAllNotifications lists notifications, newest first
func (ctrl *NotificationController) GetAllNotifications(c *gin.Context) {
	if ctrl.rdb != nil {
		var cached []models.Notification
		if err := services.GetFromRedis(config.Ctx, ctrl.rdb, services.NotificationListCacheKey, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	var notifications []models.Notification
	if err := ctrl.db.Order("created_at DESC").Find(&notifications).Error; err != nil {
		response.StorageError(c, err)
		return
	}

	if ctrl.rdb != nil {
		_ = services.SetToRedis(config.Ctx, ctrl.rdb, services.NotificationListCacheKey, notifications, time.Minute)
	}

	response.Success(c, notifications)
}
