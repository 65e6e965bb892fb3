package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/features/notifications/model"
	helper "absenku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/notifications — 50 notifikasi terbaru
func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	var rows []model.NotificationModel
	if err := ctrl.DB.Order("notification_created_at DESC").Limit(50).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}
	return helper.JsonOK(c, "Data notifikasi berhasil diambil", rows)
}
