package route

import (
	notifCtrl "absenku_backend/internals/features/notifications/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := notifCtrl.NewNotificationController(db)

	r.Get("/notifications", ctrl.List)
}
