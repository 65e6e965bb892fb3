package route

import (
	statsCtrl "absenku_backend/internals/features/stats/controller"
	authMiddleware "absenku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StatsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := statsCtrl.NewStatsController(db)

	r.Get("/stats", authMiddleware.IsAdmin(), ctrl.Get)
}
