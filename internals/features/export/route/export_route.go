package route

import (
	expCtrl "absenku_backend/internals/features/export/controller"
	authMiddleware "absenku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ExportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := expCtrl.NewExportController(db)

	r.Get("/backup", authMiddleware.IsAdmin(), ctrl.Backup)
	r.Get("/export/attendance", authMiddleware.IsAdmin(), ctrl.AttendanceXLSX)
}
