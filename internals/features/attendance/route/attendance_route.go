package route

import (
	attCtrl "absenku_backend/internals/features/attendance/controller"
	authMiddleware "absenku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AttendanceUserRoutes: endpoint absensi untuk karyawan (status & clock).
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attCtrl.NewAttendanceController(db)

	r.Get("/attendance/status", ctrl.GetStatus)
	r.Post("/attendance/clock", ctrl.Clock)
}

// AttendanceAdminRoutes: listing untuk dashboard/reporting admin.
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attCtrl.NewAttendanceController(db)

	r.Get("/attendance", authMiddleware.IsAdmin(), ctrl.List)
}
