package route

import (
	lrCtrl "absenku_backend/internals/features/leave_requests/controller"
	authMiddleware "absenku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LeaveRequestUserRoutes: pengajuan cuti oleh karyawan.
func LeaveRequestUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := lrCtrl.NewLeaveRequestController(db)

	r.Post("/leave-requests", ctrl.Create)
}

// LeaveRequestAdminRoutes: review & keputusan oleh admin.
func LeaveRequestAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := lrCtrl.NewLeaveRequestController(db)

	r.Get("/leave-requests", authMiddleware.IsAdmin(), ctrl.List)
	r.Post("/leave-requests/:id/approve", authMiddleware.IsAdmin(), ctrl.Approve)
	r.Post("/leave-requests/:id/reject", authMiddleware.IsAdmin(), ctrl.Reject)
}
