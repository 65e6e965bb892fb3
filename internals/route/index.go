// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "absenku_backend/internals/features/admins/route"
	attendanceRoute "absenku_backend/internals/features/attendance/route"
	authRoute "absenku_backend/internals/features/auth/route"
	employeeRoute "absenku_backend/internals/features/employees/route"
	exportRoute "absenku_backend/internals/features/export/route"
	leaveRoute "absenku_backend/internals/features/leave_requests/route"
	notificationRoute "absenku_backend/internals/features/notifications/route"
	statsRoute "absenku_backend/internals/features/stats/route"
	authMiddleware "absenku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	// Login terdaftar sebelum group /api supaya lolos middleware auth.
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== /api (semua butuh token) =====================
	// Gate admin dipasang per-route karena beberapa prefix (attendance,
	// leave-requests) dipakai karyawan sekaligus admin.
	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Mounting attendance routes...")
	attendanceRoute.AttendanceUserRoutes(api, db)
	attendanceRoute.AttendanceAdminRoutes(api, db)

	log.Println("[INFO] Mounting leave request routes...")
	leaveRoute.LeaveRequestUserRoutes(api, db)
	leaveRoute.LeaveRequestAdminRoutes(api, db)

	log.Println("[INFO] Mounting notification routes...")
	notificationRoute.NotificationUserRoutes(api, db)

	log.Println("[INFO] Mounting admin-only routes...")
	employeeRoute.EmployeeAdminRoutes(api, db)
	adminRoute.AdminAdminRoutes(api, db)
	statsRoute.StatsAdminRoutes(api, db)
	exportRoute.ExportAdminRoutes(api, db)
}
