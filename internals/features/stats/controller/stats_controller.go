// file: internals/features/stats/controller/stats_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminModel "absenku_backend/internals/features/admins/model"
	attendanceService "absenku_backend/internals/features/attendance/service"
	employeeModel "absenku_backend/internals/features/employees/model"
	leaveModel "absenku_backend/internals/features/leave_requests/model"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// GET /api/stats — angka ringkasan dashboard admin
func (ctrl *StatsController) Get(c *fiber.Ctx) error {
	var totalEmployees, pendingLeave, totalAdmins, presentToday int64

	if err := ctrl.DB.Model(&employeeModel.EmployeeModel{}).
		Where("employee_is_active = ?", true).
		Count(&totalEmployees).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch stats")
	}

	// distinct karyawan yang punya baris absensi hari ini
	if err := ctrl.DB.Table("attendance").
		Where("attendance_date = ?", attendanceService.Today()).
		Distinct("attendance_employee_id").
		Count(&presentToday).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch stats")
	}

	if err := ctrl.DB.Model(&leaveModel.LeaveRequestModel{}).
		Where("leave_request_status = ?", leaveModel.LeaveStatusPending).
		Count(&pendingLeave).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch stats")
	}

	if err := ctrl.DB.Model(&adminModel.AdminModel{}).
		Where("admin_is_active = ?", true).
		Count(&totalAdmins).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch stats")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"totalEmployees": totalEmployees,
		"presentToday":   presentToday,
		"pendingLeave":   pendingLeave,
		"totalAdmins":    totalAdmins,
	})
}
