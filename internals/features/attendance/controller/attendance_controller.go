// file: internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/features/attendance/dto"
	"absenku_backend/internals/features/attendance/service"
	helper "absenku_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Resolver *service.SessionResolver
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Resolver: service.NewSessionResolver(db),
	}
}

/* ===================== STATUS ===================== */
// GET /api/attendance/status?userId=<employee_code>
func (ctrl *AttendanceController) GetStatus(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID required")
	}

	st, err := ctrl.Resolver.GetStatus(userID)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check status")
	}

	resp := dto.StatusResponse{IsClockedIn: st.IsClockedIn}
	if st.Attendance != nil {
		r := dto.FromAttendanceModel(*st.Attendance)
		resp.Attendance = &r
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

/* ===================== CLOCK ===================== */
// POST /api/attendance/clock
func (ctrl *AttendanceController) Clock(c *fiber.Ctx) error {
	var req dto.ClockRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	err := ctrl.Resolver.Clock(req.UserID, service.ClockInput{
		Action:    req.Action,
		Photo:     req.Photo,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		case errors.Is(err, service.ErrNoActiveSession):
			return helper.JsonError(c, fiber.StatusBadRequest, "No active clock in found")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process clock action")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

/* ===================== LIST (reporting) ===================== */
// GET /api/attendance?date=YYYY-MM-DD — maksimal 100 baris terbaru
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Table("attendance").
		Select("attendance.attendance_id, attendance.attendance_date, attendance.attendance_clock_in_at, attendance.attendance_clock_out_at, attendance.attendance_latitude, attendance.attendance_longitude, attendance.attendance_address, attendance.attendance_status, attendance.attendance_created_at, employees.employee_code, employees.employee_name").
		Joins("JOIN employees ON employees.employee_id = attendance.attendance_employee_id")

	if dateStr := strings.TrimSpace(c.Query("date")); dateStr != "" {
		day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal salah (YYYY-MM-DD)")
		}
		q = q.Where("attendance.attendance_date = ?", day)
	}

	var rows []dto.AttendanceListItem
	if err := q.Order("attendance.attendance_created_at DESC").
		Limit(100).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.JsonOK(c, "Data absensi berhasil diambil", rows)
}
