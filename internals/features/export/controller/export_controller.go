// file: internals/features/export/controller/export_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	adminModel "absenku_backend/internals/features/admins/model"
	"absenku_backend/internals/features/attendance/dto"
	attendanceModel "absenku_backend/internals/features/attendance/model"
	employeeModel "absenku_backend/internals/features/employees/model"
	leaveModel "absenku_backend/internals/features/leave_requests/model"
	helper "absenku_backend/internals/helpers"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

/* ===================== BACKUP (JSON dump) ===================== */
// GET /api/backup — dump seluruh tabel utama untuk arsip admin
func (ctrl *ExportController) Backup(c *fiber.Ctx) error {
	var employees []employeeModel.EmployeeModel
	var admins []adminModel.AdminModel
	var attendance []attendanceModel.AttendanceModel
	var leaveRequests []leaveModel.LeaveRequestModel

	if err := ctrl.DB.Find(&employees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create backup")
	}
	if err := ctrl.DB.Find(&admins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create backup")
	}
	if err := ctrl.DB.Find(&attendance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create backup")
	}
	if err := ctrl.DB.Find(&leaveRequests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create backup")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"timestamp":      time.Now().Format(time.RFC3339),
		"employees":      employees,
		"admins":         admins,
		"attendance":     attendance,
		"leave_requests": leaveRequests,
	})
}

/* ===================== XLSX REPORT ===================== */
// GET /api/export/attendance?date=YYYY-MM-DD — laporan absensi .xlsx
func (ctrl *ExportController) AttendanceXLSX(c *fiber.Ctx) error {
	q := ctrl.DB.Table("attendance").
		Select("attendance.attendance_id, attendance.attendance_date, attendance.attendance_clock_in_at, attendance.attendance_clock_out_at, attendance.attendance_latitude, attendance.attendance_longitude, attendance.attendance_address, attendance.attendance_status, attendance.attendance_created_at, employees.employee_code, employees.employee_name").
		Joins("JOIN employees ON employees.employee_id = attendance.attendance_employee_id")

	label := "semua"
	if dateStr := strings.TrimSpace(c.Query("date")); dateStr != "" {
		day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal salah (YYYY-MM-DD)")
		}
		q = q.Where("attendance.attendance_date = ?", day)
		label = dateStr
	}

	var rows []dto.AttendanceListItem
	if err := q.Order("attendance.attendance_created_at DESC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to export attendance")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Absensi"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"No", "Kode Karyawan", "Nama", "Tanggal", "Jam Masuk", "Jam Pulang", "Status", "Lokasi"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		clockOut := ""
		if row.AttendanceClockOutAt != nil {
			clockOut = row.AttendanceClockOutAt.Format("15:04:05")
		}
		address := ""
		if row.AttendanceAddress != nil {
			address = *row.AttendanceAddress
		}
		values := []interface{}{
			i + 1,
			row.EmployeeCode,
			row.EmployeeName,
			row.AttendanceDate.Format("2006-01-02"),
			row.AttendanceClockInAt.Format("15:04:05"),
			clockOut,
			row.AttendanceStatus,
			address,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, r)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to export attendance")
	}

	filename := fmt.Sprintf("laporan-absensi-%s.xlsx", label)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
