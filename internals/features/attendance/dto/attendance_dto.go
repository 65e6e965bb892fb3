package dto

import (
	"time"

	"github.com/google/uuid"

	m "absenku_backend/internals/features/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// POST /api/attendance/clock (JSON) — field mengikuti kontrak klien lama
type ClockRequest struct {
	UserID    string   `json:"userId" validate:"required,max=50"`
	Action    string   `json:"action" validate:"required,oneof=in out"`
	Photo     *string  `json:"photo" validate:"omitempty"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Address   *string  `json:"address" validate:"omitempty,max=500"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// GET /api/attendance/status
type StatusResponse struct {
	IsClockedIn bool                `json:"isClockedIn"`
	Attendance  *AttendanceResponse `json:"attendance"`
}

type AttendanceResponse struct {
	AttendanceID            uuid.UUID  `json:"attendance_id"`
	AttendanceEmployeeID    uuid.UUID  `json:"attendance_employee_id"`
	AttendanceDate          time.Time  `json:"attendance_date"`
	AttendanceClockInAt     time.Time  `json:"attendance_clock_in_at"`
	AttendanceClockInPhoto  *string    `json:"attendance_clock_in_photo,omitempty"`
	AttendanceClockOutAt    *time.Time `json:"attendance_clock_out_at"`
	AttendanceClockOutPhoto *string    `json:"attendance_clock_out_photo,omitempty"`
	AttendanceLatitude      *float64   `json:"attendance_latitude,omitempty"`
	AttendanceLongitude     *float64   `json:"attendance_longitude,omitempty"`
	AttendanceAddress       *string    `json:"attendance_address,omitempty"`
	AttendanceStatus        string     `json:"attendance_status"`
	AttendanceCreatedAt     time.Time  `json:"attendance_created_at"`
	AttendanceUpdatedAt     time.Time  `json:"attendance_updated_at"`
}

// GET /api/attendance — baris gabungan dengan identitas karyawan
type AttendanceListItem struct {
	AttendanceID         uuid.UUID  `gorm:"column:attendance_id" json:"attendance_id"`
	AttendanceDate       time.Time  `gorm:"column:attendance_date" json:"attendance_date"`
	AttendanceClockInAt  time.Time  `gorm:"column:attendance_clock_in_at" json:"attendance_clock_in_at"`
	AttendanceClockOutAt *time.Time `gorm:"column:attendance_clock_out_at" json:"attendance_clock_out_at"`
	AttendanceLatitude   *float64   `gorm:"column:attendance_latitude" json:"attendance_latitude,omitempty"`
	AttendanceLongitude  *float64   `gorm:"column:attendance_longitude" json:"attendance_longitude,omitempty"`
	AttendanceAddress    *string    `gorm:"column:attendance_address" json:"attendance_address,omitempty"`
	AttendanceStatus     string     `gorm:"column:attendance_status" json:"attendance_status"`
	AttendanceCreatedAt  time.Time  `gorm:"column:attendance_created_at" json:"attendance_created_at"`
	EmployeeCode         string     `gorm:"column:employee_code" json:"employee_code"`
	EmployeeName         string     `gorm:"column:employee_name" json:"employee_name"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func FromAttendanceModel(mdl m.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:            mdl.AttendanceID,
		AttendanceEmployeeID:    mdl.AttendanceEmployeeID,
		AttendanceDate:          mdl.AttendanceDate,
		AttendanceClockInAt:     mdl.AttendanceClockInAt,
		AttendanceClockInPhoto:  mdl.AttendanceClockInPhoto,
		AttendanceClockOutAt:    mdl.AttendanceClockOutAt,
		AttendanceClockOutPhoto: mdl.AttendanceClockOutPhoto,
		AttendanceLatitude:      mdl.AttendanceLatitude,
		AttendanceLongitude:     mdl.AttendanceLongitude,
		AttendanceAddress:       mdl.AttendanceAddress,
		AttendanceStatus:        mdl.AttendanceStatus,
		AttendanceCreatedAt:     mdl.AttendanceCreatedAt,
		AttendanceUpdatedAt:     mdl.AttendanceUpdatedAt,
	}
}
