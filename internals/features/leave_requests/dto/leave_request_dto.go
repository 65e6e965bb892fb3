package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
 * REQUESTS — field mengikuti kontrak klien lama
 * ========================================================= */

type CreateLeaveRequestRequest struct {
	UserID    string `json:"userId" validate:"required,max=50"`
	LeaveType string `json:"leave_type" validate:"required,max=50"`
	Reason    string `json:"reason" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// Baris gabungan dengan identitas karyawan (GET /api/leave-requests)
type LeaveRequestListItem struct {
	LeaveRequestID        uuid.UUID `gorm:"column:leave_request_id" json:"leave_request_id"`
	LeaveRequestType      string    `gorm:"column:leave_request_type" json:"leave_request_type"`
	LeaveRequestReason    string    `gorm:"column:leave_request_reason" json:"leave_request_reason"`
	LeaveRequestStartDate time.Time `gorm:"column:leave_request_start_date" json:"leave_request_start_date"`
	LeaveRequestEndDate   time.Time `gorm:"column:leave_request_end_date" json:"leave_request_end_date"`
	LeaveRequestStatus    string    `gorm:"column:leave_request_status" json:"leave_request_status"`
	LeaveRequestCreatedAt time.Time `gorm:"column:leave_request_created_at" json:"leave_request_created_at"`
	EmployeeCode          string    `gorm:"column:employee_code" json:"employee_code"`
	EmployeeName          string    `gorm:"column:employee_name" json:"employee_name"`
}
