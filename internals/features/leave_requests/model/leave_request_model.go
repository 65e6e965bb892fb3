package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveRequestModel struct {
	LeaveRequestID uuid.UUID `gorm:"type:uuid;primaryKey;column:leave_request_id" json:"leave_request_id"`

	LeaveRequestEmployeeID uuid.UUID `gorm:"type:uuid;not null;index;column:leave_request_employee_id" json:"leave_request_employee_id"`

	LeaveRequestType   string `gorm:"size:50;not null;column:leave_request_type" json:"leave_request_type"`
	LeaveRequestReason string `gorm:"type:text;not null;column:leave_request_reason" json:"leave_request_reason"`

	LeaveRequestStartDate datatypes.Date `gorm:"not null;column:leave_request_start_date" json:"leave_request_start_date"`
	LeaveRequestEndDate   datatypes.Date `gorm:"not null;column:leave_request_end_date" json:"leave_request_end_date"`

	// pending -> approved | rejected (update oleh admin)
	LeaveRequestStatus string `gorm:"size:20;not null;default:pending;column:leave_request_status" json:"leave_request_status"`

	LeaveRequestCreatedAt time.Time `gorm:"column:leave_request_created_at;autoCreateTime" json:"leave_request_created_at"`
	LeaveRequestUpdatedAt time.Time `gorm:"column:leave_request_updated_at;autoUpdateTime" json:"leave_request_updated_at"`
}

func (LeaveRequestModel) TableName() string { return "leave_requests" }

func (m *LeaveRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.LeaveRequestID == uuid.Nil {
		m.LeaveRequestID = uuid.New()
	}
	return nil
}
