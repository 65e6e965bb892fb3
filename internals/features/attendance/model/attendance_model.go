package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const AttendanceStatusPresent = "present"

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceEmployeeID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_employee_id" json:"attendance_employee_id"`

	// Tanggal kalender sesi (truncate ke tanggal lokal server saat insert).
	// Disimpan eksplisit supaya query "hari ini" portable antar dialek.
	AttendanceDate time.Time `gorm:"type:date;not null;index;column:attendance_date" json:"attendance_date"`

	AttendanceClockInAt     time.Time  `gorm:"not null;column:attendance_clock_in_at" json:"attendance_clock_in_at"`
	AttendanceClockInPhoto  *string    `gorm:"type:text;column:attendance_clock_in_photo" json:"attendance_clock_in_photo,omitempty"`
	AttendanceClockOutAt    *time.Time `gorm:"column:attendance_clock_out_at" json:"attendance_clock_out_at"`
	AttendanceClockOutPhoto *string    `gorm:"type:text;column:attendance_clock_out_photo" json:"attendance_clock_out_photo,omitempty"`

	AttendanceLatitude  *float64 `gorm:"column:attendance_latitude" json:"attendance_latitude,omitempty"`
	AttendanceLongitude *float64 `gorm:"column:attendance_longitude" json:"attendance_longitude,omitempty"`
	AttendanceAddress   *string  `gorm:"type:text;column:attendance_address" json:"attendance_address,omitempty"`

	AttendanceStatus string `gorm:"size:20;not null;default:present;column:attendance_status" json:"attendance_status"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
