package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeModel struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey;column:employee_id" json:"employee_id"`

	// Kode eksternal (nomor induk karyawan) — dipakai untuk login & clock
	EmployeeCode string `gorm:"size:50;not null;uniqueIndex;column:employee_code" json:"employee_code"`

	EmployeeName     string  `gorm:"size:100;not null;column:employee_name" json:"employee_name"`
	EmployeeEmail    *string `gorm:"size:100;column:employee_email" json:"employee_email,omitempty"`
	EmployeePhone    *string `gorm:"size:30;column:employee_phone" json:"employee_phone,omitempty"`
	EmployeePosition *string `gorm:"size:100;column:employee_position" json:"employee_position,omitempty"`

	EmployeePassword string `gorm:"not null;column:employee_password" json:"-"`
	// Tanpa default di kolom: GORM menghilangkan zero value dari INSERT,
	// jadi default:true akan menimpa baris yang sengaja dibuat nonaktif.
	// Nilai selalu diisi eksplisit saat create (lihat dto.ToModel).
	EmployeeIsActive bool   `gorm:"not null;column:employee_is_active" json:"employee_is_active"`

	EmployeeCreatedAt time.Time `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
	EmployeeUpdatedAt time.Time `gorm:"column:employee_updated_at;autoUpdateTime" json:"employee_updated_at"`
}

func (EmployeeModel) TableName() string { return "employees" }

func (m *EmployeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.EmployeeID == uuid.Nil {
		m.EmployeeID = uuid.New()
	}
	return nil
}
