package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	AdminID uuid.UUID `gorm:"type:uuid;primaryKey;column:admin_id" json:"admin_id"`

	AdminCode  string  `gorm:"size:50;not null;uniqueIndex;column:admin_code" json:"admin_code"`
	AdminName  string  `gorm:"size:100;not null;column:admin_name" json:"admin_name"`
	AdminEmail *string `gorm:"size:100;column:admin_email" json:"admin_email,omitempty"`

	AdminPassword string `gorm:"not null;column:admin_password" json:"-"`
	// Tanpa default di kolom: zero value (false) harus ikut ditulis saat
	// insert. Nilai selalu diisi eksplisit saat create (lihat dto.ToModel).
	AdminIsActive bool   `gorm:"not null;column:admin_is_active" json:"admin_is_active"`

	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
}

func (AdminModel) TableName() string { return "admins" }

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}
