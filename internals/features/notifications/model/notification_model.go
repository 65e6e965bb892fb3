package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationModel struct {
	NotificationID uuid.UUID `gorm:"type:uuid;primaryKey;column:notification_id" json:"notification_id"`

	NotificationRecipientID   uuid.UUID `gorm:"type:uuid;not null;index;column:notification_recipient_id" json:"notification_recipient_id"`
	NotificationRecipientType string    `gorm:"size:20;not null;column:notification_recipient_type" json:"notification_recipient_type"`

	NotificationTitle   string `gorm:"size:200;not null;column:notification_title" json:"notification_title"`
	NotificationMessage string `gorm:"type:text;not null;column:notification_message" json:"notification_message"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}
