package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	NotificationTypePayment      = "payment"
	NotificationTypeAnnouncement = "announcement"
)

type NotificationModel struct {
	NotificationID        uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID    uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationType      string         `gorm:"column:notification_type;type:varchar(30);not null" json:"notification_type"`
	NotificationTitle     string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationMessage   string         `gorm:"column:notification_message;type:text" json:"notification_message"`
	NotificationMetadata  datatypes.JSON `gorm:"column:notification_metadata;type:jsonb" json:"notification_metadata,omitempty"`
	NotificationTags      pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags,omitempty"`
	NotificationIsRead    bool           `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`
	NotificationReadAt    *time.Time     `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`
	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt time.Time      `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
