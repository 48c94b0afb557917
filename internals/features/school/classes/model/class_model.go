package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID        uuid.UUID      `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassName      string         `gorm:"column:class_name;size:100;not null" json:"class_name"`
	ClassLevel     *string        `gorm:"column:class_level;size:50" json:"class_level,omitempty"`
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt *time.Time     `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at,omitempty"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
