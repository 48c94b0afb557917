package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the human-facing record attached 1:1 to a user.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	FirstName string    `gorm:"size:100;not null" json:"first_name" validate:"required"`
	LastName  string    `gorm:"size:100;not null" json:"last_name" validate:"required"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     *string   `gorm:"size:30" json:"phone,omitempty"`
	AvatarURL *string   `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
