package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// UserRole maps a user to exactly one role in this flow.
type UserRole struct {
	UserRoleID uuid.UUID  `gorm:"column:user_role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_role_id"`
	UserID     uuid.UUID  `gorm:"column:user_id;type:uuid;not null;unique" json:"user_id"`
	Role       string     `gorm:"column:role;type:varchar(20);not null" json:"role"`
	AssignedAt *time.Time `gorm:"column:assigned_at;autoCreateTime"     json:"assigned_at,omitempty"`
	AssignedBy *uuid.UUID `gorm:"column:assigned_by;type:uuid"          json:"assigned_by,omitempty"`
}

func (UserRole) TableName() string { return "user_roles" }
