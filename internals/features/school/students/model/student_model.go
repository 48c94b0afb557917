package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel is the role-specific record for enrolled students.
// The matricule is the school-issued registration number, unique per student.
type StudentModel struct {
	StudentID          uuid.UUID  `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentUserID      uuid.UUID  `gorm:"column:student_user_id;type:uuid;not null;unique" json:"student_user_id"`
	StudentMatricule   string     `gorm:"column:student_matricule;size:50;unique;not null" json:"student_matricule" validate:"required"`
	StudentClassID     *uuid.UUID `gorm:"column:student_class_id;type:uuid" json:"student_class_id,omitempty"`
	StudentBirthday    *time.Time `gorm:"column:student_birthday;type:date" json:"student_birthday,omitempty"`
	StudentParentName  *string    `gorm:"column:student_parent_name;size:200" json:"student_parent_name,omitempty"`
	StudentParentPhone *string    `gorm:"column:student_parent_phone;size:30" json:"student_parent_phone,omitempty"`
	StudentCreatedAt   time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt   time.Time  `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
