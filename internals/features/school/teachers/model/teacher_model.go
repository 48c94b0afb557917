package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherModel is the role-specific record for teaching staff.
type TeacherModel struct {
	TeacherID         uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	TeacherUserID     uuid.UUID `gorm:"column:teacher_user_id;type:uuid;not null;unique" json:"teacher_user_id"`
	TeacherEmployeeID *string   `gorm:"column:teacher_employee_id;size:50" json:"teacher_employee_id,omitempty"`
	TeacherCreatedAt  time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt  time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }

// TeacherSpecialtyModel attaches one taught subject to a teacher.
// Attachment is best-effort during provisioning: a teacher record may
// legitimately exist without specialties.
type TeacherSpecialtyModel struct {
	TeacherSpecialtyID        uuid.UUID `gorm:"column:teacher_specialty_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_specialty_id"`
	TeacherSpecialtyTeacherID uuid.UUID `gorm:"column:teacher_specialty_teacher_id;type:uuid;not null" json:"teacher_specialty_teacher_id"`
	TeacherSpecialtyName      string    `gorm:"column:teacher_specialty_name;size:100;not null" json:"teacher_specialty_name"`
	TeacherSpecialtyCreatedAt time.Time `gorm:"column:teacher_specialty_created_at;autoCreateTime" json:"teacher_specialty_created_at"`
}

func (TeacherSpecialtyModel) TableName() string { return "teacher_specialties" }
