package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	UserTypeTeacher = "teacher"
	UserTypeStudent = "student"
)

// ProvisionUserRequest is the admin payload for creating a new account plus
// its profile, role and role-specific record. Field names follow the
// dashboard's camelCase contract.
type ProvisionUserRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Phone     *string `json:"phone" validate:"omitempty"`
	UserType  string  `json:"userType" validate:"required,oneof=teacher student"`

	// teacher fields
	EmployeeID  *string  `json:"employeeId" validate:"omitempty"`
	Specialties []string `json:"specialties" validate:"omitempty,dive,min=1"`

	// student fields
	Matricule   *string    `json:"matricule" validate:"omitempty"`
	ClassID     *uuid.UUID `json:"classId" validate:"omitempty"`
	Birthday    *string    `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	ParentName  *string    `json:"parentName" validate:"omitempty"`
	ParentPhone *string    `json:"parentPhone" validate:"omitempty"`
}

// Validate checks the static rules plus the cross-field one: a student
// account cannot exist without a matricule.
func (r *ProvisionUserRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if r.UserType == UserTypeStudent {
		if r.Matricule == nil || strings.TrimSpace(*r.Matricule) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "matricule is required for student accounts")
		}
	}
	return nil
}
