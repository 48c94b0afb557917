package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"scolaria_backend/internals/features/school/teachers/model"
	helper "scolaria_backend/internals/helpers"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

type teacherWithSpecialties struct {
	model.TeacherModel
	Specialties []string `json:"specialties"`
}

// ListTeachers returns teachers with their attached specialties.
func (ctrl *TeacherController) ListTeachers(c *fiber.Ctx) error {
	var teachers []model.TeacherModel
	if err := ctrl.DB.Order("teacher_created_at DESC").Limit(200).Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}
	if len(teachers) == 0 {
		return helper.JsonOK(c, "Teachers fetched", []teacherWithSpecialties{})
	}

	ids := make([]uuid.UUID, 0, len(teachers))
	for _, t := range teachers {
		ids = append(ids, t.TeacherID)
	}

	var specialties []model.TeacherSpecialtyModel
	if err := ctrl.DB.
		Where("teacher_specialty_teacher_id IN ?", ids).
		Find(&specialties).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch specialties")
	}

	byTeacher := make(map[uuid.UUID][]string, len(teachers))
	for _, s := range specialties {
		byTeacher[s.TeacherSpecialtyTeacherID] = append(byTeacher[s.TeacherSpecialtyTeacherID], s.TeacherSpecialtyName)
	}

	out := make([]teacherWithSpecialties, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, teacherWithSpecialties{TeacherModel: t, Specialties: byTeacher[t.TeacherID]})
	}
	return helper.JsonOK(c, "Teachers fetched", out)
}
