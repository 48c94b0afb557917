package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"scolaria_backend/internals/features/school/students/model"
	helper "scolaria_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// ListStudents supports ?class_id= and ?matricule= filters.
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.StudentModel{})

	if cid := c.Query("class_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		q = q.Where("student_class_id = ?", id)
	}
	if m := c.Query("matricule"); m != "" {
		q = q.Where("student_matricule = ?", m)
	}

	var students []model.StudentModel
	if err := q.Order("student_created_at DESC").Limit(200).Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return helper.JsonOK(c, "Students fetched", students)
}

func (ctrl *StudentController) GetStudent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "Student fetched", student)
}
