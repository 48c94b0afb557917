package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scolaria_backend/internals/features/school/classes/dto"
	"scolaria_backend/internals/features/school/classes/model"
	helper "scolaria_backend/internals/helpers"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validate: validator.New()}
}

func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class := req.ToModel()
	if err := ctrl.DB.Create(class).Error; err != nil {
		log.Printf("[ERROR] create class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.JsonCreated(c, "Class created", class)
}

func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
	var classes []model.ClassModel
	if err := ctrl.DB.Order("class_name ASC").Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}
	return helper.JsonOK(c, "Classes fetched", classes)
}
