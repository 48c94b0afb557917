package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scolaria_backend/internals/features/school/teachers/controller"
)

func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)

	teachers := admin.Group("/teachers")
	teachers.Get("/", ctrl.ListTeachers)
}
