package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scolaria_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := admin.Group("/students")
	students.Get("/", ctrl.ListStudents)
	students.Get("/:id", ctrl.GetStudent)
}
