package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scolaria_backend/internals/features/school/classes/controller"
)

func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db)

	classes := admin.Group("/classes")
	classes.Post("/", ctrl.CreateClass)
	classes.Get("/", ctrl.ListClasses)
}
