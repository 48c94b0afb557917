package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "scolaria_backend/internals/features/users/user/controller"
)

// UserAdminRoutes mounts account provisioning for administrators.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db)

	users := r.Group("/users")
	users.Post("/", ctl.ProvisionUser)
	users.Get("/", ctl.ListUsers)
}
