package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scolaria_backend/internals/features/finance/invoices/controller"
)

func InvoiceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInvoiceController(db)

	invoices := admin.Group("/invoices")
	invoices.Post("/", ctrl.CreateInvoice)
	invoices.Get("/", ctrl.ListInvoices)
}
