package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trxCtl "scolaria_backend/internals/features/payment/transactions/controller"
)

// PaymentAdminRoutes mounts the admin payment surface (list, record cash,
// checkout, manual cash validation).
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	trx := trxCtl.NewTransactionController(db)
	cash := trxCtl.NewCashValidationController(db)

	payments := r.Group("/payments")
	payments.Get("/transactions", trx.List)
	payments.Post("/transactions", trx.Create)
	payments.Post("/checkout", trx.Checkout)
	payments.Post("/validate-cash", cash.ValidateCashPayment)
}
