package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trxCtl "scolaria_backend/internals/features/payment/transactions/controller"
)

// PaymentWebhookRoutes mounts the public gateway notification endpoint.
// No bearer auth: the gateway signs nothing but the optional shared secret.
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	hook := trxCtl.NewWebhookController(db)

	r.Get("/payments/webhook", hook.WebhookPing)
	r.Post("/payments/webhook", hook.HandleGatewayWebhook)
}
