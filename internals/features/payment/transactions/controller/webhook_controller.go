package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scolaria_backend/internals/configs"
	"scolaria_backend/internals/features/payment/transactions/dto"
	"scolaria_backend/internals/features/payment/transactions/model"
	"scolaria_backend/internals/features/payment/transactions/service"
	helper "scolaria_backend/internals/helpers"
)

type WebhookController struct {
	DB *gorm.DB
}

func NewWebhookController(db *gorm.DB) *WebhookController {
	return &WebhookController{DB: db}
}

// WebhookPing lets the gateway dashboard verify the endpoint is reachable.
func (ctrl *WebhookController) WebhookPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("OK")
}

// HandleGatewayWebhook receives asynchronous payment-status events and
// reconciles them against local transaction/invoice/article records. The
// gateway retries failed deliveries; this handler never retries on its own.
//
// POST /api/payments/webhook
func (ctrl *WebhookController) HandleGatewayWebhook(c *fiber.Ctx) error {
	// Shared-secret check, active only when WEBHOOK_SECRET is configured.
	if secret := configs.WebhookSecret; secret != "" {
		if c.Get("X-Webhook-Secret") != secret {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid webhook secret")
		}
	}

	var event dto.GatewayWebhookEvent
	if err := c.BodyParser(&event); err != nil {
		log.Println("[ERROR] webhook body parse failed:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}

	// Non-Transaction entities are acknowledged without side effects.
	if !event.IsTransaction() {
		return helper.JsonOK(c, "Event ignored", fiber.Map{
			"entity": event.Entity.Name,
		})
	}

	log.Printf("[INFO] gateway webhook: event=%s ref=%s status=%s",
		event.Event, event.GatewayReference(), event.Entity.Object.Status)

	trx, err := ctrl.resolveTransaction(event)
	if err != nil {
		return err
	}

	newStatus := service.MapGatewayStatus(event.Entity.Object.Status)

	completedNow := false
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var locked model.PaymentTransactionModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("transaction_id = ?", trx.TransactionID).
			First(&locked).Error; err != nil {
			return err
		}

		// Update writes newStatus back into locked, so the pre-update
		// status has to be captured first.
		prev := locked.TransactionStatus

		// Status is persisted first, unconditionally.
		if err := tx.Model(&locked).
			Update("transaction_status", newStatus).Error; err != nil {
			return err
		}

		// The ledger moves only on the transition into completed.
		if service.CompletedNow(prev, newStatus) {
			if err := service.ApplyCompletedPayment(tx, &locked); err != nil {
				return err
			}
			completedNow = true
		}
		return nil
	}); err != nil {
		log.Printf("[ERROR] webhook reconciliation failed for %s: %v", trx.TransactionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if completedNow {
		service.NotifyPaymentConfirmed(ctrl.DB, trx)
	}

	return helper.JsonOK(c, "Webhook processed", fiber.Map{
		"transaction_id": trx.TransactionID,
		"status":         newStatus,
	})
}

// resolveTransaction locates the local transaction by the gateway reference,
// falling back to a transaction id embedded in event metadata.
func (ctrl *WebhookController) resolveTransaction(event dto.GatewayWebhookEvent) (*model.PaymentTransactionModel, error) {
	var trx model.PaymentTransactionModel

	if ref := event.GatewayReference(); ref != "" {
		err := ctrl.DB.Where("transaction_gateway_reference = ?", ref).First(&trx).Error
		if err == nil {
			return &trx, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	if id := event.MetadataTransactionID(); id != uuid.Nil {
		err := ctrl.DB.Where("transaction_id = ?", id).First(&trx).Error
		if err == nil {
			return &trx, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return nil, fiber.NewError(fiber.StatusNotFound, "Transaction not found")
}
