package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"scolaria_backend/internals/configs"
	"scolaria_backend/internals/features/payment/transactions/model"
	"scolaria_backend/internals/features/payment/transactions/service"
)

func newWebhookTestApp() *fiber.App {
	app := fiber.New()
	ctrl := NewWebhookController(nil)
	app.Get("/api/payments/webhook", ctrl.WebhookPing)
	app.Post("/api/payments/webhook", ctrl.HandleGatewayWebhook)
	return app
}

func TestWebhookPing(t *testing.T) {
	app := newWebhookTestApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/payments/webhook", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestWebhookRejectsBadSecret(t *testing.T) {
	prev := configs.WebhookSecret
	configs.WebhookSecret = "hooksecret"
	defer func() { configs.WebhookSecret = prev }()

	app := newWebhookTestApp()

	req := httptest.NewRequest("POST", "/api/payments/webhook", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Secret", "wrong")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

// GORM's Update writes the new value back into the loaded struct, so the
// completion decision must be made from the status captured before the
// update. This mirrors the sequence the webhook handler runs.
func TestCompletionDecisionUsesStatusBeforeUpdate(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	locked := model.PaymentTransactionModel{
		TransactionID:     uuid.New(),
		TransactionStatus: model.TransactionPending,
	}
	prev := locked.TransactionStatus

	if err := db.Model(&locked).
		Update("transaction_status", model.TransactionCompleted).Error; err != nil {
		t.Fatalf("update: %v", err)
	}

	if locked.TransactionStatus != model.TransactionCompleted {
		t.Fatalf("expected Update to write the new status back into the loaded row, got %q", locked.TransactionStatus)
	}
	if !service.CompletedNow(prev, model.TransactionCompleted) {
		t.Fatal("pending -> completed must move the ledger")
	}
	if service.CompletedNow(locked.TransactionStatus, model.TransactionCompleted) {
		t.Fatal("the post-update status must not drive the decision")
	}
}

func TestWebhookIgnoresNonTransactionEntities(t *testing.T) {
	app := newWebhookTestApp()

	body := `{"event":"customer.updated","entity":{"name":"Customer","object":{"id":"c_1","status":"active"}}}`
	req := httptest.NewRequest("POST", "/api/payments/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	// Acknowledged with 200 so the gateway does not retry.
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
