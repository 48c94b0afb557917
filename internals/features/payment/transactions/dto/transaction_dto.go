package dto

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* =============== WEBHOOK ENVELOPE =============== */

// GatewayWebhookEvent is the gateway's notification envelope. Only the fields
// the reconciliation path reads are modeled; everything else is ignored.
type GatewayWebhookEvent struct {
	Event  string        `json:"event"`
	Entity GatewayEntity `json:"entity"`
}

type GatewayEntity struct {
	Name   string        `json:"name"`
	Object GatewayObject `json:"object"`
}

type GatewayObject struct {
	ID       string                 `json:"id"`
	Status   string                 `json:"status"`
	Metadata map[string]interface{} `json:"metadata"`
}

// IsTransaction reports whether the event concerns a Transaction entity.
// Anything else is acknowledged and ignored.
func (e GatewayWebhookEvent) IsTransaction() bool {
	return e.Entity.Name == "Transaction"
}

// GatewayReference is the gateway-side transaction identifier.
func (e GatewayWebhookEvent) GatewayReference() string {
	return strings.TrimSpace(e.Entity.Object.ID)
}

// MetadataTransactionID is the fallback local transaction id some gateway
// events embed in metadata. Returns uuid.Nil when absent or malformed.
func (e GatewayWebhookEvent) MetadataTransactionID() uuid.UUID {
	raw, ok := e.Entity.Object.Metadata["transaction_id"]
	if !ok {
		return uuid.Nil
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil
	}
	return id
}

/* =============== REQUESTS =============== */

// ValidateCashPaymentRequest identifies the cash transaction to complete.
// The dashboard sends transactionId; the snake_case spelling is accepted too.
type ValidateCashPaymentRequest struct {
	TransactionID      string `json:"transactionId"`
	TransactionIDSnake string `json:"transaction_id"`
}

// ResolveID returns the target transaction id, preferring the camelCase
// field. Missing or malformed ids come back as 400 errors.
func (r *ValidateCashPaymentRequest) ResolveID() (uuid.UUID, error) {
	raw := strings.TrimSpace(r.TransactionID)
	if raw == "" {
		raw = strings.TrimSpace(r.TransactionIDSnake)
	}
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "transactionId is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid transactionId")
	}
	return id, nil
}

// CreateTransactionRequest records a payment attempt (typically cash) against
// an invoice or a student article order. Exactly one target must be set.
type CreateTransactionRequest struct {
	StudentID        *uuid.UUID `json:"student_id" validate:"omitempty"`
	InvoiceID        *uuid.UUID `json:"invoice_id" validate:"omitempty"`
	StudentArticleID *uuid.UUID `json:"student_article_id" validate:"omitempty"`
	Amount           int64      `json:"amount" validate:"required,gt=0"`
	PaymentMethod    string     `json:"payment_method" validate:"required,oneof=cash gateway"`
}

// CheckoutRequest opens a gateway payment for the outstanding balance of an
// invoice or a student article order.
type CheckoutRequest struct {
	InvoiceID        *uuid.UUID `json:"invoice_id" validate:"omitempty"`
	StudentArticleID *uuid.UUID `json:"student_article_id" validate:"omitempty"`
}
