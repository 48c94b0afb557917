package controller

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"scolaria_backend/internals/features/payment/transactions/model"
)

func TestCheckCashValidatable(t *testing.T) {
	cases := []struct {
		name        string
		trx         model.PaymentTransactionModel
		wantAlready bool
		wantStatus  int
	}{
		{
			name: "pending cash proceeds",
			trx: model.PaymentTransactionModel{
				TransactionPaymentMethod: model.MethodCash,
				TransactionStatus:        model.TransactionPending,
			},
		},
		{
			name: "completed cash is a no-op",
			trx: model.PaymentTransactionModel{
				TransactionPaymentMethod: model.MethodCash,
				TransactionStatus:        model.TransactionCompleted,
			},
			wantAlready: true,
		},
		{
			name: "gateway transaction is rejected",
			trx: model.PaymentTransactionModel{
				TransactionPaymentMethod: model.MethodGateway,
				TransactionStatus:        model.TransactionPending,
			},
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			already, err := checkCashValidatable(&tc.trx)
			if tc.wantStatus != 0 {
				var fe *fiber.Error
				if !errors.As(err, &fe) || fe.Code != tc.wantStatus {
					t.Fatalf("expected %d fiber error, got %v", tc.wantStatus, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if already != tc.wantAlready {
				t.Fatalf("alreadyValidated = %v, want %v", already, tc.wantAlready)
			}
		})
	}
}

func TestValidateCashPaymentRejectsBadInput(t *testing.T) {
	app := fiber.New()
	ctrl := NewCashValidationController(nil)
	app.Post("/validate-cash", ctrl.ValidateCashPayment)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing id", `{}`},
		{"malformed id", `{"transactionId":"not-a-uuid"}`},
		{"malformed snake id", `{"transaction_id":"nope"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/validate-cash", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}
