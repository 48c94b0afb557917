package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestGatewayWebhookEventDecode(t *testing.T) {
	payload := []byte(`{
		"event": "transaction.updated",
		"entity": {
			"name": "Transaction",
			"object": {
				"id": "trx_8841",
				"status": "approved",
				"metadata": {"transaction_id": "1b4e28ba-2fa1-11d2-883f-0016d3cca427"}
			}
		}
	}`)

	var evt GatewayWebhookEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !evt.IsTransaction() {
		t.Fatalf("expected Transaction entity, got %q", evt.Entity.Name)
	}
	if got := evt.GatewayReference(); got != "trx_8841" {
		t.Fatalf("GatewayReference() = %q", got)
	}
	want := uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	if got := evt.MetadataTransactionID(); got != want {
		t.Fatalf("MetadataTransactionID() = %s, want %s", got, want)
	}
}

func TestGatewayWebhookEventIgnoresOtherEntities(t *testing.T) {
	var evt GatewayWebhookEvent
	if err := json.Unmarshal([]byte(`{"event":"x","entity":{"name":"Customer","object":{"id":"c_1","status":"active"}}}`), &evt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if evt.IsTransaction() {
		t.Fatal("Customer entity should not count as Transaction")
	}
}

func TestMetadataTransactionIDFallbacks(t *testing.T) {
	cases := []struct {
		name     string
		metadata map[string]interface{}
	}{
		{"missing key", map[string]interface{}{}},
		{"nil metadata", nil},
		{"non-string value", map[string]interface{}{"transaction_id": 42}},
		{"malformed uuid", map[string]interface{}{"transaction_id": "not-a-uuid"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			evt := GatewayWebhookEvent{Entity: GatewayEntity{Object: GatewayObject{Metadata: tc.metadata}}}
			if got := evt.MetadataTransactionID(); got != uuid.Nil {
				t.Fatalf("expected uuid.Nil, got %s", got)
			}
		})
	}
}

func TestValidateCashPaymentRequestResolveID(t *testing.T) {
	want := uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")

	for _, body := range []string{
		`{"transactionId":"1b4e28ba-2fa1-11d2-883f-0016d3cca427"}`,
		`{"transaction_id":"1b4e28ba-2fa1-11d2-883f-0016d3cca427"}`,
	} {
		var req ValidateCashPaymentRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("unmarshal %s: %v", body, err)
		}
		got, err := req.ResolveID()
		if err != nil {
			t.Fatalf("ResolveID for %s: %v", body, err)
		}
		if got != want {
			t.Fatalf("ResolveID for %s = %s, want %s", body, got, want)
		}
	}
}

func TestValidateCashPaymentRequestResolveIDErrors(t *testing.T) {
	cases := []struct {
		name string
		req  ValidateCashPaymentRequest
	}{
		{"empty", ValidateCashPaymentRequest{}},
		{"whitespace", ValidateCashPaymentRequest{TransactionID: "   "}},
		{"malformed camel", ValidateCashPaymentRequest{TransactionID: "nope"}},
		{"malformed snake", ValidateCashPaymentRequest{TransactionIDSnake: "nope"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.req.ResolveID(); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestGatewayReferenceTrimsWhitespace(t *testing.T) {
	evt := GatewayWebhookEvent{Entity: GatewayEntity{Object: GatewayObject{ID: "  trx_1 "}}}
	if got := evt.GatewayReference(); got != "trx_1" {
		t.Fatalf("GatewayReference() = %q", got)
	}
}
