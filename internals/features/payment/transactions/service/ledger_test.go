package service

import (
	"testing"

	trxModel "scolaria_backend/internals/features/payment/transactions/model"
)

func TestMapGatewayStatus(t *testing.T) {
	cases := []struct {
		in   string
		want trxModel.TransactionStatus
	}{
		{"approved", trxModel.TransactionCompleted},
		{"APPROVED", trxModel.TransactionCompleted},
		{" approved ", trxModel.TransactionCompleted},
		{"declined", trxModel.TransactionFailed},
		{"cancelled", trxModel.TransactionFailed},
		{"canceled", trxModel.TransactionFailed},
		{"refunded", trxModel.TransactionFailed},
		{"pending", trxModel.TransactionPending},
		{"in_review", trxModel.TransactionPending},
		{"", trxModel.TransactionPending},
		{"something-new", trxModel.TransactionPending},
	}

	for _, tc := range cases {
		if got := MapGatewayStatus(tc.in); got != tc.want {
			t.Fatalf("MapGatewayStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCompletedNow(t *testing.T) {
	cases := []struct {
		name string
		prev trxModel.TransactionStatus
		next trxModel.TransactionStatus
		want bool
	}{
		{"pending to completed moves the ledger", trxModel.TransactionPending, trxModel.TransactionCompleted, true},
		{"failed to completed moves the ledger", trxModel.TransactionFailed, trxModel.TransactionCompleted, true},
		{"duplicate completed delivery applies nothing", trxModel.TransactionCompleted, trxModel.TransactionCompleted, false},
		{"pending to failed applies nothing", trxModel.TransactionPending, trxModel.TransactionFailed, false},
		{"pending to pending applies nothing", trxModel.TransactionPending, trxModel.TransactionPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CompletedNow(tc.prev, tc.next); got != tc.want {
				t.Fatalf("CompletedNow(%q, %q) = %v, want %v", tc.prev, tc.next, got, tc.want)
			}
		})
	}
}

func TestNextLedgerState(t *testing.T) {
	cases := []struct {
		name           string
		amount         int64
		amountPaid     int64
		payment        int64
		paymentDateSet bool
		wantPaid       int64
		wantStatus     string
		wantReached    bool
	}{
		{"partial payment stays partial", 10000, 0, 4000, false, 4000, "partial", false},
		{"second payment reaches paid", 10000, 4000, 6000, false, 10000, "paid", true},
		{"overpayment is still paid", 10000, 4000, 7000, false, 11000, "paid", true},
		{"exact single payment", 5000, 0, 5000, false, 5000, "paid", true},
		{"payment date already set", 10000, 10000, 500, true, 10500, "paid", false},
		{"one unit short", 10000, 0, 9999, false, 9999, "partial", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextLedgerState(tc.amount, tc.amountPaid, tc.payment, tc.paymentDateSet)
			if got.AmountPaid != tc.wantPaid {
				t.Fatalf("AmountPaid = %d, want %d", got.AmountPaid, tc.wantPaid)
			}
			if got.Status != tc.wantStatus {
				t.Fatalf("Status = %q, want %q", got.Status, tc.wantStatus)
			}
			if got.ReachedPaid != tc.wantReached {
				t.Fatalf("ReachedPaid = %v, want %v", got.ReachedPaid, tc.wantReached)
			}
		})
	}
}
