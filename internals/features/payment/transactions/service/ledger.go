package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	articleModel "scolaria_backend/internals/features/finance/articles/model"
	invoiceModel "scolaria_backend/internals/features/finance/invoices/model"
	notifModel "scolaria_backend/internals/features/home/notifications/model"
	trxModel "scolaria_backend/internals/features/payment/transactions/model"
	studentModel "scolaria_backend/internals/features/school/students/model"
)

// MapGatewayStatus maps the gateway's transaction status to the local one.
// Unknown statuses keep the transaction pending.
func MapGatewayStatus(status string) trxModel.TransactionStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		return trxModel.TransactionCompleted
	case "declined", "cancelled", "canceled", "refunded":
		return trxModel.TransactionFailed
	default:
		return trxModel.TransactionPending
	}
}

// CompletedNow reports whether a status change is the transition that moves
// the ledger. A transaction already completed before the change returns
// false, so duplicate deliveries apply nothing.
func CompletedNow(prev, next trxModel.TransactionStatus) bool {
	return next == trxModel.TransactionCompleted && prev != trxModel.TransactionCompleted
}

// LedgerState is the next state of an invoice or article ledger after a
// payment of some amount has been applied.
type LedgerState struct {
	AmountPaid  int64
	Status      string
	ReachedPaid bool // payment_date must be set now (first transition to paid)
}

const (
	ledgerPartial = "partial"
	ledgerPaid    = "paid"
)

// NextLedgerState applies one payment to a ledger. amount_paid only grows;
// status is recomputed strictly by threshold; ReachedPaid fires only on the
// first transition to paid so payment_date is written exactly once.
func NextLedgerState(amount, amountPaid, payment int64, paymentDateSet bool) LedgerState {
	next := LedgerState{AmountPaid: amountPaid + payment}
	if next.AmountPaid >= amount {
		next.Status = ledgerPaid
		next.ReachedPaid = !paymentDateSet
	} else {
		next.Status = ledgerPartial
	}
	return next
}

// ApplyCompletedPayment runs the ledger update for a transaction that has just
// reached completed, inside the caller's DB transaction. The transaction
// references either a student article order or an invoice; when neither is
// set there is nothing to apply. Row locks close the concurrent
// read-modify-write race on amount_paid.
func ApplyCompletedPayment(tx *gorm.DB, trx *trxModel.PaymentTransactionModel) error {
	switch {
	case trx.TransactionStudentArticleID != nil:
		if err := applyToStudentArticle(tx, trx); err != nil {
			return err
		}
	case trx.TransactionInvoiceID != nil:
		if err := applyToInvoice(tx, trx); err != nil {
			return err
		}
	}
	return nil
}

func applyToStudentArticle(tx *gorm.DB, trx *trxModel.PaymentTransactionModel) error {
	var order articleModel.StudentArticleModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_article_id = ?", *trx.TransactionStudentArticleID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("student article %s not found", *trx.TransactionStudentArticleID)
		}
		return err
	}

	next := NextLedgerState(
		order.StudentArticleAmount,
		order.StudentArticleAmountPaid,
		trx.TransactionAmount,
		order.StudentArticlePaymentDate != nil,
	)

	updates := map[string]interface{}{
		"student_article_amount_paid": next.AmountPaid,
		"student_article_status":      next.Status,
	}
	if next.ReachedPaid {
		updates["student_article_payment_date"] = time.Now()
	}
	return tx.Model(&order).Updates(updates).Error
}

func applyToInvoice(tx *gorm.DB, trx *trxModel.PaymentTransactionModel) error {
	var inv invoiceModel.InvoiceModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("invoice_id = ?", *trx.TransactionInvoiceID).
		First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("invoice %s not found", *trx.TransactionInvoiceID)
		}
		return err
	}

	next := NextLedgerState(
		inv.InvoiceAmount,
		inv.InvoiceAmountPaid,
		trx.TransactionAmount,
		inv.InvoicePaymentDate != nil,
	)

	updates := map[string]interface{}{
		"invoice_amount_paid": next.AmountPaid,
		"invoice_status":      next.Status,
	}
	if next.ReachedPaid {
		updates["invoice_payment_date"] = time.Now()
	}
	return tx.Model(&inv).Updates(updates).Error
}

// NotifyPaymentConfirmed inserts a payment notification for the student's
// user. Best-effort: a failed insert is logged, never fails the payment.
func NotifyPaymentConfirmed(db *gorm.DB, trx *trxModel.PaymentTransactionModel) {
	if trx.TransactionStudentID == nil {
		return
	}

	var student studentModel.StudentModel
	if err := db.Where("student_id = ?", *trx.TransactionStudentID).First(&student).Error; err != nil {
		log.Printf("[WARN] payment notification: student %s not found: %v", *trx.TransactionStudentID, err)
		return
	}

	meta, _ := json.Marshal(map[string]interface{}{
		"transaction_id": trx.TransactionID.String(),
		"amount":         trx.TransactionAmount,
	})

	notif := notifModel.NotificationModel{
		NotificationUserID:   student.StudentUserID,
		NotificationType:     notifModel.NotificationTypePayment,
		NotificationTitle:    "Payment confirmed",
		NotificationMessage:  fmt.Sprintf("Your payment of %d has been confirmed.", trx.TransactionAmount),
		NotificationMetadata: meta,
		NotificationTags:     []string{"payment"},
	}
	if err := db.Create(&notif).Error; err != nil {
		log.Printf("[WARN] payment notification insert failed for tx %s: %v", trx.TransactionID, err)
	}
}
