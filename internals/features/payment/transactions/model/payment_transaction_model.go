package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

const (
	MethodCash    = "cash"
	MethodGateway = "gateway"
)

// PaymentTransactionModel records one payment attempt. A transaction targets
// either an invoice or a student article order, never both. Gateway-initiated
// rows carry the gateway's external reference for webhook reconciliation.
type PaymentTransactionModel struct {
	TransactionID               uuid.UUID         `gorm:"column:transaction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"transaction_id"`
	TransactionStudentID        *uuid.UUID        `gorm:"column:transaction_student_id;type:uuid" json:"transaction_student_id,omitempty"`
	TransactionInvoiceID        *uuid.UUID        `gorm:"column:transaction_invoice_id;type:uuid" json:"transaction_invoice_id,omitempty"`
	TransactionStudentArticleID *uuid.UUID        `gorm:"column:transaction_student_article_id;type:uuid" json:"transaction_student_article_id,omitempty"`
	TransactionAmount           int64             `gorm:"column:transaction_amount;not null;check:transaction_amount > 0" json:"transaction_amount"`
	TransactionPaymentMethod    string            `gorm:"column:transaction_payment_method;type:varchar(20);not null" json:"transaction_payment_method"`
	TransactionStatus           TransactionStatus `gorm:"column:transaction_status;type:varchar(20);not null;default:pending" json:"transaction_status"`
	TransactionGatewayReference *string           `gorm:"column:transaction_gateway_reference;size:100;uniqueIndex" json:"transaction_gateway_reference,omitempty"`
	TransactionMetadata         datatypes.JSON    `gorm:"column:transaction_metadata;type:jsonb" json:"transaction_metadata,omitempty"`
	TransactionCreatedAt        time.Time         `gorm:"column:transaction_created_at;autoCreateTime" json:"transaction_created_at"`
	TransactionUpdatedAt        *time.Time        `gorm:"column:transaction_updated_at;autoUpdateTime" json:"transaction_updated_at,omitempty"`
}

func (PaymentTransactionModel) TableName() string { return "payment_transactions" }
