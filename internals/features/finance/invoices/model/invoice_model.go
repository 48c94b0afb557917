package model

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// InvoiceModel tracks an amount owed by a student. amount_paid only grows;
// status follows the threshold amount_paid >= amount.
type InvoiceModel struct {
	InvoiceID          uuid.UUID     `gorm:"column:invoice_id;type:uuid;default:gen_random_uuid();primaryKey" json:"invoice_id"`
	InvoiceStudentID   uuid.UUID     `gorm:"column:invoice_student_id;type:uuid;not null" json:"invoice_student_id"`
	InvoiceTitle       string        `gorm:"column:invoice_title;type:text;not null" json:"invoice_title"`
	InvoiceAmount      int64         `gorm:"column:invoice_amount;not null;check:invoice_amount >= 0" json:"invoice_amount"`
	InvoiceAmountPaid  int64         `gorm:"column:invoice_amount_paid;not null;default:0" json:"invoice_amount_paid"`
	InvoiceStatus      InvoiceStatus `gorm:"column:invoice_status;type:varchar(20);not null;default:pending" json:"invoice_status"`
	InvoiceDueDate     *time.Time    `gorm:"column:invoice_due_date;type:date" json:"invoice_due_date,omitempty"`
	InvoicePaymentDate *time.Time    `gorm:"column:invoice_payment_date" json:"invoice_payment_date,omitempty"`
	InvoiceCreatedAt   time.Time     `gorm:"column:invoice_created_at;autoCreateTime" json:"invoice_created_at"`
	InvoiceUpdatedAt   *time.Time    `gorm:"column:invoice_updated_at;autoUpdateTime" json:"invoice_updated_at,omitempty"`
}

func (InvoiceModel) TableName() string { return "invoices" }
