package dto

import (
	"time"

	"github.com/google/uuid"

	"scolaria_backend/internals/features/finance/invoices/model"
)

// ================== REQUEST ==================
type CreateInvoiceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Title     string    `json:"title" validate:"required,max=255"`
	Amount    int64     `json:"amount" validate:"required,gt=0"`
	DueDate   *string   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// ================ CONVERSION =================
func (r *CreateInvoiceRequest) ToModel() *model.InvoiceModel {
	inv := &model.InvoiceModel{
		InvoiceStudentID: r.StudentID,
		InvoiceTitle:     r.Title,
		InvoiceAmount:    r.Amount,
		InvoiceStatus:    model.InvoiceStatusPending,
	}
	if r.DueDate != nil {
		if due, err := time.Parse("2006-01-02", *r.DueDate); err == nil {
			inv.InvoiceDueDate = &due
		}
	}
	return inv
}
