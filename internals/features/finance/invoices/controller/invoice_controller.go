package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"scolaria_backend/internals/features/finance/invoices/dto"
	"scolaria_backend/internals/features/finance/invoices/model"
	studentModel "scolaria_backend/internals/features/school/students/model"
	helper "scolaria_backend/internals/helpers"
)

type InvoiceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db, Validate: validator.New()}
}

// CreateInvoice bills a student for a fixed amount. The ledger fields start
// at zero paid / pending and are only moved by payment reconciliation.
func (ctrl *InvoiceController) CreateInvoice(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", req.StudentID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify student")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	inv := req.ToModel()
	if err := ctrl.DB.Create(inv).Error; err != nil {
		log.Printf("[ERROR] create invoice: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create invoice")
	}
	return helper.JsonCreated(c, "Invoice created", inv)
}

// ListInvoices supports ?student_id= and ?status= filters.
func (ctrl *InvoiceController) ListInvoices(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.InvoiceModel{})

	if sid := c.Query("student_id"); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		q = q.Where("invoice_student_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("invoice_status = ?", status)
	}

	var invoices []model.InvoiceModel
	if err := q.Order("invoice_created_at DESC").Limit(200).Find(&invoices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch invoices")
	}
	return helper.JsonOK(c, "Invoices fetched", invoices)
}
