package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	articleModel "scolaria_backend/internals/features/finance/articles/model"
	invoiceModel "scolaria_backend/internals/features/finance/invoices/model"
	"scolaria_backend/internals/features/payment/transactions/dto"
	"scolaria_backend/internals/features/payment/transactions/model"
	"scolaria_backend/internals/features/payment/transactions/service"
	studentModel "scolaria_backend/internals/features/school/students/model"
	profileModel "scolaria_backend/internals/features/users/user/model"
	helper "scolaria_backend/internals/helpers"
)

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

/* ======================= LIST ======================= */
// GET /api/a/payments/transactions?status=
func (ctrl *TransactionController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Order("transaction_created_at DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("transaction_status = ?", status)
	}

	var rows []model.PaymentTransactionModel
	if err := q.Limit(200).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch transactions")
	}
	return helper.JsonOK(c, "Transactions fetched", rows)
}

/* ======================= CREATE (cash entry) ======================= */
// POST /api/a/payments/transactions
func (ctrl *TransactionController) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if (req.InvoiceID == nil) == (req.StudentArticleID == nil) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Exactly one of invoice_id or student_article_id must be set")
	}

	studentID := req.StudentID
	if studentID == nil {
		id, err := ctrl.resolveStudentID(req.InvoiceID, req.StudentArticleID)
		if err != nil {
			return err
		}
		studentID = id
	}

	trx := model.PaymentTransactionModel{
		TransactionStudentID:        studentID,
		TransactionInvoiceID:        req.InvoiceID,
		TransactionStudentArticleID: req.StudentArticleID,
		TransactionAmount:           req.Amount,
		TransactionPaymentMethod:    req.PaymentMethod,
		TransactionStatus:           model.TransactionPending,
	}
	if err := ctrl.DB.Create(&trx).Error; err != nil {
		log.Println("[ERROR] create transaction:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create transaction")
	}

	return helper.JsonCreated(c, "Transaction recorded", trx)
}

/* ======================= CHECKOUT ======================= */
// Opens a gateway payment for the outstanding balance and returns the Snap
// token the dashboard redirects to.
//
// POST /api/a/payments/checkout
func (ctrl *TransactionController) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if (req.InvoiceID == nil) == (req.StudentArticleID == nil) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Exactly one of invoice_id or student_article_id must be set")
	}

	var (
		outstanding int64
		studentID   *uuid.UUID
	)

	switch {
	case req.InvoiceID != nil:
		var inv invoiceModel.InvoiceModel
		if err := ctrl.DB.Where("invoice_id = ?", *req.InvoiceID).First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Invoice not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		outstanding = inv.InvoiceAmount - inv.InvoiceAmountPaid
		studentID = &inv.InvoiceStudentID
	default:
		var order articleModel.StudentArticleModel
		if err := ctrl.DB.Where("student_article_id = ?", *req.StudentArticleID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Student article not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		outstanding = order.StudentArticleAmount - order.StudentArticleAmountPaid
		studentID = &order.StudentArticleStudentID
	}

	if outstanding <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing left to pay")
	}

	orderID := fmt.Sprintf("SCH-%d", time.Now().UnixNano())

	trx := model.PaymentTransactionModel{
		TransactionStudentID:        studentID,
		TransactionInvoiceID:        req.InvoiceID,
		TransactionStudentArticleID: req.StudentArticleID,
		TransactionAmount:           outstanding,
		TransactionPaymentMethod:    model.MethodGateway,
		TransactionStatus:           model.TransactionPending,
		TransactionGatewayReference: &orderID,
	}
	if err := ctrl.DB.Create(&trx).Error; err != nil {
		log.Println("[ERROR] create checkout transaction:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create transaction")
	}

	name, email := ctrl.payerDetails(studentID)
	token, redirectURL, err := service.GenerateSnapToken(orderID, outstanding, name, email)
	if err != nil {
		log.Println("[ERROR] GenerateSnapToken failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment token")
	}

	return helper.JsonCreated(c, "Checkout created", fiber.Map{
		"transaction_id":    trx.TransactionID,
		"gateway_reference": orderID,
		"snap_token":        token,
		"redirect_url":      redirectURL,
	})
}

/* ===================== helpers ===================== */

func (ctrl *TransactionController) resolveStudentID(invoiceID, studentArticleID *uuid.UUID) (*uuid.UUID, error) {
	if invoiceID != nil {
		var inv invoiceModel.InvoiceModel
		if err := ctrl.DB.Where("invoice_id = ?", *invoiceID).First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "Invoice not found")
			}
			return nil, err
		}
		return &inv.InvoiceStudentID, nil
	}

	var order articleModel.StudentArticleModel
	if err := ctrl.DB.Where("student_article_id = ?", *studentArticleID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student article not found")
		}
		return nil, err
	}
	return &order.StudentArticleStudentID, nil
}

// payerDetails resolves the student's profile for the gateway customer block.
// Checkout still works when the profile is incomplete.
func (ctrl *TransactionController) payerDetails(studentID *uuid.UUID) (string, string) {
	if studentID == nil {
		return "", ""
	}
	var student studentModel.StudentModel
	if err := ctrl.DB.Where("student_id = ?", *studentID).First(&student).Error; err != nil {
		return "", ""
	}
	var profile profileModel.ProfileModel
	if err := ctrl.DB.Where("user_id = ?", student.StudentUserID).First(&profile).Error; err != nil {
		return "", ""
	}
	return profile.FirstName + " " + profile.LastName, profile.Email
}
