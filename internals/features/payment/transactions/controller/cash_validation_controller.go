package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scolaria_backend/internals/features/payment/transactions/dto"
	"scolaria_backend/internals/features/payment/transactions/model"
	"scolaria_backend/internals/features/payment/transactions/service"
	helper "scolaria_backend/internals/helpers"
)

type CashValidationController struct {
	DB *gorm.DB
}

func NewCashValidationController(db *gorm.DB) *CashValidationController {
	return &CashValidationController{DB: db}
}

// checkCashValidatable runs the precondition chain on a loaded transaction:
// only cash transactions may be completed manually, and re-running on an
// already completed one is acknowledged without writes.
func checkCashValidatable(trx *model.PaymentTransactionModel) (alreadyValidated bool, err error) {
	if trx.TransactionPaymentMethod != model.MethodCash {
		return false, fiber.NewError(fiber.StatusBadRequest,
			"Only cash transactions can be validated manually")
	}
	if trx.TransactionStatus == model.TransactionCompleted {
		return true, nil
	}
	return false, nil
}

// ValidateCashPayment marks a cash transaction as completed and applies the
// same ledger/notification steps as the webhook completion path. Re-running
// it on an already completed transaction is a no-op success.
//
// POST /api/a/payments/validate-cash
func (ctrl *CashValidationController) ValidateCashPayment(c *fiber.Ctx) error {
	var req dto.ValidateCashPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	transactionID, err := req.ResolveID()
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "transactionId is required")
	}

	var validated *model.PaymentTransactionModel
	alreadyValidated := false

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var trx model.PaymentTransactionModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("transaction_id = ?", transactionID).
			First(&trx).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
			}
			return err
		}

		done, err := checkCashValidatable(&trx)
		if err != nil {
			return err
		}
		if done {
			alreadyValidated = true
			validated = &trx
			return nil
		}

		if err := tx.Model(&trx).
			Update("transaction_status", model.TransactionCompleted).Error; err != nil {
			return err
		}
		if err := service.ApplyCompletedPayment(tx, &trx); err != nil {
			return err
		}

		validated = &trx
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] cash validation failed for %s: %v", transactionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if alreadyValidated {
		return helper.JsonOK(c, "already validated", fiber.Map{
			"transaction_id": validated.TransactionID,
		})
	}

	service.NotifyPaymentConfirmed(ctrl.DB, validated)

	return helper.JsonOK(c, "Cash payment validated", fiber.Map{
		"transaction_id": validated.TransactionID,
		"status":         model.TransactionCompleted,
	})
}
