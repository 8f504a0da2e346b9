package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTransactions lists purchases touching the caller's provider, as buyer or
// as supplier.
func GetTransactions(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	var filter model.FilterTransaction
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.Transaction{}).
		Preload("Items").
		Preload("Items.Product").
		Where("buyer_id = ? OR supplier_id = ?", providerId, providerId)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SupplierId != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierId)
	}

	var totalCount int64
	query.Count(&totalCount)
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var transactions model.Transactions
	if err := query.Order("id DESC").Find(&transactions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       transactions,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// CreateTransaction records a purchase from a supplier. Supplier stock is
// decremented inside the same transaction so two buyers cannot both take the
// last unit.
func CreateTransaction(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	input, ok := c.Locals("inputCreateTransaction").(model.CreateTransactionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var supplier model.Provider
	if err := db.Where("id = ? AND type = ? AND active = ?", input.SupplierId, constants.PROVIDER_SUPPLIER, true).
		First(&supplier).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_INPUT, errors.New("supplier not found"))
	}

	newTransaction := model.Transaction{
		PublicCode: "TRX-" + uuid.New().String()[:8],
		BuyerId:    providerId,
		SupplierId: input.SupplierId,
		Status:     constants.TRANSACTION_PENDING,
		CreatedBy:  claim.AccountId,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		items := make([]model.TransactionItem, 0, len(input.Items))
		for _, item := range input.Items {
			var product model.Product
			if err := tx.Where("id = ? AND provider_id = ? AND listed = ?", item.ProductId, input.SupplierId, true).
				First(&product).Error; err != nil {
				return errors.New("product not available from this supplier")
			}
			if product.Stock < item.Quantity {
				return errors.New("insufficient stock for " + product.Name)
			}
			if err := tx.Model(&model.Product{}).
				Where("id = ?", product.ID).
				Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}
			items = append(items, model.TransactionItem{
				ProductId: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
			})
			total += product.Price * item.Quantity
		}

		newTransaction.TotalAmount = total
		newTransaction.Items = items
		return tx.Create(&newTransaction).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newTransaction)
}

// PayTransaction settles a pending purchase.
func PayTransaction(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	input, ok := c.Locals("inputPayTransaction").(model.PayTransactionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var transaction model.Transaction
	if err := db.Where("public_code = ? AND buyer_id = ?", c.Params("transactionCode"), providerId).
		First(&transaction).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_INPUT, errors.New("transaction not found"))
	}
	if transaction.Status != constants.TRANSACTION_PENDING {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.INVALID_TRANSITION, errors.New("transaction is not pending"))
	}

	now := time.Now()
	if err := db.Model(&transaction).Updates(map[string]any{
		"status":         constants.TRANSACTION_PAID,
		"payment_method": input.PaymentMethod,
		"paid_at":        &now,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, transaction)
}

// CancelTransaction voids a pending purchase and puts the stock back.
func CancelTransaction(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	db := database.DB

	var transaction model.Transaction
	if err := db.Preload("Items").
		Where("public_code = ? AND (buyer_id = ? OR supplier_id = ?)", c.Params("transactionCode"), providerId, providerId).
		First(&transaction).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_INPUT, errors.New("transaction not found"))
	}
	if transaction.Status != constants.TRANSACTION_PENDING {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.INVALID_TRANSITION, errors.New("transaction is not pending"))
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, item := range transaction.Items {
			if err := tx.Model(&model.Product{}).
				Where("id = ?", item.ProductId).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		return tx.Model(&transaction).Update("status", constants.TRANSACTION_CANCELLED).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, transaction)
}
