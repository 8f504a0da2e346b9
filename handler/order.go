package handler

import (
	"errors"
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/store"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetOrders lists the working set from the order store. status=all (or no
// filter) returns everything.
func GetOrders(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	statusFilter := c.Query("status", "all")
	if statusFilter != "all" && !utils.IsValidValueOfConstant(statusFilter, constants.ORDER_STATUSES) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("unknown status filter"))
	}

	orders := Floor(providerId).Orders.List(statusFilter)

	response := make([]fiber.Map, 0, len(orders))
	for _, order := range orders {
		next, hasNext := store.NextOrderStatus(order.Status)
		entry := fiber.Map{"order": order}
		if hasNext {
			entry["nextStatus"] = next
		}
		response = append(response, entry)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOrderByCode(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	order, err := Floor(providerId).Orders.Get(c.Params("orderCode"))
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// CreateOrder opens an order for an occupied table: persists the order and
// its kitchen ticket, loads both into the floor stores and caches the order
// summary on the table.
func CreateOrder(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	input, ok := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	floor := Floor(providerId)

	var seat *model.Table
	for _, table := range floor.Tables.List() {
		if table.Name == input.TableName {
			t := table
			seat = &t
			break
		}
	}
	if seat == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, errors.New("unknown table label"))
	}
	if seat.Status != constants.TABLE_OCCUPIED {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.INVALID_TRANSITION, errors.New("table is not occupied"))
	}

	items := make([]model.OrderItem, 0, len(input.Items))
	kitchenItems := make([]model.KitchenItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, model.OrderItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
		kitchenItems = append(kitchenItems, model.KitchenItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Notes:    item.Notes,
			Status:   constants.KITCHEN_PENDING,
		})
	}

	priority := input.Priority
	if priority == "" {
		priority = constants.PRIORITY_NORMAL
	}

	newOrder := model.Order{
		PublicCode:    "ORD-" + uuid.New().String()[:8],
		TableName:     input.TableName,
		CustomerName:  input.CustomerName,
		Status:        constants.ORDER_PENDING,
		PaymentMethod: constants.PAYMENT_PENDING,
		Total:         store.OrderTotal(items),
		Items:         items,
		ProviderId:    providerId,
		CreatedBy:     claim.AccountId,
	}

	tx := database.DB.Begin()
	if err := tx.Create(&newOrder).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	ticket := model.KitchenOrder{
		OrderId:    newOrder.ID,
		TableName:  input.TableName,
		Priority:   priority,
		Items:      kitchenItems,
		ProviderId: providerId,
	}
	if err := tx.Create(&ticket).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	if err := floor.Orders.Add(newOrder); err != nil {
		log.Printf("Error adding order %s to floor state: %v", newOrder.PublicCode, err)
	}
	floor.Kitchen.Add(ticket)

	if _, err := floor.Tables.SetOrderSummary(seat.ID, len(items), newOrder.Total); err == nil {
		itemCount := len(items)
		database.DB.Model(&model.Table{}).Where("id = ?", seat.ID).Updates(map[string]any{
			"order_items": itemCount,
			"order_total": newOrder.Total,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newOrder)
}

// UpdateOrderStatus moves an order forward through the store, then writes the
// new status through to the database.
func UpdateOrderStatus(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	input, ok := c.Locals("inputOrderStatus").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	orderCode := c.Params("orderCode")
	order, err := Floor(providerId).Orders.UpdateStatus(orderCode, input.Status)
	if err != nil {
		return storeErrorResponse(c, err)
	}

	if err := database.DB.Model(&model.Order{}).
		Where("public_code = ?", orderCode).
		Update("status", order.Status).Error; err != nil {
		log.Printf("Error persisting status of order %s: %v", orderCode, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// SetOrderPayment records the payment method chosen at the cashier.
func SetOrderPayment(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	input, ok := c.Locals("inputPaymentMethod").(model.SetPaymentMethodInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	orderCode := c.Params("orderCode")
	order, err := Floor(providerId).Orders.SetPaymentMethod(orderCode, input.PaymentMethod)
	if err != nil {
		return storeErrorResponse(c, err)
	}

	if err := database.DB.Model(&model.Order{}).
		Where("public_code = ?", orderCode).
		Update("payment_method", order.PaymentMethod).Error; err != nil {
		log.Printf("Error persisting payment method of order %s: %v", orderCode, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
