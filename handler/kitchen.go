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
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetKitchenTickets lists the open tickets with their derived status. The
// status is computed from the items on every read, it is never stored.
func GetKitchenTickets(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	tickets := Floor(providerId).Kitchen.List()

	response := make([]fiber.Map, 0, len(tickets))
	for _, ticket := range tickets {
		response = append(response, fiber.Map{
			"ticket":    ticket,
			"status":    store.DeriveStatus(ticket.Items),
			"canNotify": store.CanNotify(ticket.Items) && !ticket.Notified,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// UpdateKitchenItemStatus advances one item on a ticket. When the ticket's
// derived status moves forward the owning order is pulled along with it.
func UpdateKitchenItemStatus(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	ticketId, err := strconv.Atoi(c.Params("ticketId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	itemId, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	input, ok := c.Locals("inputKitchenItem").(model.UpdateKitchenItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	floor := Floor(providerId)
	before, err := floor.Kitchen.Get(uint(ticketId))
	if err != nil {
		return storeErrorResponse(c, err)
	}
	previousDerived := store.DeriveStatus(before.Items)

	ticket, err := floor.Kitchen.UpdateItemStatus(uint(ticketId), uint(itemId), input.Status)
	if err != nil {
		return storeErrorResponse(c, err)
	}

	if err := database.DB.Model(&model.KitchenItem{}).
		Where("id = ?", itemId).
		Update("status", input.Status).Error; err != nil {
		log.Printf("Error persisting kitchen item %d: %v", itemId, err)
	}

	derived := store.DeriveStatus(ticket.Items)
	if derived != previousDerived {
		syncOrderWithKitchen(floor, ticket.OrderId, derived)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"ticket": ticket,
		"status": derived,
	})
}

// NotifyOrder flags a fully ready ticket so the waiters get pinged once.
func NotifyOrder(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	ticketId, err := strconv.Atoi(c.Params("ticketId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	ticket, err := Floor(providerId).Kitchen.MarkNotified(uint(ticketId))
	if err != nil {
		return storeErrorResponse(c, err)
	}

	if err := database.DB.Model(&model.KitchenOrder{}).
		Where("id = ?", ticketId).
		Update("notified", true).Error; err != nil {
		log.Printf("Error persisting notify flag of ticket %d: %v", ticketId, err)
	}

	PublishKitchenReady(providerId, ticket)

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// syncOrderWithKitchen moves the order one step forward when the kitchen
// reaches the matching stage. Items advance one step at a time so the derived
// status never skips a stage.
func syncOrderWithKitchen(floor *store.Floor, orderId uint, derived string) {
	var target string
	switch derived {
	case constants.KITCHEN_COOKING:
		target = constants.ORDER_COOKING
	case constants.KITCHEN_READY:
		target = constants.ORDER_READY
	default:
		return
	}

	var record model.Order
	if err := database.DB.Select("public_code").First(&record, orderId).Error; err != nil {
		log.Printf("Error loading order %d for kitchen sync: %v", orderId, err)
		return
	}

	order, err := floor.Orders.UpdateStatus(record.PublicCode, target)
	if err != nil {
		// already at or past the target, nothing to pull forward
		return
	}
	if err := database.DB.Model(&model.Order{}).
		Where("public_code = ?", record.PublicCode).
		Update("status", order.Status).Error; err != nil {
		log.Printf("Error persisting status of order %s: %v", record.PublicCode, err)
	}
}
