package handler

import (
	"errors"
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/store"
	"restaurant_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// floors hands out the per-provider in-memory floor state (orders, tables,
// kitchen tickets). Handlers resolve the provider from the caller's token, so
// no tenant ever sees another tenant's floor.
var floors = store.NewRegistry()

func Floor(providerId uint) *store.Floor {
	return floors.Floor(providerId)
}

// InitFloorState hydrates the stores from the database on startup: every
// configured table, plus the working set of orders (undelivered, or delivered
// today) and their kitchen tickets.
func InitFloorState() {
	db := database.DB

	var tables []model.Table
	if err := db.Find(&tables).Error; err != nil {
		log.Printf("Error loading tables into floor state: %v", err)
	}
	for _, table := range tables {
		Floor(table.ProviderId).Tables.Add(table)
	}

	today := time.Now().Truncate(24 * time.Hour)
	var orders []model.Order
	if err := db.Preload("Items").
		Where("status != ? OR created_at >= ?", constants.ORDER_DELIVERED, today).
		Order("id ASC").Find(&orders).Error; err != nil {
		log.Printf("Error loading orders into floor state: %v", err)
	}
	for _, order := range orders {
		if err := Floor(order.ProviderId).Orders.Add(order); err != nil {
			log.Printf("Error adding order %s to floor state: %v", order.PublicCode, err)
		}
	}

	var tickets []model.KitchenOrder
	if err := db.Preload("Items").
		Joins("JOIN orders ON orders.id = kitchen_orders.order_id").
		Where("orders.status != ? OR orders.created_at >= ?", constants.ORDER_DELIVERED, today).
		Find(&tickets).Error; err != nil {
		log.Printf("Error loading kitchen tickets into floor state: %v", err)
	}
	for _, ticket := range tickets {
		Floor(ticket.ProviderId).Kitchen.Add(ticket)
	}

	log.Printf("Floor state loaded: %d tables, %d orders, %d kitchen tickets", len(tables), len(orders), len(tickets))
}

// storeErrorResponse maps typed store errors onto HTTP statuses.
func storeErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	case errors.Is(err, store.ErrTableNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	case errors.Is(err, store.ErrItemNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	case errors.Is(err, store.ErrInvalidTransition):
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.INVALID_TRANSITION, err)
	case errors.Is(err, store.ErrUnknownStatus):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}
