package handler

import (
	"errors"
	"fmt"
	"log"
	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/store"
	"restaurant_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

// GetTables returns the live floor: every table with its current status and
// the actions it offers.
func GetTables(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	tables := Floor(providerId).Tables.List()
	response := make([]fiber.Map, 0, len(tables))
	for _, table := range tables {
		response = append(response, fiber.Map{
			"table":   table,
			"actions": store.Actions(table.Status),
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateTable(c *fiber.Ctx) error {
	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}
	providerId := helper.RequireProvider(claim)
	if providerId == 0 {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Account is not bound to a provider", nil)
	}

	input, ok := c.Locals("inputCreateTable").(model.CreateTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	newTable := model.Table{
		Name:       input.Name,
		Capacity:   input.Capacity,
		Status:     constants.TABLE_AVAILABLE,
		ProviderId: providerId,
	}
	if err := db.Create(&newTable).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	Floor(providerId).Tables.Add(newTable)
	return utils.SuccessResponse(c, fiber.StatusOK, newTable)
}

func DeleteTable(c *fiber.Ctx) error {
	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}
	providerId := helper.RequireProvider(claim)

	tableId := c.Locals("inputId").(int)

	// Ownership gate: the caller's floor must know the table.
	if _, err := Floor(providerId).Tables.Get(uint(tableId)); err != nil {
		return storeErrorResponse(c, err)
	}

	db := database.DB
	if err := db.Where("provider_id = ?", providerId).Delete(&model.Table{}, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	Floor(providerId).Tables.Remove(uint(tableId))
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": tableId})
}

// ApplyTableAction runs one floor action through the table store and writes
// the result through to the database. The store is the source of truth for
// legality; the row update is last-write-wins.
func ApplyTableAction(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	tableId := c.Locals("inputTableId").(uint)
	input, ok := c.Locals("inputTableAction").(model.TableActionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	table, err := Floor(providerId).Tables.Apply(tableId, input.Action, input.Customer)
	if err != nil {
		return storeErrorResponse(c, err)
	}

	db := database.DB
	if err := db.Model(&model.Table{}).Where("id = ?", tableId).Updates(map[string]any{
		"status":      table.Status,
		"time":        table.Time,
		"customer":    table.Customer,
		"order_items": table.OrderItems,
		"order_total": table.OrderTotal,
	}).Error; err != nil {
		log.Printf("Error persisting table %d after %q: %v", tableId, input.Action, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"table":   table,
		"actions": store.Actions(table.Status),
	})
}

// GetTableQR renders the QR code guests scan to pull the table's bill.
func GetTableQR(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	tableId := c.Locals("inputId").(int)
	table, err := Floor(providerId).Tables.Get(uint(tableId))
	if err != nil {
		return storeErrorResponse(c, err)
	}

	content := fmt.Sprintf("%s/bill/%d/%d", config.Config("PUBLIC_BASE_URL"), providerId, table.ID)
	qrBytes, err := utils.GenerateQRCode(content, 300)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qrBytes)
}

var reservationScheduler *cron.Cron

// StartReservationExpiryWorker cancels reservations that were never claimed.
func StartReservationExpiryWorker() {
	reservationScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := reservationScheduler.AddFunc("*/5 * * * *", expireStaleReservations)
	if err != nil {
		log.Printf("Error starting reservation scheduler: %v", err)
		return
	}

	reservationScheduler.Start()
	log.Println("Reservation expiry worker started (every 5 minutes)")
}

func StopReservationExpiryWorker() {
	if reservationScheduler != nil {
		reservationScheduler.Stop()
	}
}

func expireStaleReservations() {
	cutoff := time.Now().Add(-2 * time.Hour)

	var stale []model.Table
	if err := database.DB.
		Where("status = ? AND updated_at < ?", constants.TABLE_RESERVED, cutoff).
		Find(&stale).Error; err != nil {
		log.Printf("Error scanning stale reservations: %v", err)
		return
	}

	for _, table := range stale {
		released, err := Floor(table.ProviderId).Tables.Apply(table.ID, constants.ACTION_CANCEL, "")
		if err != nil {
			log.Printf("Error releasing reservation for table %d: %v", table.ID, err)
			continue
		}
		if err := database.DB.Model(&model.Table{}).Where("id = ?", table.ID).Updates(map[string]any{
			"status":   released.Status,
			"customer": released.Customer,
		}).Error; err != nil {
			log.Printf("Error persisting released table %d: %v", table.ID, err)
		}
	}

	if len(stale) > 0 {
		log.Printf("Released %d stale reservations", len(stale))
	}
}
