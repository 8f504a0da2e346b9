package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

const messagePageSize = 50

// GetMessages returns the provider's chat history, newest first. Pass
// before=<id> to page further back.
func GetMessages(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	var filter model.FilterMessage
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.Message{}).
		Preload("Account").
		Where("provider_id = ?", providerId)
	if filter.Before != nil {
		query = query.Where("id < ?", *filter.Before)
	}

	var messages []model.Message
	if err := query.Order("id DESC").Limit(messagePageSize).Find(&messages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var nextCursor *uint
	if len(messages) == messagePageSize {
		nextCursor = &messages[len(messages)-1].ID
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"messages":   messages,
		"nextCursor": nextCursor,
	})
}

// CreateMessage stores a chat message and fans it out over the provider's
// Redis channel together with the sender's clientRef.
func CreateMessage(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	input, ok := c.Locals("inputCreateMessage").(model.CreateMessageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newMessage := model.Message{
		ProviderId: providerId,
		AccountId:  claim.AccountId,
		Sender:     claim.Username,
		Content:    input.Content,
		ClientRef:  input.ClientRef,
	}
	if err := database.DB.Create(&newMessage).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	PublishChatMessage(providerId, newMessage, input.ClientRef)

	return utils.SuccessResponse(c, fiber.StatusOK, newMessage)
}
