package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetProviders(c *fiber.Ctx) error {
	filterInput := new(model.FilterProvider)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Provider{})
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.Type != nil {
		condition = condition.Where("type = ?", filterInput.Type)
	}
	if filterInput.Active != nil {
		condition = condition.Where("active = ?", filterInput.Active)
	}
	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var providers model.Providers
	condition.Order("id ASC").Find(&providers)
	response := &model.ResponseCustom{
		Rows:       providers,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetSuppliers lists the active suppliers visible on the marketplace,
// together with their listed products.
func GetSuppliers(c *fiber.Ctx) error {
	db := database.DB

	var suppliers model.Providers
	if err := db.Where("type = ? AND active = ?", constants.PROVIDER_SUPPLIER, true).
		Order("name ASC").Find(&suppliers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := []fiber.Map{}
	for _, supplier := range suppliers {
		var products model.Products
		db.Where("provider_id = ? AND listed = ?", supplier.ID, true).Order("name ASC").Find(&products)
		response = append(response, fiber.Map{
			"supplier": supplier,
			"products": products,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetProviderById(c *fiber.Ctx) error {
	providerId := c.Locals("inputId").(int)
	db := database.DB
	var provider model.Provider
	if err := db.First(&provider, providerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Provider not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, provider)
}

func CreateProvider(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("inputCreateProvider").(model.CreateProviderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	newProvider := new(model.Provider)
	copier.Copy(&newProvider, &input)
	newProvider.Slug = helper.GenerateUniqueProviderSlug(db, input.Name)
	newProvider.Active = true

	if err := db.Create(&newProvider).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newProvider)
}

func EditProvider(c *fiber.Ctx) error {
	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	providerId := c.Locals("inputId").(int)

	input := new(model.UpdateProviderInput)
	if err := c.BodyParser(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	var provider model.Provider
	if err := db.First(&provider, providerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Provider not found", err)
	}

	copier.CopyWithOption(&provider, input, copier.Option{IgnoreEmpty: true})
	if input.Active != nil {
		provider.Active = *input.Active
	}

	if err := db.Save(&provider).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, provider)
}
