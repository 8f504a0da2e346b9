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

func GetProducts(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	filterInput := new(model.FilterProduct)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Product{})
	if filterInput.ProviderId != nil {
		condition = condition.Where("provider_id = ?", *filterInput.ProviderId)
	} else if providerId := helper.RequireProvider(claim); providerId != 0 {
		condition = condition.Where("provider_id = ?", providerId)
	}
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.Category != "" {
		condition = condition.Where("category = ?", filterInput.Category)
	}
	if filterInput.Listed != nil {
		condition = condition.Where("listed = ?", filterInput.Listed)
	}
	if filterInput.LowStock != nil && *filterInput.LowStock {
		condition = condition.Where("stock <= min_stock AND min_stock > 0")
	}
	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var products model.Products
	condition.Order("id ASC").Find(&products)
	response := &model.ResponseCustom{
		Rows:       products,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetProductById(c *fiber.Ctx) error {
	productId := c.Locals("inputId").(int)
	db := database.DB
	var product model.Product
	if err := db.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func CreateProduct(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)
	if providerId == 0 {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Account is not bound to a provider", nil)
	}

	input, ok := c.Locals("inputCreateProduct").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	newProduct := new(model.Product)
	copier.Copy(&newProduct, &input)
	newProduct.ProviderId = providerId
	newProduct.Slug = helper.GenerateUniqueProductSlug(db, providerId, input.Name)
	if input.Listed != nil {
		newProduct.Listed = *input.Listed
	}

	if err := db.Create(&newProduct).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newProduct)
}

func EditProduct(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	productId := c.Locals("inputProductId").(uint)
	input, ok := c.Locals("inputEditProduct").(model.UpdateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	var product model.Product
	if err := db.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}
	if providerId := helper.RequireProvider(claim); providerId != 0 && product.ProviderId != providerId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("product belongs to another provider"))
	}

	copier.CopyWithOption(&product, &input, copier.Option{IgnoreEmpty: true})
	if input.Listed != nil {
		product.Listed = *input.Listed
	}

	if err := db.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProduct(c *fiber.Ctx) error {
	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NOT_ADMIN, errors.New("permission invalid"))
	}
	providerId := helper.RequireProvider(claim)

	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	// Only rows owned by the caller's provider can go.
	if err := db.Where("provider_id = ?", providerId).Delete(&model.Product{}, ids).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}

// GenerateProductUploadSignature signs a direct Cloudinary upload for product
// images so the dashboard can push files without routing them through us.
func GenerateProductUploadSignature(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	signature, err := helper.GenerateUploadSignature("products")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, signature)
}
