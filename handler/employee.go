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

func GetEmployees(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	filterInput := new(model.FilterEmployee)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Employee{})
	if providerId := helper.RequireProvider(claim); providerId != 0 {
		condition = condition.Where("provider_id = ?", providerId)
	}
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(phone_number) LIKE ?", key, key, key)
	}
	if filterInput.Position != "" {
		condition = condition.Where("position = ?", filterInput.Position)
	}
	if filterInput.Active != nil {
		condition = condition.Where("is_active = ?", filterInput.Active)
	}
	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var employees model.Employees
	condition.Preload("Account").Order("id ASC").Find(&employees)
	response := &model.ResponseCustom{
		Rows:       employees,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetEmployeeById(c *fiber.Ctx) error {
	employeeId := c.Locals("inputId").(int)
	db := database.DB
	var employee model.Employee
	db.Preload("Account").First(&employee, employeeId)
	return utils.SuccessResponse(c, fiber.StatusOK, employee)
}

func CreateEmployee(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	db := database.DB
	input, ok := c.Locals("inputCreateEmployee").(model.CreateEmployeeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	exists, err := helper.CheckEmployeeIdentityCard(input.IdentityCard, nil)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err, "identityCard")
	}
	if exists {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.IDENTITY_CARD_EXISTS, errors.New("identityCard exists"), "identityCard")
	}

	newEmployee := new(model.Employee)
	copier.Copy(&newEmployee, &input)
	newEmployee.IsActive = true
	newEmployee.ProviderId = helper.RequireProvider(claim)

	if err := db.Create(&newEmployee).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Account").First(&newEmployee, newEmployee.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, newEmployee)
}

func EditEmployee(c *fiber.Ctx) error {
	db := database.DB
	employeeId := c.Locals("inputEmployeeId").(uint)
	input, ok := c.Locals("inputEditEmployee").(model.CreateEmployeeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	exists, err := helper.CheckEmployeeIdentityCard(input.IdentityCard, &employeeId)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err, "identityCard")
	}
	if exists {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.IDENTITY_CARD_EXISTS, errors.New("identityCard exists"), "identityCard")
	}

	tx := db.Begin()

	var employee model.Employee
	tx.Preload("Account").First(&employee, employeeId)
	copier.Copy(&employee, &input)

	if err := tx.Model(&model.Employee{DTO: model.DTO{ID: employeeId}}).Updates(employee).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	tx.Preload("Account").First(&employee, employeeId)

	tx.Commit()
	return utils.SuccessResponse(c, fiber.StatusOK, employee)
}

func DeleteEmployee(c *fiber.Ctx) error {
	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NOT_ADMIN, errors.New("permission invalid"))
	}
	providerId := helper.RequireProvider(claim)

	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	if err := db.Model(&model.Employee{}).
		Where("id IN ? AND provider_id = ?", ids, providerId).
		Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}
