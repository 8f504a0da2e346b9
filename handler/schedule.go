package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetShifts(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	var shifts model.Shifts
	if err := database.DB.Where("provider_id = ?", providerId).
		Order("start_time ASC").Find(&shifts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, shifts)
}

func CreateShift(c *fiber.Ctx) error {
	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}
	providerId := helper.RequireProvider(claim)

	input, ok := c.Locals("inputCreateShift").(model.CreateShiftInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var newShift model.Shift
	copier.Copy(&newShift, &input)
	newShift.ProviderId = providerId

	if err := database.DB.Create(&newShift).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, newShift)
}

func DeleteShift(c *fiber.Ctx) error {
	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}
	providerId := helper.RequireProvider(claim)

	shiftId, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	if err := database.DB.Where("id = ? AND provider_id = ?", shiftId, providerId).
		Delete(&model.Shift{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Deleted")
}

// GetSchedules lists assignments in a date window, optionally for one
// employee.
func GetSchedules(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	providerId := helper.RequireProvider(claim)

	var filter model.FilterSchedule
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Schedule{}).
		Preload("Employee").
		Preload("Shift").
		Where("provider_id = ?", providerId)
	if filter.EmployeeId != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeId)
	}
	if filter.StartDate != "" {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("date <= ?", filter.EndDate)
	}

	var schedules model.Schedules
	if err := query.Order("date ASC").Find(&schedules).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, schedules)
}

func CreateSchedule(c *fiber.Ctx) error {
	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}
	providerId := helper.RequireProvider(claim)

	input, ok := c.Locals("inputCreateSchedule").(model.CreateScheduleInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB

	var employee model.Employee
	if err := db.Where("id = ? AND provider_id = ? AND is_active = ?", input.EmployeeId, providerId, true).
		First(&employee).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_INPUT, errors.New("employee not found"))
	}
	var shift model.Shift
	if err := db.Where("id = ? AND provider_id = ?", input.ShiftId, providerId).
		First(&shift).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_INPUT, errors.New("shift not found"))
	}

	// One shift per employee per day.
	var existing int64
	db.Model(&model.Schedule{}).
		Where("employee_id = ? AND date = ? AND shift_id = ?", input.EmployeeId, date, input.ShiftId).
		Count(&existing)
	if existing > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ERROR_CREATE, errors.New("employee already scheduled for this shift"))
	}

	newSchedule := model.Schedule{
		Date:       date,
		EmployeeId: input.EmployeeId,
		ShiftId:    input.ShiftId,
		Note:       input.Note,
		ProviderId: providerId,
	}
	if err := db.Create(&newSchedule).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	newSchedule.Employee = employee
	newSchedule.Shift = shift
	return utils.SuccessResponse(c, fiber.StatusOK, newSchedule)
}

func DeleteSchedule(c *fiber.Ctx) error {
	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}
	providerId := helper.RequireProvider(claim)

	scheduleId, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	if err := database.DB.Where("id = ? AND provider_id = ?", scheduleId, providerId).
		Delete(&model.Schedule{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Deleted")
}

// SendScheduleEmails mails each employee their assignments for the next seven
// days. Sending happens in the background, the response only reports how many
// employees were covered.
func SendScheduleEmails(c *fiber.Ctx) error {
	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}
	providerId := helper.RequireProvider(claim)

	now := time.Now()
	weekEnd := now.AddDate(0, 0, 7)

	var schedules model.Schedules
	if err := database.DB.
		Preload("Employee").
		Preload("Shift").
		Where("provider_id = ? AND date BETWEEN ? AND ?", providerId, now, weekEnd).
		Order("date ASC").
		Find(&schedules).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	byEmployee := make(map[uint]*utils.ScheduleReminderData)
	emails := make(map[uint]string)
	for _, schedule := range schedules {
		if schedule.Employee.Email == "" {
			continue
		}
		data, ok := byEmployee[schedule.EmployeeId]
		if !ok {
			data = &utils.ScheduleReminderData{
				EmployeeName: schedule.Employee.FirstName + " " + schedule.Employee.LastName,
			}
			byEmployee[schedule.EmployeeId] = data
			emails[schedule.EmployeeId] = schedule.Employee.Email
		}
		data.Rows = append(data.Rows, utils.ScheduleReminderRow{
			Date:  schedule.Date.Format("Mon 02/01"),
			Shift: schedule.Shift.Name,
			Hours: schedule.Shift.StartTime + " - " + schedule.Shift.EndTime,
		})
	}

	for employeeId, data := range byEmployee {
		utils.SendScheduleReminderEmail(emails[employeeId], *data)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"notified": len(byEmployee)})
}
