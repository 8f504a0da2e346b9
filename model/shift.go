package model

import "time"

type Shift struct {
	DTO
	Name       string `gorm:"not null" validate:"required" json:"name"` // Morning, Evening...
	StartTime  string `gorm:"not null" json:"startTime"`                // HH:MM
	EndTime    string `gorm:"not null" json:"endTime"`
	ProviderId uint   `json:"providerId"`
}

type Shifts []Shift

type CreateShiftInput struct {
	Name      string `json:"name" validate:"required,min=1"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

// Schedule assigns one employee to one shift on one day.
type Schedule struct {
	DTO
	Date       time.Time `gorm:"not null" json:"date"`
	EmployeeId uint      `gorm:"not null" json:"employeeId"`
	Employee   Employee  `gorm:"foreignKey:EmployeeId" json:"employee"`
	ShiftId    uint      `gorm:"not null" json:"shiftId"`
	Shift      Shift     `gorm:"foreignKey:ShiftId" json:"shift"`
	Note       string    `json:"note"`
	ProviderId uint      `json:"providerId"`
}

type Schedules []Schedule

type CreateScheduleInput struct {
	Date       string `json:"date" validate:"required"` // YYYY-MM-DD
	EmployeeId uint   `json:"employeeId" validate:"required,gt=0"`
	ShiftId    uint   `json:"shiftId" validate:"required,gt=0"`
	Note       string `json:"note"`
}

type FilterSchedule struct {
	Pagination
	EmployeeId *uint  `json:"employeeId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}
