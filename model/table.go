package model

import "time"

// Table is a physical seating unit. Its live floor status is owned by the
// table store; rows here are the write-through persisted form.
type Table struct {
	DTO
	Name       string     `gorm:"not null" validate:"required" json:"name"`
	Capacity   int        `gorm:"not null" validate:"gt=0" json:"capacity"`
	Status     string     `gorm:"not null;default:'available'" json:"status"`
	Time       *time.Time `json:"time,omitempty"`     // occupancy/reservation start
	Customer   string     `json:"customer,omitempty"` // reservation holder
	OrderItems *int       `json:"orderItems,omitempty"`
	OrderTotal *float64   `json:"orderTotal,omitempty"`
	ProviderId uint       `json:"providerId"`
}

type Tables []Table

type CreateTableInput struct {
	Name     string `json:"name" validate:"required,min=1"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
}

type TableActionInput struct {
	Action   string `json:"action" validate:"required,oneof=occupy reserve bill pay free cancel available"`
	Customer string `json:"customer"`
}

type FilterTable struct {
	Pagination
	Status string `json:"status"`
}
