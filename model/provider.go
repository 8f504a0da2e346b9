package model

// Provider is a tenant: a restaurant or a marketplace supplier.
type Provider struct {
	DTO
	Name        string `gorm:"not null" validate:"required" json:"name"`
	Slug        string `gorm:"uniqueIndex;size:120" json:"slug"`
	Type        string `gorm:"not null;default:'restaurant'" json:"type"` // restaurant | supplier
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Active      bool   `gorm:"not null;default:true" json:"active"`
}

type Providers []Provider

type CreateProviderInput struct {
	Name        string `json:"name" validate:"required,min=2"`
	Type        string `json:"type" validate:"required,oneof=restaurant supplier"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type UpdateProviderInput struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Active      *bool   `json:"active,omitempty"`
}

type FilterProvider struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Type      *string `json:"type"`
	Active    *bool   `json:"active"`
}
