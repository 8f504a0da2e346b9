package model

type Employee struct {
	DTO
	FirstName    string   `gorm:"not null" validate:"required" json:"firstname"`
	LastName     string   `gorm:"not null" validate:"required" json:"lastname"`
	Address      string   `json:"address"`
	PhoneNumber  string   `gorm:"not null" json:"phoneNumber"`
	IsActive     bool     `gorm:"not null;default:true" json:"isActive"`
	Email        string   `json:"email"`
	IdentityCard string   `gorm:"not null;uniqueIndex" validate:"required,min=9,max=12" json:"identityCard"`
	Position     string   `json:"position"` // waiter, cook, cashier, manager
	Note         string   `json:"note"`
	ProviderId   uint     `json:"providerId"`
	AccountId    *uint    `json:"accountId"`
	Account      *Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:AccountId" json:"account"`
}

type Employees []Employee

type CreateEmployeeInput struct {
	FirstName    string `json:"firstname" validate:"required,min=1"`
	LastName     string `json:"lastname" validate:"required,min=1"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,min=9"`
	Email        string `json:"email" validate:"omitempty,email"`
	IdentityCard string `json:"identityCard" validate:"required,min=9"`
	Position     string `json:"position"`
	AccountId    *uint  `json:"accountId"`
}

type FilterEmployee struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Position  string `json:"position"`
	Active    *bool  `json:"active"`
}
