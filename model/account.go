package model

type Account struct {
	DTO
	Username     string    `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password     string    `gorm:"not null" validate:"required,min=6,max=50" json:"-"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	Role         string    `json:"role"`
	ProviderId   *uint     `json:"providerId"`
	Employee     *Employee `gorm:"foreignKey:AccountId" json:"employee"`
	Provider     Provider  `gorm:"foreignKey:ProviderId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"provider"`
}

type Accounts []Account

type CreateAccountInput struct {
	Username   string `json:"username" validate:"required,min=3,max=50"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"required,oneof=ADMIN MANAGER CASHIER KITCHEN WAITER"`
	ProviderId *uint  `json:"providerId"`
}

type UpdateAccountInput struct {
	Username   *string `json:"username,omitempty"`
	Active     *bool   `json:"active,omitempty"`
	ProviderId *uint   `json:"providerId,omitempty"`
	Role       *string `json:"role,omitempty"`
}

type FilterAccount struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Active    *bool   `json:"active"`
	Role      *string `json:"role"`
}
