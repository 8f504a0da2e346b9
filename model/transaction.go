package model

import "time"

// Transaction is a marketplace purchase from a restaurant to a supplier.
type Transaction struct {
	DTO
	PublicCode    string            `gorm:"uniqueIndex;size:20" json:"publicCode"` // TRX-XXXXXXXX
	BuyerId       uint              `gorm:"not null" json:"buyerId"`
	Buyer         Provider          `gorm:"foreignKey:BuyerId" json:"-"`
	SupplierId    uint              `gorm:"not null" json:"supplierId"`
	Supplier      Provider          `gorm:"foreignKey:SupplierId" json:"-"`
	TotalAmount   float64           `json:"totalAmount"`
	Status        string            `gorm:"not null;default:'pending'" json:"status"` // pending, paid, cancelled
	PaymentMethod string            `json:"paymentMethod"`
	PaidAt        *time.Time        `json:"paidAt,omitempty"`
	Items         []TransactionItem `gorm:"foreignKey:TransactionId" json:"items"`
	CreatedBy     uint              `json:"createdBy"`
}

type TransactionItem struct {
	DTO
	TransactionId uint    `json:"transactionId"`
	ProductId     uint    `json:"productId"`
	Product       Product `gorm:"foreignKey:ProductId" json:"product"`
	Quantity      float64 `gorm:"not null" validate:"gt=0" json:"quantity"`
	UnitPrice     float64 `gorm:"not null" json:"unitPrice"`
}

type Transactions []Transaction

type CreateTransactionInput struct {
	SupplierId uint                         `json:"supplierId" validate:"required,gt=0"`
	Items      []CreateTransactionItemInput `json:"items" validate:"required,min=1,dive"`
}

type CreateTransactionItemInput struct {
	ProductId uint    `json:"productId" validate:"required,gt=0"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
}

type PayTransactionInput struct {
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cash card"`
}

type FilterTransaction struct {
	Pagination
	Status     string `json:"status"`
	SupplierId *uint  `json:"supplierId"`
}
