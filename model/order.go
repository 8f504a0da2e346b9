package model

type Order struct {
	DTO
	PublicCode    string      `gorm:"uniqueIndex;size:20" json:"publicCode"` // ORD-XXXXXXXX
	TableName     string      `json:"table"`                                 // seating label, not a foreign key
	CustomerName  string      `json:"customerName"`
	Status        string      `gorm:"not null;default:'pending'" json:"status"`
	PaymentMethod string      `gorm:"not null;default:'pending'" json:"paymentMethod"`
	Total         float64     `json:"total"`
	Items         []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
	ProviderId    uint        `json:"providerId"`
	CreatedBy     uint        `json:"createdBy"`
}

type OrderItem struct {
	DTO
	OrderId   uint    `json:"orderId"`
	Name      string  `gorm:"not null" json:"name"`
	Quantity  int     `gorm:"not null" validate:"gt=0" json:"quantity"`
	UnitPrice float64 `gorm:"not null" validate:"gte=0" json:"unitPrice"`
}

type Orders []Order

type CreateOrderInput struct {
	TableName    string                 `json:"table" validate:"required"`
	CustomerName string                 `json:"customerName"`
	Items        []CreateOrderItemInput `json:"items" validate:"required,min=1,dive"`
	Priority     string                 `json:"priority" validate:"omitempty,oneof=normal high"`
}

type CreateOrderItemInput struct {
	Name      string  `json:"name" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
	Notes     string  `json:"notes"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending cooking ready delivered"`
}

type SetPaymentMethodInput struct {
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=pending cash card"`
}

type FilterOrder struct {
	Pagination
	Status    string `json:"status"` // "all" or empty returns everything
	TableName string `json:"table"`
}
