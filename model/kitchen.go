package model

// KitchenOrder is the kitchen-side ticket for one order, grouped by table and
// creation time. Its status is always derived from the items, never stored.
type KitchenOrder struct {
	DTO
	OrderId    uint          `gorm:"uniqueIndex" json:"orderId"`
	TableName  string        `json:"table"`
	Priority   string        `gorm:"not null;default:'normal'" json:"priority"` // normal | high
	Notified   bool          `gorm:"not null;default:false" json:"notified"`
	Items      []KitchenItem `gorm:"foreignKey:KitchenOrderId" json:"items"`
	ProviderId uint          `json:"providerId"`
}

type KitchenItem struct {
	DTO
	KitchenOrderId uint   `json:"kitchenOrderId"`
	Name           string `gorm:"not null" json:"name"`
	Quantity       int    `gorm:"not null" json:"quantity"`
	Notes          string `json:"notes"`
	Status         string `gorm:"not null;default:'pending'" json:"status"`
}

type KitchenOrders []KitchenOrder

type UpdateKitchenItemInput struct {
	Status string `json:"status" validate:"required,oneof=pending cooking ready"`
}
