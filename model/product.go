package model

type Product struct {
	DTO
	Name       string  `gorm:"not null" validate:"required" json:"name"`
	Slug       string  `gorm:"index;size:120" json:"slug"`
	Category   string  `json:"category"`
	Unit       string  `json:"unit"` // kg, l, pcs
	Price      float64 `gorm:"not null" validate:"gte=0" json:"price"`
	Stock      float64 `gorm:"not null;default:0" json:"stock"`
	MinStock   float64 `gorm:"not null;default:0" json:"minStock"`
	ImageUrl   *string `json:"imageUrl"`
	Listed     bool     `gorm:"not null;default:false" json:"listed"` // visible on the marketplace
	ProviderId uint     `json:"providerId"`
	Provider   Provider `gorm:"foreignKey:ProviderId" json:"-"`
}

type Products []Product

type CreateProductInput struct {
	Name     string  `json:"name" validate:"required,min=1"`
	Category string  `json:"category"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price" validate:"gte=0"`
	Stock    float64 `json:"stock" validate:"gte=0"`
	MinStock float64 `json:"minStock" validate:"gte=0"`
	Listed   *bool   `json:"listed"`
}

type UpdateProductInput struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock    *float64 `json:"stock,omitempty" validate:"omitempty,gte=0"`
	MinStock *float64 `json:"minStock,omitempty" validate:"omitempty,gte=0"`
	Listed   *bool    `json:"listed,omitempty"`
}

type FilterProduct struct {
	Pagination
	SearchKey  string `json:"searchKey"`
	Category   string `json:"category"`
	Listed     *bool  `json:"listed"`
	LowStock   *bool  `json:"lowStock"`
	ProviderId *uint  `json:"providerId"`
}
