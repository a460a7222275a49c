package models

import "time"

const (
	CategoryService = "service"
	CategoryProduct = "product"
)

type Service struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index" json:"professional_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`

	// Category decide qual dos dois campos abaixo vale:
	// service → DurationMin, product → StockQuantity.
	Category      string `gorm:"size:20;not null" json:"category"`
	DurationMin   int    `json:"duration_minutes"`
	StockQuantity *int   `json:"stock_quantity"`

	PhotoURL string `gorm:"size:255" json:"photo_url,omitempty"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
