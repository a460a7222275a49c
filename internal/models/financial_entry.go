package models

import "time"

const (
	EntryIncome  = "income"
	EntryExpense = "expense"
)

// FinancialEntry é append-only: não existe update nem delete.
type FinancialEntry struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index" json:"professional_id"`

	Type        string  `gorm:"size:10;not null" json:"type"`
	Description string  `gorm:"size:255;not null" json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `gorm:"size:50" json:"category"`

	ServiceID *uint `json:"service_id"`

	// Data contábil do lançamento (YYYY-MM-DD), não o instante de criação.
	Date string `gorm:"size:10;index" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
