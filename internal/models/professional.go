package models

import "time"

// Professional é a raiz do tenant: todos os serviços, agendamentos
// e lançamentos financeiros pertencem a um profissional.
type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// PublicID aparece no link público de agendamento.
	PublicID string `gorm:"size:36;uniqueIndex;not null" json:"public_id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	BusinessName string `gorm:"size:100;not null" json:"business_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Timezone           string `gorm:"size:60" json:"timezone"`
	SubscriptionStatus string `gorm:"size:20;default:'inactive'" json:"subscription_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
