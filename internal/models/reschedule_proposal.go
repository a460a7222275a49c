package models

import "time"

// RescheduleProposal guarda até 3 opções de novo horário oferecidas
// pelo profissional. A resposta do cliente chega por fora (WhatsApp).
type RescheduleProposal struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"uniqueIndex" json:"appointment_id"`

	Date1 string `gorm:"size:10" json:"date1"`
	Time1 string `gorm:"size:5" json:"time1"`
	Date2 string `gorm:"size:10" json:"date2"`
	Time2 string `gorm:"size:5" json:"time2"`
	Date3 string `gorm:"size:10" json:"date3"`
	Time3 string `gorm:"size:5" json:"time3"`

	Message string `gorm:"size:500" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
