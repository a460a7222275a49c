package models

import (
	"encoding/json"
	"time"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint         `gorm:"index" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Cliente não tem conta: só nome e telefone informados no agendamento.
	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:30;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	RejectedAt  *time.Time `json:"rejected_at"`

	Proposal *RescheduleProposal `gorm:"foreignKey:AppointmentID" json:"reschedule_proposal,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON acrescenta date/time derivados, que é o formato que o
// front público consome.
func (a Appointment) MarshalJSON() ([]byte, error) {
	type alias Appointment
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
		Time string `json:"time"`
	}{
		alias: alias(a),
		Date:  a.StartTime.Format("2006-01-02"),
		Time:  a.StartTime.Format("15:04"),
	})
}
