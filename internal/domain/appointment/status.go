package appointment

import "github.com/BeautyProBR/beautypro-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending            Status = "pending"
	StatusConfirmed          Status = "confirmed"
	StatusRejected           Status = "rejected"
	StatusRescheduleProposed Status = "reschedule_proposed"
)

// ===============================
// Validations
// ===============================

// Toda transição parte de pending: confirmar, recusar ou propor
// reagendamento sobre qualquer outro status é conflito de estado.
func CanTransition(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
