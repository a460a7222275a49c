package appointment

import (
	"time"

	"github.com/BeautyProBR/beautypro-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Reject(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusRejected)
	ap.RejectedAt = &now
	return nil
}

func ProposeReschedule(ap *models.Appointment, p *models.RescheduleProposal) error {
	if err := CanTransition(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusRescheduleProposed)
	p.AppointmentID = ap.ID
	return nil
}
