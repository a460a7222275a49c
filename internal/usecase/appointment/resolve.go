package appointment

import (
	"context"
	"time"

	"github.com/BeautyProBR/beautypro-api/internal/audit"
	domain "github.com/BeautyProBR/beautypro-api/internal/domain/appointment"
	"github.com/BeautyProBR/beautypro-api/internal/httperr"
	"github.com/BeautyProBR/beautypro-api/internal/models"
	"github.com/BeautyProBR/beautypro-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ResolveAppointmentInput struct {
	ProfessionalID uint
	AppointmentID  uint

	// confirmed | rejected
	Status string

	// Opcional na confirmação: o profissional pode ajustar o horário
	// ao aceitar. Reagendamento com opções é outro caso de uso.
	NewDate string
	NewTime string
}

// ======================================================
// USE CASE
// ======================================================

type ResolveAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewResolveAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ResolveAppointment {
	return &ResolveAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ResolveAppointment) Execute(
	ctx context.Context,
	in ResolveAppointmentInput,
) (*models.Appointment, error) {

	prof, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	ap, err := uc.repo.GetAppointmentForOwner(ctx, in.AppointmentID, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(prof.Timezone)

	switch in.Status {

	case string(domain.StatusConfirmed):
		if in.NewDate != "" && in.NewTime != "" {
			start, err := time.ParseInLocation(
				"2006-01-02 15:04",
				in.NewDate+" "+in.NewTime,
				timezone.Location(prof.Timezone),
			)
			if err != nil {
				return nil, httperr.ErrBusiness("invalid_date_or_time")
			}
			if !start.After(now) {
				return nil, httperr.ErrBusiness("past_datetime")
			}

			duration := ap.EndTime.Sub(ap.StartTime)
			ap.StartTime = start
			ap.EndTime = start.Add(duration)
		}

		if err := domain.Confirm(ap, now); err != nil {
			return nil, err
		}

		// Check-then-write transacional: trava os confirmados
		// conflitantes e revalida a sobreposição antes de gravar.
		if err := uc.repo.ConfirmAppointment(ctx, ap); err != nil {
			return nil, err
		}

	case string(domain.StatusRejected):
		if err := domain.Reject(ap, now); err != nil {
			return nil, err
		}

		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}

	default:
		return nil, httperr.ErrBusiness("invalid_status")
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: in.ProfessionalID,
		Action:         "appointment_" + in.Status,
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
