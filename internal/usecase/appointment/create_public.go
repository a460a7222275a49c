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

type CreatePublicAppointmentInput struct {
	ProfessionalID uint

	ClientName  string
	ClientPhone string

	ServiceID uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreatePublicAppointment é a única porta de entrada do status pending:
// qualquer pessoa com o link público solicita um horário, e o
// profissional resolve depois (confirmar / recusar / reagendar).
type CreatePublicAppointment struct {
	repo         domain.Repository
	availability *GetAvailability
	audit        *audit.Dispatcher
}

func NewCreatePublicAppointment(
	repo domain.Repository,
	availability *GetAvailability,
	audit *audit.Dispatcher,
) *CreatePublicAppointment {
	return &CreatePublicAppointment{
		repo:         repo,
		availability: availability,
		audit:        audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePublicAppointment) Execute(
	ctx context.Context,
	in CreatePublicAppointmentInput,
) (*models.Appointment, error) {

	prof, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if svc.Category != models.CategoryService || svc.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_category")
	}

	loc := timezone.Location(prof.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.NowIn(prof.Timezone)
	if !start.After(now) {
		return nil, httperr.ErrBusiness("past_datetime")
	}

	// O slot pedido precisa estar na grade oferecida agora. Isso é um
	// pré-filtro: a garantia dura fica na confirmação, que revalida em
	// transação.
	date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	slots, err := uc.availability.Execute(ctx, domain.AvailabilityInput{
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,
		Date:           date,
	})
	if err != nil {
		return nil, err
	}

	offered := false
	for _, s := range slots {
		if s == in.Time {
			offered = true
			break
		}
	}
	if !offered {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	ap := &models.Appointment{
		ProfessionalID: in.ProfessionalID,
		ServiceID:      svc.ID,
		ClientName:     in.ClientName,
		ClientPhone:    in.ClientPhone,
		StartTime:      start,
		EndTime:        start.Add(time.Duration(svc.DurationMin) * time.Minute),
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: in.ProfessionalID,
		Action:         "appointment_requested",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
