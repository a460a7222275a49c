package appointment

import (
	"context"

	"github.com/BeautyProBR/beautypro-api/internal/audit"
	domain "github.com/BeautyProBR/beautypro-api/internal/domain/appointment"
	"github.com/BeautyProBR/beautypro-api/internal/httperr"
	"github.com/BeautyProBR/beautypro-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ProposeRescheduleInput struct {
	ProfessionalID uint
	AppointmentID  uint

	Date1 string
	Time1 string
	Date2 string
	Time2 string
	Date3 string
	Time3 string

	Message string
}

type ProposeRescheduleOutput struct {
	Appointment     *models.Appointment
	WhatsAppMessage string
}

// ======================================================
// USE CASE
// ======================================================

// ProposeReschedule registra até 3 opções de novo horário e devolve o
// texto pronto para WhatsApp. A entrega da mensagem e a resposta do
// cliente acontecem fora da API.
type ProposeReschedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewProposeReschedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ProposeReschedule {
	return &ProposeReschedule{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ProposeReschedule) Execute(
	ctx context.Context,
	in ProposeRescheduleInput,
) (*ProposeRescheduleOutput, error) {

	if in.Date1 == "" || in.Time1 == "" {
		return nil, httperr.ErrBusiness("missing_first_option")
	}

	ap, err := uc.repo.GetAppointmentForOwner(ctx, in.AppointmentID, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	proposal := &models.RescheduleProposal{
		Date1:   in.Date1,
		Time1:   in.Time1,
		Date2:   in.Date2,
		Time2:   in.Time2,
		Date3:   in.Date3,
		Time3:   in.Time3,
		Message: in.Message,
	}

	if err := domain.ProposeReschedule(ap, proposal); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveProposal(ctx, ap, proposal); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: in.ProfessionalID,
		Action:         "reschedule_proposed",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return &ProposeRescheduleOutput{
		Appointment:     ap,
		WhatsAppMessage: domain.ProposalMessage(ap.ClientName, proposal),
	}, nil
}
