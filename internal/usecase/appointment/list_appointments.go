package appointment

import (
	"context"
	"time"

	domain "github.com/BeautyProBR/beautypro-api/internal/domain/appointment"
	"github.com/BeautyProBR/beautypro-api/internal/httperr"
	"github.com/BeautyProBR/beautypro-api/internal/models"
	"github.com/BeautyProBR/beautypro-api/internal/timezone"
)

type ListAppointmentsInput struct {
	ProfessionalID uint

	// YYYY-MM-DD; vazio lista tudo.
	Date string

	// pending | confirmed | rejected | reschedule_proposed; vazio = todos.
	Status string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	prof, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	filter := domain.ListFilter{Status: in.Status}

	if in.Date != "" {
		date, err := time.ParseInLocation(
			"2006-01-02",
			in.Date,
			timezone.Location(prof.Timezone),
		)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}

		dayStart := date
		dayEnd := date.Add(24 * time.Hour)
		filter.DayStart = &dayStart
		filter.DayEnd = &dayEnd
	}

	return uc.repo.ListAppointments(ctx, in.ProfessionalID, filter)
}
