package appointment

import (
	"context"
	"time"

	domain "github.com/BeautyProBR/beautypro-api/internal/domain/appointment"
	"github.com/BeautyProBR/beautypro-api/internal/httperr"
	"github.com/BeautyProBR/beautypro-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository

	// Janela padrão usada quando o profissional não configurou
	// horários para o dia da semana pedido.
	defaultWindow domain.DayWindow
	step          time.Duration
}

func NewGetAvailability(
	repo domain.Repository,
	defaultWindow domain.DayWindow,
	step time.Duration,
) *GetAvailability {
	return &GetAvailability{
		repo:          repo,
		defaultWindow: defaultWindow,
		step:          step,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	prof, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// Produto não ocupa agenda: duração zero é entrada inválida aqui.
	if svc.Category != "service" || svc.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_category")
	}

	window := uc.defaultWindow

	wh, err := uc.repo.GetWorkingHours(ctx, in.ProfessionalID, int(in.Date.Weekday()))
	if err == nil && wh != nil {
		if !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
			return []string{}, nil
		}
		window = domain.DayWindow{
			Start:      wh.StartTime,
			End:        wh.EndTime,
			LunchStart: wh.LunchStart,
			LunchEnd:   wh.LunchEnd,
		}
	}

	loc := in.Date.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	confirmed, err := uc.repo.ListConfirmedForDay(ctx, in.ProfessionalID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(confirmed))
	for _, ap := range confirmed {
		busy = append(busy, domain.Interval{Start: ap.StartTime, End: ap.EndTime})
	}

	duration := time.Duration(svc.DurationMin) * time.Minute
	now := timezone.NowIn(prof.Timezone)

	slots := domain.FreeSlots(in.Date, window, uc.step, duration, busy, now)
	if slots == nil {
		slots = []string{}
	}

	return slots, nil
}
