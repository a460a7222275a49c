package appointment

import (
	"context"
	"time"

	"github.com/BeautyProBR/beautypro-api/internal/models"
)

type ListFilter struct {
	DayStart *time.Time
	DayEnd   *time.Time
	Status   string
}

type Repository interface {
	// -------- Professional --------
	GetProfessionalByID(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetProfessionalByPublicID(
		ctx context.Context,
		publicID string,
	) (*models.Professional, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		professionalID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Availability --------
	GetWorkingHours(
		ctx context.Context,
		professionalID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListConfirmedForDay(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (create / list) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		professionalID uint,
		filter ListFilter,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	GetAppointmentForOwner(
		ctx context.Context,
		appointmentID uint,
		professionalID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ConfirmAppointment grava o status confirmado dentro de uma
	// transação que trava os confirmados conflitantes e revalida a
	// sobreposição. Devolve time_conflict quando o slot foi tomado
	// entre a oferta e a confirmação.
	ConfirmAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Reschedule proposal --------
	SaveProposal(
		ctx context.Context,
		ap *models.Appointment,
		p *models.RescheduleProposal,
	) error
}
