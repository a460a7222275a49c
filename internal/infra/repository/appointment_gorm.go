package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BeautyProBR/beautypro-api/internal/domain/appointment"
	"github.com/BeautyProBR/beautypro-api/internal/httperr"
	"github.com/BeautyProBR/beautypro-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessionalByID(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).First(&prof, id).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *AppointmentGormRepository) GetProfessionalByPublicID(
	ctx context.Context,
	publicID string,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&prof).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", serviceID, professionalID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	professionalID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND weekday = ?", professionalID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}

	return &wh, nil
}

func (r *AppointmentGormRepository) ListConfirmedForDay(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"professional_id = ? AND status = 'confirmed' AND start_time >= ? AND start_time < ?",
			professionalID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (create / list)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	professionalID uint,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Proposal").
		Where("professional_id = ?", professionalID)

	if filter.DayStart != nil && filter.DayEnd != nil {
		q = q.Where("start_time >= ? AND start_time < ?", *filter.DayStart, *filter.DayEnd)
	}

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForOwner(
	ctx context.Context,
	appointmentID uint,
	professionalID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", appointmentID, professionalID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// ConfirmAppointment fecha a janela de corrida entre "slot mostrado
// livre" e "agendamento confirmado": dentro da transação, os
// confirmados que cruzam o intervalo são travados (FOR UPDATE) e a
// sobreposição é verificada de novo antes do write.
func (r *AppointmentGormRepository) ConfirmAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"professional_id = ? AND status = 'confirmed' AND id <> ? AND start_time < ? AND end_time > ?",
				ap.ProfessionalID, ap.ID, ap.EndTime, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Save(ap).Error
	})
}

// --------------------------------------------------
// Reschedule proposal
// --------------------------------------------------

func (r *AppointmentGormRepository) SaveProposal(
	ctx context.Context,
	ap *models.Appointment,
	p *models.RescheduleProposal,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ap).Error; err != nil {
			return err
		}
		return tx.Create(p).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
