package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/BeautyProBR/beautypro-api/internal/domain/appointment"
	"github.com/BeautyProBR/beautypro-api/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo guarda tudo em memória para testar os casos de uso sem banco.
type fakeRepo struct {
	prof *models.Professional
	svc  *models.Service
	wh   *models.WorkingHours
	ap   *models.Appointment

	confirmed []models.Appointment

	created       []*models.Appointment
	updated       []*models.Appointment
	confirmCalls  int
	confirmErr    error
	savedProposal *models.RescheduleProposal

	lastFilter domain.ListFilter
	listResult []models.Appointment
}

func (f *fakeRepo) GetProfessionalByID(_ context.Context, id uint) (*models.Professional, error) {
	if f.prof == nil || f.prof.ID != id {
		return nil, errNotFound
	}
	return f.prof, nil
}

func (f *fakeRepo) GetProfessionalByPublicID(_ context.Context, publicID string) (*models.Professional, error) {
	if f.prof == nil || f.prof.PublicID != publicID {
		return nil, errNotFound
	}
	return f.prof, nil
}

func (f *fakeRepo) GetService(_ context.Context, professionalID, serviceID uint) (*models.Service, error) {
	if f.svc == nil || f.svc.ID != serviceID || f.svc.ProfessionalID != professionalID {
		return nil, errNotFound
	}
	return f.svc, nil
}

func (f *fakeRepo) GetWorkingHours(_ context.Context, _ uint, _ int) (*models.WorkingHours, error) {
	if f.wh == nil {
		return nil, errNotFound
	}
	return f.wh, nil
}

func (f *fakeRepo) ListConfirmedForDay(_ context.Context, _ uint, _, _ time.Time) ([]models.Appointment, error) {
	return f.confirmed, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(f.created) + 1)
	f.created = append(f.created, ap)
	return nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, _ uint, filter domain.ListFilter) ([]models.Appointment, error) {
	f.lastFilter = filter
	return f.listResult, nil
}

func (f *fakeRepo) GetAppointmentForOwner(_ context.Context, appointmentID, professionalID uint) (*models.Appointment, error) {
	if f.ap == nil || f.ap.ID != appointmentID || f.ap.ProfessionalID != professionalID {
		return nil, errNotFound
	}
	return f.ap, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.updated = append(f.updated, ap)
	return nil
}

func (f *fakeRepo) ConfirmAppointment(_ context.Context, ap *models.Appointment) error {
	f.confirmCalls++
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.updated = append(f.updated, ap)
	return nil
}

func (f *fakeRepo) SaveProposal(_ context.Context, ap *models.Appointment, p *models.RescheduleProposal) error {
	f.updated = append(f.updated, ap)
	f.savedProposal = p
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)
