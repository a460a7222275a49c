package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeautyProBR/beautypro-api/internal/httperr"
	"github.com/BeautyProBR/beautypro-api/internal/models"
)

func pendingFixture() *models.Appointment {
	return &models.Appointment{
		ID:             7,
		ProfessionalID: 1,
		ServiceID:      10,
		ClientName:     "Maria Silva",
		ClientPhone:    "11999990000",
		StartTime:      futureAt(10, 0),
		EndTime:        futureAt(10, 30),
		Status:         "pending",
	}
}

func TestResolve_Confirm(t *testing.T) {
	repo := &fakeRepo{prof: fixtureProfessional(), ap: pendingFixture()}
	uc := NewResolveAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), ResolveAppointmentInput{
		ProfessionalID: 1,
		AppointmentID:  7,
		Status:         "confirmed",
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)
	assert.NotNil(t, ap.ConfirmedAt)

	// Confirmação passa pelo caminho transacional, não pelo update simples.
	assert.Equal(t, 1, repo.confirmCalls)
}

func TestResolve_ConfirmWithNewTime(t *testing.T) {
	repo := &fakeRepo{prof: fixtureProfessional(), ap: pendingFixture()}
	uc := NewResolveAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), ResolveAppointmentInput{
		ProfessionalID: 1,
		AppointmentID:  7,
		Status:         "confirmed",
		NewDate:        "2030-06-04",
		NewTime:        "15:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)

	want := time.Date(2030, time.June, 4, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, want, ap.StartTime)

	// Duração original preservada.
	assert.Equal(t, want.Add(30*time.Minute), ap.EndTime)
}

func TestResolve_ConfirmTwiceRejected(t *testing.T) {
	ap := pendingFixture()
	repo := &fakeRepo{prof: fixtureProfessional(), ap: ap}
	uc := NewResolveAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), ResolveAppointmentInput{
		ProfessionalID: 1,
		AppointmentID:  7,
		Status:         "confirmed",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), ResolveAppointmentInput{
		ProfessionalID: 1,
		AppointmentID:  7,
		Status:         "confirmed",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, 1, repo.confirmCalls)
}

func TestResolve_ConfirmConflictSurfaces(t *testing.T) {
	repo := &fakeRepo{
		prof:       fixtureProfessional(),
		ap:         pendingFixture(),
		confirmErr: httperr.ErrBusiness("time_conflict"),
	}
	uc := NewResolveAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), ResolveAppointmentInput{
		ProfessionalID: 1,
		AppointmentID:  7,
		Status:         "confirmed",
	})

	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestResolve_Reject(t *testing.T) {
	repo := &fakeRepo{prof: fixtureProfessional(), ap: pendingFixture()}
	uc := NewResolveAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), ResolveAppointmentInput{
		ProfessionalID: 1,
		AppointmentID:  7,
		Status:         "rejected",
	})

	require.NoError(t, err)
	assert.Equal(t, "rejected", ap.Status)
	assert.NotNil(t, ap.RejectedAt)
	require.Len(t, repo.updated, 1)
	assert.Zero(t, repo.confirmCalls)
}

func TestResolve_RejectAfterConfirmFails(t *testing.T) {
	ap := pendingFixture()
	ap.Status = "confirmed"

	repo := &fakeRepo{prof: fixtureProfessional(), ap: ap}
	uc := NewResolveAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), ResolveAppointmentInput{
		ProfessionalID: 1,
		AppointmentID:  7,
		Status:         "rejected",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestResolve_InvalidStatus(t *testing.T) {
	repo := &fakeRepo{prof: fixtureProfessional(), ap: pendingFixture()}
	uc := NewResolveAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), ResolveAppointmentInput{
		ProfessionalID: 1,
		AppointmentID:  7,
		Status:         "cancelled",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestResolve_NotOwner(t *testing.T) {
	ap := pendingFixture()
	ap.ProfessionalID = 2

	prof := fixtureProfessional()
	repo := &fakeRepo{prof: prof, ap: ap}
	uc := NewResolveAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), ResolveAppointmentInput{
		ProfessionalID: 1,
		AppointmentID:  7,
		Status:         "confirmed",
	})

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
