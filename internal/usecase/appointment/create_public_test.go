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

func newCreatePublicUC(repo *fakeRepo) *CreatePublicAppointment {
	availability := NewGetAvailability(repo, defaultWindow, 30*time.Minute)
	return NewCreatePublicAppointment(repo, availability, nil)
}

func TestCreatePublic_HappyPath(t *testing.T) {
	repo := &fakeRepo{prof: fixtureProfessional(), svc: fixtureService()}
	uc := newCreatePublicUC(repo)

	ap, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		ProfessionalID: 1,
		ClientName:     "Maria Silva",
		ClientPhone:    "11999990000",
		ServiceID:      10,
		Date:           "2030-06-03",
		Time:           "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, futureAt(10, 0), ap.StartTime)
	assert.Equal(t, futureAt(10, 30), ap.EndTime)
	assert.Equal(t, "Maria Silva", ap.ClientName)

	require.Len(t, repo.created, 1)
	assert.Equal(t, ap, repo.created[0])
}

func TestCreatePublic_SlotTaken(t *testing.T) {
	repo := &fakeRepo{
		prof: fixtureProfessional(),
		svc:  fixtureService(),
		confirmed: []models.Appointment{
			{StartTime: futureAt(10, 0), EndTime: futureAt(10, 30), Status: "confirmed"},
		},
	}
	uc := newCreatePublicUC(repo)

	_, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		ProfessionalID: 1,
		ClientName:     "Maria Silva",
		ClientPhone:    "11999990000",
		ServiceID:      10,
		Date:           "2030-06-03",
		Time:           "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
	assert.Empty(t, repo.created)
}

func TestCreatePublic_PendingDoesNotBlock(t *testing.T) {
	// Só confirmados reservam horário: o fake devolve apenas confirmados,
	// então dois pedidos pendentes no mesmo slot são aceitos.
	repo := &fakeRepo{prof: fixtureProfessional(), svc: fixtureService()}
	uc := newCreatePublicUC(repo)

	in := CreatePublicAppointmentInput{
		ProfessionalID: 1,
		ClientName:     "Maria Silva",
		ClientPhone:    "11999990000",
		ServiceID:      10,
		Date:           "2030-06-03",
		Time:           "10:00",
	}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in.ClientName = "Joana Souza"
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Len(t, repo.created, 2)
}

func TestCreatePublic_PastDatetime(t *testing.T) {
	repo := &fakeRepo{prof: fixtureProfessional(), svc: fixtureService()}
	uc := newCreatePublicUC(repo)

	_, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		ProfessionalID: 1,
		ClientName:     "Maria Silva",
		ClientPhone:    "11999990000",
		ServiceID:      10,
		Date:           "2020-01-01",
		Time:           "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "past_datetime"))
}

func TestCreatePublic_InvalidDate(t *testing.T) {
	repo := &fakeRepo{prof: fixtureProfessional(), svc: fixtureService()}
	uc := newCreatePublicUC(repo)

	_, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		ProfessionalID: 1,
		ClientName:     "Maria Silva",
		ClientPhone:    "11999990000",
		ServiceID:      10,
		Date:           "2030-13-40",
		Time:           "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreatePublic_ProductNotBookable(t *testing.T) {
	stock := 3
	svc := fixtureService()
	svc.Category = models.CategoryProduct
	svc.DurationMin = 0
	svc.StockQuantity = &stock

	repo := &fakeRepo{prof: fixtureProfessional(), svc: svc}
	uc := newCreatePublicUC(repo)

	_, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		ProfessionalID: 1,
		ClientName:     "Maria Silva",
		ClientPhone:    "11999990000",
		ServiceID:      10,
		Date:           "2030-06-03",
		Time:           "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_category"))
}

func TestCreatePublic_ProfessionalNotFound(t *testing.T) {
	repo := &fakeRepo{}
	uc := newCreatePublicUC(repo)

	_, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		ProfessionalID: 42,
		ServiceID:      10,
		Date:           "2030-06-03",
		Time:           "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))
}
