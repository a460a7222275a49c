package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BeautyProBR/beautypro-api/internal/domain/appointment"
	"github.com/BeautyProBR/beautypro-api/internal/httperr"
	"github.com/BeautyProBR/beautypro-api/internal/models"
)

var defaultWindow = domain.DayWindow{Start: "09:00", End: "12:00"}

func fixtureProfessional() *models.Professional {
	return &models.Professional{
		ID:       1,
		PublicID: "5f0c2b1e-3a9d-4c4f-9f0a-111111111111",
		Name:     "Ana",
		Timezone: "UTC",
	}
}

func fixtureService() *models.Service {
	return &models.Service{
		ID:             10,
		ProfessionalID: 1,
		Name:           "Corte feminino",
		Category:       models.CategoryService,
		DurationMin:    30,
		Price:          80,
		Active:         true,
	}
}

// Data fixa no futuro para o filtro de "slot já passou" não interferir.
func futureDate() time.Time {
	return time.Date(2030, time.June, 3, 0, 0, 0, 0, time.UTC)
}

func futureAt(hour, min int) time.Time {
	d := futureDate()
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.UTC)
}

func TestGetAvailability_FullGrid(t *testing.T) {
	repo := &fakeRepo{prof: fixtureProfessional(), svc: fixtureService()}
	uc := NewGetAvailability(repo, defaultWindow, 30*time.Minute)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           futureDate(),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestGetAvailability_ConfirmedBlocksSlot(t *testing.T) {
	repo := &fakeRepo{
		prof: fixtureProfessional(),
		svc:  fixtureService(),
		confirmed: []models.Appointment{
			{StartTime: futureAt(10, 0), EndTime: futureAt(10, 30), Status: "confirmed"},
		},
	}
	uc := NewGetAvailability(repo, defaultWindow, 30*time.Minute)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           futureDate(),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, slots)
}

func TestGetAvailability_ProductRejected(t *testing.T) {
	stock := 5
	svc := fixtureService()
	svc.Category = models.CategoryProduct
	svc.DurationMin = 0
	svc.StockQuantity = &stock

	repo := &fakeRepo{prof: fixtureProfessional(), svc: svc}
	uc := NewGetAvailability(repo, defaultWindow, 30*time.Minute)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           futureDate(),
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_category"))
}

func TestGetAvailability_InactiveDayIsEmpty(t *testing.T) {
	repo := &fakeRepo{
		prof: fixtureProfessional(),
		svc:  fixtureService(),
		wh:   &models.WorkingHours{ProfessionalID: 1, Weekday: 1, Active: false},
	}
	uc := NewGetAvailability(repo, defaultWindow, 30*time.Minute)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           futureDate(),
	})

	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetAvailability_WorkingHoursOverrideDefault(t *testing.T) {
	repo := &fakeRepo{
		prof: fixtureProfessional(),
		svc:  fixtureService(),
		wh: &models.WorkingHours{
			ProfessionalID: 1,
			Weekday:        1,
			StartTime:      "14:00",
			EndTime:        "16:00",
			Active:         true,
		},
	}
	uc := NewGetAvailability(repo, defaultWindow, 30*time.Minute)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           futureDate(),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"14:00", "14:30", "15:00", "15:30"}, slots)
}

func TestGetAvailability_ServiceNotFound(t *testing.T) {
	repo := &fakeRepo{prof: fixtureProfessional()}
	uc := NewGetAvailability(repo, defaultWindow, 30*time.Minute)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 1,
		ServiceID:      99,
		Date:           futureDate(),
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}
