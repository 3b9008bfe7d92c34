package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dmoura-dev/barber-booking-api/internal/domain/booking"
	"github.com/dmoura-dev/barber-booking-api/internal/holidays"
	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
	"github.com/dmoura-dev/barber-booking-api/internal/models"
	"github.com/dmoura-dev/barber-booking-api/internal/timezone"
)

var testCalendar = holidays.NewBrazil(2024, 2030)

func availabilityFixture(t *testing.T) (*GetAvailability, *fakeRepo, *models.Barbershop) {
	t.Helper()

	repo := newFakeRepo()
	shop := repo.addShop(newTestShop())
	uc := NewGetAvailability(repo, testCalendar, nil)

	return uc, repo, shop
}

// quarta-feira comum, sem feriado por perto
func openDay(loc *time.Location) time.Time {
	return time.Date(2027, time.March, 10, 0, 0, 0, 0, loc)
}

func TestGetAvailabilityFullGrid(t *testing.T) {
	uc, _, shop := availabilityFixture(t)
	loc := timezone.Location(shop.Timezone)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: shop.ID,
		Date:         openDay(loc),
	})
	require.NoError(t, err)

	assert.Len(t, slots, 23)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "20:00", slots[22])
}

func TestGetAvailabilityExcludesOccupiedSlots(t *testing.T) {
	uc, repo, shop := availabilityFixture(t)
	loc := timezone.Location(shop.Timezone)
	day := openDay(loc)

	repo.addBooking(&models.Booking{
		BarbershopID: shop.ID,
		Date:         time.Date(2027, time.March, 10, 14, 0, 0, 0, loc),
	})

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: shop.ID,
		Date:         day,
	})
	require.NoError(t, err)

	assert.Len(t, slots, 22)
	assert.NotContains(t, slots, "14:00")
	assert.Contains(t, slots, "13:30")
	assert.Contains(t, slots, "14:30")
}

func TestGetAvailabilityCancelledBookingFreesSlot(t *testing.T) {
	uc, repo, shop := availabilityFixture(t)
	loc := timezone.Location(shop.Timezone)

	repo.addBooking(&models.Booking{
		BarbershopID: shop.ID,
		Date:         time.Date(2027, time.March, 10, 15, 0, 0, 0, loc),
		Cancelled:    true,
	})

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: shop.ID,
		Date:         openDay(loc),
	})
	require.NoError(t, err)

	assert.Len(t, slots, 23)
	assert.Contains(t, slots, "15:00")
}

func TestGetAvailabilityClosedDays(t *testing.T) {
	uc, _, shop := availabilityFixture(t)
	loc := timezone.Location(shop.Timezone)

	tests := []struct {
		name string
		date time.Time
	}{
		{"domingo", time.Date(2027, time.March, 14, 0, 0, 0, 0, loc)},
		{"feriado fixo (Tiradentes)", time.Date(2027, time.April, 21, 0, 0, 0, 0, loc)},
		{"feriado móvel (Sexta-feira Santa)", time.Date(2027, time.March, 26, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
				BarbershopID: shop.ID,
				Date:         tt.date,
			})
			require.NoError(t, err)
			assert.Empty(t, slots)
		})
	}
}

func TestGetAvailabilityTodayOnlyFutureSlots(t *testing.T) {
	uc, _, shop := availabilityFixture(t)
	now := timezone.NowIn(shop.Timezone)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: shop.ID,
		Date:         timezone.StartOfDay(now),
	})
	require.NoError(t, err)

	cur := domain.SlotOf(now)
	for _, slot := range slots {
		assert.Greater(t, slot, cur, "para hoje só entram horários estritamente futuros")
	}
}

func TestGetAvailabilityOtherDayNotFilteredByClock(t *testing.T) {
	uc, _, shop := availabilityFixture(t)
	loc := timezone.Location(shop.Timezone)

	// dia que não é hoje: nenhum corte por relógio, grade inteira
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: shop.ID,
		Date:         openDay(loc),
	})
	require.NoError(t, err)
	assert.Len(t, slots, 23)
}

func TestGetAvailabilityIdempotent(t *testing.T) {
	uc, repo, shop := availabilityFixture(t)
	loc := timezone.Location(shop.Timezone)

	repo.addBooking(&models.Booking{
		BarbershopID: shop.ID,
		Date:         time.Date(2027, time.March, 10, 10, 30, 0, 0, loc),
	})

	in := domain.AvailabilityInput{BarbershopID: shop.ID, Date: openDay(loc)}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailabilityUnknownBarbershop(t *testing.T) {
	uc, _, shop := availabilityFixture(t)
	loc := timezone.Location(shop.Timezone)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: uuid.New(),
		Date:         openDay(loc),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "barbershop_not_found"))
}
