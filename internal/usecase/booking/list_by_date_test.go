package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmoura-dev/barber-booking-api/internal/models"
	"github.com/dmoura-dev/barber-booking-api/internal/timezone"
)

func TestListBookingsByDate(t *testing.T) {
	repo := newFakeRepo()
	shop := repo.addShop(newTestShop())
	svc := repo.addService(newTestService(shop.ID))

	loc := timezone.Location(shop.Timezone)
	done := time.Date(2027, time.March, 10, 15, 0, 0, 0, loc)

	repo.addBooking(&models.Booking{
		BarbershopID: shop.ID,
		ServiceID:    svc.ID,
		ClientName:   "João Silva",
		ClientPhone:  "11987654321",
		Date:         time.Date(2027, time.March, 10, 14, 0, 0, 0, loc),
		Finished:     true,
		FinishedAt:   &done,
	})
	repo.addBooking(&models.Booking{
		BarbershopID: shop.ID,
		ServiceID:    svc.ID,
		ClientName:   "Maria Souza",
		ClientPhone:  "11912345678",
		Date:         time.Date(2027, time.March, 10, 16, 0, 0, 0, loc),
	})

	// outro dia, fora da listagem
	repo.addBooking(&models.Booking{
		BarbershopID: shop.ID,
		ServiceID:    svc.ID,
		ClientName:   "Pedro Lima",
		ClientPhone:  "11955554444",
		Date:         time.Date(2027, time.March, 11, 14, 0, 0, 0, loc),
	})

	uc := NewListBookingsByDate(repo)

	out, err := uc.Execute(
		context.Background(),
		shop.ID,
		time.Date(2027, time.March, 10, 0, 0, 0, 0, loc),
	)
	require.NoError(t, err)
	require.Len(t, out, 2)

	byName := make(map[string]string, len(out))
	for _, d := range out {
		byName[d.ClientName] = d.Status
		assert.Equal(t, "Corte de cabelo", d.ServiceName)
		assert.Equal(t, 5000, d.PriceCents)
	}

	assert.Equal(t, "finished", byName["João Silva"])
	assert.Equal(t, "confirmed", byName["Maria Souza"])
}
