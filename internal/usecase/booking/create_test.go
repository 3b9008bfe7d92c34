package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dmoura-dev/barber-booking-api/internal/domain/booking"
	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
	"github.com/dmoura-dev/barber-booking-api/internal/models"
	"github.com/dmoura-dev/barber-booking-api/internal/timezone"
)

func createFixture(t *testing.T) (*CreateBooking, *fakeRepo, *models.Barbershop, *models.Service) {
	t.Helper()

	repo := newFakeRepo()
	shop := repo.addShop(newTestShop())
	svc := repo.addService(newTestService(shop.ID))
	uc := NewCreateBooking(repo, testCalendar, nil, nil)

	return uc, repo, shop, svc
}

func validInput(shop *models.Barbershop, svc *models.Service) CreateBookingInput {
	return CreateBookingInput{
		BarbershopID: shop.ID,
		ServiceID:    svc.ID,
		UserID:       "user-123",
		ClientName:   "João Silva",
		ClientPhone:  "11987654321",
		Date:         "2027-03-10",
		Time:         "14:00",
	}
}

func TestCreateBooking(t *testing.T) {
	uc, _, shop, svc := createFixture(t)

	b, err := uc.Execute(context.Background(), validInput(shop, svc))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, shop.ID, b.BarbershopID)
	assert.Equal(t, svc.ID, b.ServiceID)
	assert.Equal(t, "user-123", b.UserID)
	assert.Equal(t, "João Silva", b.ClientName)
	assert.False(t, b.Cancelled)
	assert.False(t, b.Finished)

	loc := timezone.Location(shop.Timezone)
	want := time.Date(2027, time.March, 10, 14, 0, 0, 0, loc)
	assert.True(t, b.Date.Equal(want), "timestamp no fuso da barbearia")
	assert.Equal(t, "14:00", domain.SlotOf(b.Date))
}

func TestCreateBookingTrimsClientData(t *testing.T) {
	uc, _, shop, svc := createFixture(t)

	in := validInput(shop, svc)
	in.ClientName = "  Zé  "
	in.ClientPhone = " 11987654321 "

	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Zé", b.ClientName)
	assert.Equal(t, "11987654321", b.ClientPhone)
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateBookingInput)
		wantCode string
	}{
		{
			name:     "nome com menos de 2 caracteres",
			mutate:   func(in *CreateBookingInput) { in.ClientName = "J" },
			wantCode: "invalid_client_name",
		},
		{
			name:     "nome só com espaços",
			mutate:   func(in *CreateBookingInput) { in.ClientName = "    " },
			wantCode: "invalid_client_name",
		},
		{
			name:     "telefone com menos de 8 caracteres",
			mutate:   func(in *CreateBookingInput) { in.ClientPhone = "1198765" },
			wantCode: "invalid_client_phone",
		},
		{
			name:     "data malformada",
			mutate:   func(in *CreateBookingInput) { in.Date = "10/03/2027" },
			wantCode: "invalid_date",
		},
		{
			name:     "data inexistente",
			mutate:   func(in *CreateBookingInput) { in.Date = "2027-02-30" },
			wantCode: "invalid_date",
		},
		{
			name:     "horário fora da grade",
			mutate:   func(in *CreateBookingInput) { in.Time = "09:15" },
			wantCode: "slot_not_available",
		},
		{
			name:     "horário antes da abertura",
			mutate:   func(in *CreateBookingInput) { in.Time = "08:30" },
			wantCode: "slot_not_available",
		},
		{
			name:     "domingo",
			mutate:   func(in *CreateBookingInput) { in.Date = "2027-03-14" },
			wantCode: "slot_not_available",
		},
		{
			name:     "feriado",
			mutate:   func(in *CreateBookingInput) { in.Date = "2027-04-21" },
			wantCode: "slot_not_available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, shop, svc := createFixture(t)

			in := validInput(shop, svc)
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode),
				"esperava %s, veio %v", tt.wantCode, err)
		})
	}
}

func TestCreateBookingUnknownService(t *testing.T) {
	uc, _, shop, svc := createFixture(t)

	in := validInput(shop, svc)
	in.ServiceID = uuid.New()

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateBookingSlotAlreadyBooked(t *testing.T) {
	uc, _, shop, svc := createFixture(t)

	in := validInput(shop, svc)
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in.ClientName = "Outro Cliente"
	_, err = uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_already_booked"))
}

// Agendamento cancelado segue ocupando o slot no banco; o horário só volta à
// grade de leitura, nunca pode ser reinserido na mesma linha de chave.
func TestCreateBookingCancelledStillBlocksSlot(t *testing.T) {
	uc, repo, shop, svc := createFixture(t)

	loc := timezone.Location(shop.Timezone)
	repo.addBooking(&models.Booking{
		BarbershopID: shop.ID,
		ServiceID:    svc.ID,
		Date:         time.Date(2027, time.March, 10, 14, 0, 0, 0, loc),
		Cancelled:    true,
	})

	_, err := uc.Execute(context.Background(), validInput(shop, svc))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_already_booked"))
}

func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	uc, _, shop, svc := createFixture(t)

	in := validInput(shop, svc)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), in)
		}(i)
	}
	wg.Wait()

	var ok, conflict int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case httperr.IsBusiness(err, "slot_already_booked"):
			conflict++
		default:
			t.Fatalf("erro inesperado: %v", err)
		}
	}

	assert.Equal(t, 1, ok, "exatamente um agendamento deve vencer a corrida")
	assert.Equal(t, 1, conflict)
}

func TestCreateBookingDifferentSlotsSameDay(t *testing.T) {
	uc, _, shop, svc := createFixture(t)

	first := validInput(shop, svc)
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := validInput(shop, svc)
	second.Time = "14:30"
	_, err = uc.Execute(context.Background(), second)
	require.NoError(t, err)
}
