package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/dmoura-dev/barber-booking-api/internal/domain/booking"
	"github.com/dmoura-dev/barber-booking-api/internal/dto"
	"github.com/dmoura-dev/barber-booking-api/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	barbershopID uuid.UUID,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24*time.Hour - time.Second)

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		barbershopID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			Date:        b.Date,
			Status:      string(domain.StatusOf(&b)),
			ClientName:  b.ClientName,
			ClientPhone: b.ClientPhone,
			ServiceName: b.Service.Name,
			PriceCents:  b.Service.PriceInCents,
		})
	}

	return out, nil
}
