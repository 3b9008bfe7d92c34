package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmoura-dev/barber-booking-api/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barbershopID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	HasBookingAt(
		ctx context.Context,
		barbershopID uuid.UUID,
		date time.Time,
	) (bool, error)

	// -------- Booking (state change) --------
	GetBookingByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability / listing --------
	ListActiveBookingsForDay(
		ctx context.Context,
		barbershopID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		barbershopID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
