package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/dmoura-dev/barber-booking-api/internal/domain/booking"
	"github.com/dmoura-dev/barber-booking-api/internal/models"
)

// fakeRepo é um domain.Repository em memória para os testes de caso de uso.
// A unicidade de (barbershop_id, date) é aplicada dentro do mutex, no mesmo
// espírito do índice único do Postgres.
type fakeRepo struct {
	mu       sync.Mutex
	shops    map[uuid.UUID]*models.Barbershop
	services map[uuid.UUID]*models.Service
	bookings map[uuid.UUID]*models.Booking
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops:    make(map[uuid.UUID]*models.Barbershop),
		services: make(map[uuid.UUID]*models.Service),
		bookings: make(map[uuid.UUID]*models.Booking),
	}
}

func (r *fakeRepo) addShop(shop *models.Barbershop) *models.Barbershop {
	if shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}
	r.shops[shop.ID] = shop
	return shop
}

func (r *fakeRepo) addService(svc *models.Service) *models.Service {
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	r.services[svc.ID] = svc
	return svc
}

func (r *fakeRepo) addBooking(b *models.Booking) *models.Booking {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return b
}

func (r *fakeRepo) GetBarbershopByID(_ context.Context, id uuid.UUID) (*models.Barbershop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shop, ok := r.shops[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return shop, nil
}

func (r *fakeRepo) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, shop := range r.shops {
		if shop.Slug == slug {
			return shop, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetService(_ context.Context, barbershopID, serviceID uuid.UUID) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, ok := r.services[serviceID]
	if !ok || svc.BarbershopID != barbershopID {
		return nil, gorm.ErrRecordNotFound
	}
	return svc, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.bookings {
		if other.BarbershopID == b.BarbershopID && other.Date.Equal(b.Date) {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_shop_date"}
		}
	}

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) HasBookingAt(_ context.Context, barbershopID uuid.UUID, date time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.BarbershopID == barbershopID && b.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) GetBookingByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) ListActiveBookingsForDay(_ context.Context, barbershopID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.BarbershopID != barbershopID || b.Cancelled {
			continue
		}
		if b.Date.Before(start) || b.Date.After(end) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForPeriod(_ context.Context, barbershopID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.BarbershopID != barbershopID {
			continue
		}
		if b.Date.Before(start) || b.Date.After(end) {
			continue
		}
		cp := *b
		if svc, ok := r.services[b.ServiceID]; ok {
			cp.Service = *svc
		}
		out = append(out, cp)
	}
	return out, nil
}

// ----------------------------------------------------------------------
// Fixtures
// ----------------------------------------------------------------------

func newTestShop() *models.Barbershop {
	return &models.Barbershop{
		ID:              uuid.New(),
		Name:            "Barbearia Central",
		Slug:            "barbearia-central",
		OpenTime:        "09:00",
		CloseTime:       "20:00",
		SlotIntervalMin: 30,
		Timezone:        "America/Sao_Paulo",
	}
}

func newTestService(shopID uuid.UUID) *models.Service {
	return &models.Service{
		ID:           uuid.New(),
		BarbershopID: shopID,
		Name:         "Corte de cabelo",
		PriceInCents: 5000,
	}
}
