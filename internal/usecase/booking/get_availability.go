package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/dmoura-dev/barber-booking-api/internal/cache"
	domain "github.com/dmoura-dev/barber-booking-api/internal/domain/booking"
	"github.com/dmoura-dev/barber-booking-api/internal/holidays"
	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
	"github.com/dmoura-dev/barber-booking-api/internal/models"
	"github.com/dmoura-dev/barber-booking-api/internal/timezone"
)

// TTL curto: o resultado é um snapshot de qualquer forma, a invariante de
// unicidade vive no banco (ver CreateBooking).
const availabilityTTL = 30 * time.Second

type GetAvailability struct {
	repo     domain.Repository
	holidays *holidays.Calendar
	cache    *cache.Store
}

func NewGetAvailability(
	repo domain.Repository,
	holidays *holidays.Calendar,
	cache *cache.Store,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		holidays: holidays,
		cache:    cache,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	loc := timezone.Location(shop.Timezone)
	date := in.Date.In(loc)

	// --------------------------------------------------
	// 1️⃣ Domingo e feriado: fechado, grade vazia
	// --------------------------------------------------
	if date.Weekday() == time.Sunday || uc.holidays.IsHoliday(date) {
		return []string{}, nil
	}

	// --------------------------------------------------
	// 2️⃣ Grade menos horários ocupados (cacheável por dia)
	// --------------------------------------------------
	free, err := uc.freeSlots(ctx, shop, date)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Hoje: só sobra o que é estritamente futuro
	// --------------------------------------------------
	now := timezone.NowIn(shop.Timezone)
	if !timezone.SameDay(date, now) {
		return free, nil
	}

	cur := domain.SlotOf(now)
	future := make([]string, 0, len(free))
	for _, slot := range free {
		if slot > cur {
			future = append(future, slot)
		}
	}

	return future, nil
}

func (uc *GetAvailability) freeSlots(
	ctx context.Context,
	shop *models.Barbershop,
	date time.Time,
) ([]string, error) {

	key := AvailabilityCacheKey(shop.ID.String(), date)

	var free []string
	if uc.cache.Get(ctx, key, &free) {
		return free, nil
	}

	interval := shop.SlotIntervalMin
	if interval <= 0 {
		interval = domain.DefaultSlotIntervalMin
	}

	allSlots, err := domain.GenerateSlots(shop.OpenTime, shop.CloseTime, interval)
	if err != nil {
		return nil, err
	}

	dayStart := timezone.StartOfDay(date)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	bookings, err := uc.repo.ListActiveBookingsForDay(ctx, shop.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		occupied[domain.SlotOf(b.Date.In(date.Location()))] = struct{}{}
	}

	free = make([]string, 0, len(allSlots))
	for _, slot := range allSlots {
		if _, taken := occupied[slot]; !taken {
			free = append(free, slot)
		}
	}

	uc.cache.Set(ctx, key, free, availabilityTTL)

	return free, nil
}

// AvailabilityCacheKey é compartilhada com os fluxos de escrita, que derrubam
// o snapshot ao confirmar ou cancelar um agendamento.
func AvailabilityCacheKey(shopID string, date time.Time) string {
	return fmt.Sprintf("availability:%s:%s", shopID, date.Format("2006-01-02"))
}
