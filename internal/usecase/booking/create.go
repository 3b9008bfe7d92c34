package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmoura-dev/barber-booking-api/internal/audit"
	"github.com/dmoura-dev/barber-booking-api/internal/cache"
	domain "github.com/dmoura-dev/barber-booking-api/internal/domain/booking"
	"github.com/dmoura-dev/barber-booking-api/internal/holidays"
	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
	"github.com/dmoura-dev/barber-booking-api/internal/models"
	"github.com/dmoura-dev/barber-booking-api/internal/timezone"
)

const (
	minClientNameLen  = 2
	minClientPhoneLen = 8
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarbershopID uuid.UUID
	ServiceID    uuid.UUID

	UserID string

	ClientName  string
	ClientPhone string

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	holidays *holidays.Calendar
	cache    *cache.Store
	audit    *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	holidays *holidays.Calendar,
	cache *cache.Store,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		holidays: holidays,
		cache:    cache,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Barbearia
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Dados do cliente
	// --------------------------------------------------
	name := strings.TrimSpace(in.ClientName)
	if len([]rune(name)) < minClientNameLen {
		return nil, httperr.ErrBusiness("invalid_client_name")
	}

	phone := strings.TrimSpace(in.ClientPhone)
	if len(phone) < minClientPhoneLen {
		return nil, httperr.ErrBusiness("invalid_client_phone")
	}

	// --------------------------------------------------
	// 3️⃣ Data / hora no fuso da barbearia
	// --------------------------------------------------
	date, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 4️⃣ Dia de funcionamento + alinhamento à grade
	// --------------------------------------------------
	if date.Weekday() == time.Sunday || uc.holidays.IsHoliday(date) {
		return nil, httperr.ErrBusiness("slot_not_available")
	}

	interval := shop.SlotIntervalMin
	if interval <= 0 {
		interval = domain.DefaultSlotIntervalMin
	}

	slots, err := domain.GenerateSlots(shop.OpenTime, shop.CloseTime, interval)
	if err != nil {
		return nil, err
	}

	if !containsSlot(slots, in.Time) {
		return nil, httperr.ErrBusiness("slot_not_available")
	}

	// --------------------------------------------------
	// 5️⃣ Serviço
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 6️⃣ Conflito de horário
	// --------------------------------------------------
	// Pré-checagem otimista; a palavra final é do índice único no insert.
	taken, err := uc.repo.HasBookingAt(ctx, shop.ID, date)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_already_booked")
	}

	// --------------------------------------------------
	// 7️⃣ Criação do agendamento
	// --------------------------------------------------
	b := &models.Booking{
		ServiceID:    service.ID,
		BarbershopID: shop.ID,
		UserID:       in.UserID,
		ClientName:   name,
		ClientPhone:  phone,
		Date:         date,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("slot_already_booked")
		}
		return nil, err
	}

	uc.cache.Del(ctx, AvailabilityCacheKey(shop.ID.String(), date))

	// --------------------------------------------------
	// 8️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		UserID:       &in.UserID,
		Action:       "booking_created",
		Entity:       "booking",
		EntityID:     &b.ID,
	})

	return b, nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
