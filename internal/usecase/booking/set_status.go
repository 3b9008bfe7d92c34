package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmoura-dev/barber-booking-api/internal/audit"
	"github.com/dmoura-dev/barber-booking-api/internal/cache"
	domain "github.com/dmoura-dev/barber-booking-api/internal/domain/booking"
	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
	"github.com/dmoura-dev/barber-booking-api/internal/models"
	"github.com/dmoura-dev/barber-booking-api/internal/timezone"
)

const (
	ActionFinish = "finish"
	ActionCancel = "cancel"
)

type SetBookingStatus struct {
	repo  domain.Repository
	cache *cache.Store
	audit *audit.Dispatcher
}

func NewSetBookingStatus(
	repo domain.Repository,
	cache *cache.Store,
	audit *audit.Dispatcher,
) *SetBookingStatus {
	return &SetBookingStatus{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *SetBookingStatus) Execute(
	ctx context.Context,
	bookingID uuid.UUID,
	action string,
) (*models.Booking, error) {

	if action != ActionFinish && action != ActionCancel {
		return nil, httperr.ErrBusiness("invalid_action")
	}

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, b.BarbershopID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)

	var auditAction string
	switch action {
	case ActionFinish:
		if err := domain.Finish(b, now); err != nil {
			return nil, err
		}
		auditAction = "booking_finished"
	case ActionCancel:
		if err := domain.Cancel(b, now); err != nil {
			return nil, err
		}
		auditAction = "booking_cancelled"
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// cancelamento devolve o horário à grade do dia
	if action == ActionCancel {
		loc := timezone.Location(shop.Timezone)
		uc.cache.Del(ctx, AvailabilityCacheKey(shop.ID.String(), b.Date.In(loc)))
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Action:       auditAction,
		Entity:       "booking",
		EntityID:     &b.ID,
	})

	return b, nil
}
