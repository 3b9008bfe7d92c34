package booking

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	domain "github.com/dmoura-dev/barber-booking-api/internal/domain/booking"
	"github.com/dmoura-dev/barber-booking-api/internal/dto"
	"github.com/dmoura-dev/barber-booking-api/internal/timezone"
)

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

type GetStats struct {
	repo domain.Repository
}

func NewGetStats(repo domain.Repository) *GetStats {
	return &GetStats{repo: repo}
}

func (uc *GetStats) Execute(
	ctx context.Context,
	barbershopID uuid.UUID,
	period string,
) (*dto.StatsDTO, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	start, end := periodRange(now, period)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, barbershopID, start, end)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsDTO{
		Scheduled: len(bookings),
		Services:  []dto.ServiceStatDTO{},
	}

	type acc struct {
		count int
		total int
	}
	byService := make(map[string]*acc)

	for _, b := range bookings {
		if b.Cancelled {
			stats.Cancelled++
		}
		if !b.Finished {
			continue
		}

		stats.Completed++

		a, ok := byService[b.Service.Name]
		if !ok {
			a = &acc{}
			byService[b.Service.Name] = a
		}
		a.count++
		a.total += b.Service.PriceInCents
	}

	for name, a := range byService {
		stats.Services = append(stats.Services, dto.ServiceStatDTO{
			Name:       name,
			Count:      a.count,
			TotalCents: a.total,
		})
	}

	// mais realizados primeiro
	sort.Slice(stats.Services, func(i, j int) bool {
		return stats.Services[i].Count > stats.Services[j].Count
	})

	return stats, nil
}

func periodRange(now time.Time, period string) (time.Time, time.Time) {
	dayStart := timezone.StartOfDay(now)

	switch period {
	case PeriodWeek:
		// semana começando na segunda-feira
		offset := (int(now.Weekday()) + 6) % 7
		start := dayStart.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7).Add(-time.Second)
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0).Add(-time.Second)
	default:
		return dayStart, dayStart.Add(24*time.Hour - time.Second)
	}
}
