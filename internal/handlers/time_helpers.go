package handlers

import (
	"time"

	"github.com/dmoura-dev/barber-booking-api/internal/models"
	"github.com/dmoura-dev/barber-booking-api/internal/timezone"
)

func locationFromShop(shop *models.Barbershop) *time.Location {
	return timezone.Location(shop.Timezone)
}

func nowInShop(shop *models.Barbershop) time.Time {
	return timezone.NowIn(shop.Timezone)
}

func parseDateInShop(shop *models.Barbershop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromShop(shop),
	)
}
