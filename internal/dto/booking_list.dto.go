package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookingListDTO struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ServiceName string    `json:"service_name"`
	PriceCents  int       `json:"price_in_cents"`
}

type ServiceStatDTO struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	TotalCents int    `json:"total"`
}

type StatsDTO struct {
	Scheduled int              `json:"scheduled"`
	Completed int              `json:"completed"`
	Cancelled int              `json:"cancelled"`
	Services  []ServiceStatDTO `json:"services"`
}
