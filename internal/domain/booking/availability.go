package booking

import (
	"time"

	"github.com/google/uuid"
)

type AvailabilityInput struct {
	BarbershopID uuid.UUID
	Date         time.Time
}
