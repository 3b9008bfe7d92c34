package booking

import (
	"time"

	"github.com/dmoura-dev/barber-booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Finish marca o agendamento como finalizado. A flag de cancelamento e seu
// timestamp ficam intocados.
func Finish(b *models.Booking, now time.Time) error {
	if err := CanFinish(b); err != nil {
		return err
	}

	b.Finished = true
	b.FinishedAt = &now
	return nil
}

// Cancel marca o agendamento como cancelado. A flag de finalização e seu
// timestamp ficam intocados.
func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(b); err != nil {
		return err
	}

	b.Cancelled = true
	b.CancelledAt = &now
	return nil
}
