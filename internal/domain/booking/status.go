package booking

import (
	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
	"github.com/dmoura-dev/barber-booking-api/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusFinished  Status = "finished"
	StatusCancelled Status = "cancelled"
)

// StatusOf deriva o estado a partir das flags persistidas
func StatusOf(b *models.Booking) Status {
	if b.Cancelled {
		return StatusCancelled
	}
	if b.Finished {
		return StatusFinished
	}
	return StatusConfirmed
}

// ===============================
// Validations
// ===============================

// CanFinish barra apenas a repetição da própria ação (finish sobre finished).
// Transições cruzadas sobre estado terminal não são bloqueadas aqui.
func CanFinish(b *models.Booking) error {
	if b.Finished {
		return httperr.ErrBusiness("already_finished")
	}
	return nil
}

// CanCancel barra apenas cancel sobre cancelled
func CanCancel(b *models.Booking) error {
	if b.Cancelled {
		return httperr.ErrBusiness("already_cancelled")
	}
	return nil
}
