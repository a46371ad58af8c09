package booking

import (
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel is the explicit staff override. It is not driven by payments and
// does not touch them; it only closes the booking to further transitions.
func Cancel(b *models.Booking) error {
	current, err := ParseStatus(b.Status)
	if err != nil {
		return err
	}
	if current == StatusCancelled {
		return httperr.Conflict("already_cancelled", "La reserva ya está cancelada.")
	}

	b.Status = string(StatusCancelled)
	return nil
}
