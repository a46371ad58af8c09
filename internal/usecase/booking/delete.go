package booking

import (
	"context"

	"github.com/gonzalomaurino/canchas-api/internal/audit"
	domain "github.com/gonzalomaurino/canchas-api/internal/domain/booking"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(ctx context.Context, id uint) error {

	b, err := uc.repo.GetBooking(ctx, id)
	if err != nil {
		return httperr.NotFoundOrStore(err,
			"booking_not_found", "Reserva no encontrada.", "booking_read_failed")
	}

	status, err := domain.ParseStatus(b.Status)
	if err != nil {
		return err
	}

	payments, err := uc.repo.CountPayments(ctx, id)
	if err != nil {
		return httperr.Store("payment_count_failed", err)
	}

	// Financial-integrity guard: a confirmed or deposit booking with
	// payments keeps its money trail. Payments must be deleted first
	// (which resets the state) before the booking becomes deletable.
	if payments > 0 && status.Protected() {
		return httperr.Integrity(
			"booking_has_payments",
			"No se puede eliminar una reserva confirmada o con seña que tiene pagos registrados.",
		)
	}

	if err := uc.repo.DeleteBookingCascade(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &id,
	})

	return nil
}
