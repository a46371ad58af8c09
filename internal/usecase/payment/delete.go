package payment

import (
	"context"

	"github.com/gonzalomaurino/canchas-api/internal/audit"
	domain "github.com/gonzalomaurino/canchas-api/internal/domain/payment"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
)

type DeletePayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeletePayment {
	return &DeletePayment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes a payment and reverts its booking's state to whatever
// the remaining payments imply: confirmada when the balance is zero,
// pendiente when no payments remain, seña otherwise.
func (uc *DeletePayment) Execute(ctx context.Context, id uint) error {

	p, err := uc.repo.GetPayment(ctx, id)
	if err != nil {
		return httperr.NotFoundOrStore(err,
			"payment_not_found", "Pago no encontrado.", "payment_read_failed")
	}

	b, err := uc.repo.GetBooking(ctx, p.BookingID)
	if err != nil {
		return httperr.NotFoundOrStore(err,
			"booking_not_found", "Reserva asociada no encontrada.",
			"booking_read_failed")
	}

	if err := uc.repo.DeletePaymentRecomputingStatus(
		ctx,
		p.ID,
		b.ID,
		b.Amount,
	); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_deleted",
		Entity:   "payment",
		EntityID: &id,
		Metadata: map[string]any{"booking_id": b.ID},
	})

	return nil
}
