package booking

import (
	"context"
	"fmt"

	"github.com/gonzalomaurino/canchas-api/internal/audit"
	domain "github.com/gonzalomaurino/canchas-api/internal/domain/booking"
	paydomain "github.com/gonzalomaurino/canchas-api/internal/domain/payment"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/models"
	"github.com/gonzalomaurino/canchas-api/internal/timezone"
)

type UpdateBookingInput struct {
	Date       *string
	CourtID    *uint
	TimeSlotID *uint
	Amount     *float64
}

type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// Execute re-points a booking's date, court, slot or amount. The same
// validation and conflict rules as creation apply; the unique index stays
// the final arbiter on the new triple.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	id uint,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, id)
	if err != nil {
		return nil, httperr.NotFoundOrStore(err,
			"booking_not_found", "Reserva no encontrada.", "booking_read_failed")
	}

	if in.Date != nil {
		date, err := ParseDate(*in.Date)
		if err != nil {
			return nil, err
		}
		if date.Before(timezone.Today(uc.tz)) {
			return nil, httperr.Validation(
				"past_date",
				"No se pueden hacer reservas para fechas anteriores a hoy.",
			)
		}
		b.Date = date
	}

	if in.CourtID != nil {
		if _, err := uc.repo.GetCourt(ctx, *in.CourtID); err != nil {
			return nil, httperr.NotFoundOrStore(err,
				"court_not_found", "Cancha no encontrada.", "court_read_failed")
		}
		b.CourtID = *in.CourtID
	}

	if in.TimeSlotID != nil {
		if _, err := uc.repo.GetTimeSlot(ctx, *in.TimeSlotID); err != nil {
			return nil, httperr.NotFoundOrStore(err,
				"time_slot_not_found", "Horario no encontrado.", "time_slot_read_failed")
		}
		b.TimeSlotID = *in.TimeSlotID
	}

	if in.Amount != nil {
		if *in.Amount <= 0 {
			return nil, httperr.Validation(
				"invalid_amount",
				"El monto debe ser mayor a cero.",
			)
		}

		// The collected sum bounds the total from below; shrinking the
		// total under it would corrupt the payment ledger.
		paid, err := uc.repo.SumPayments(ctx, b.ID)
		if err != nil {
			return nil, httperr.Store("payment_sum_failed", err)
		}
		if *in.Amount < paid {
			return nil, httperr.Conflict(
				"amount_below_paid",
				fmt.Sprintf(
					"El monto no puede ser menor a lo ya pagado ($%.2f).",
					paid,
				),
			)
		}
		b.Amount = *in.Amount

		// A new total changes what "fully paid" means, so the state is
		// re-derived from the ledger. Cancellation stays put.
		current, err := domain.ParseStatus(b.Status)
		if err != nil {
			return nil, err
		}
		if current != domain.StatusCancelled {
			b.Status = string(paydomain.DeriveStatus(b.Amount, paid))
		}
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
