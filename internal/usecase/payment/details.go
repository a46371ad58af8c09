package payment

import (
	"context"

	domain "github.com/gonzalomaurino/canchas-api/internal/domain/payment"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
)

type PaymentDetails struct {
	repo domain.Repository
}

func NewPaymentDetails(repo domain.Repository) *PaymentDetails {
	return &PaymentDetails{repo: repo}
}

// Execute returns the {total, paid, outstanding} projection for a booking.
func (uc *PaymentDetails) Execute(
	ctx context.Context,
	bookingID uint,
) (*domain.Details, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.NotFoundOrStore(err,
			"booking_not_found", "Reserva no encontrada.", "booking_read_failed")
	}

	paid, err := uc.repo.SumPayments(ctx, bookingID)
	if err != nil {
		return nil, httperr.Store("payment_sum_failed", err)
	}

	return &domain.Details{
		Total:       b.Amount,
		Paid:        paid,
		Outstanding: domain.Outstanding(b.Amount, paid),
	}, nil
}

// OutstandingBalance is the scalar form of Execute, used by the payment
// registration flow and the payment-link generator.
func (uc *PaymentDetails) OutstandingBalance(
	ctx context.Context,
	bookingID uint,
) (float64, error) {

	details, err := uc.Execute(ctx, bookingID)
	if err != nil {
		return 0, err
	}
	return details.Outstanding, nil
}
