package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gonzalomaurino/canchas-api/internal/audit"
	domain "github.com/gonzalomaurino/canchas-api/internal/domain/payment"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterPaymentInput struct {
	BookingID uint
	Amount    float64
	Method    string
}

// ======================================================
// USE CASE
// ======================================================

type RegisterPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterPayment {
	return &RegisterPayment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterPayment) Execute(
	ctx context.Context,
	in RegisterPaymentInput,
) (*models.Payment, error) {

	if in.Amount <= 0 {
		return nil, httperr.Validation(
			"invalid_amount",
			"El monto debe ser mayor que cero.",
		)
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.NotFoundOrStore(err,
			"booking_not_found", "Reserva no encontrada.", "booking_read_failed")
	}

	paid, err := uc.repo.SumPayments(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.Store("payment_sum_failed", err)
	}

	outstanding := domain.Outstanding(b.Amount, paid)
	if in.Amount > outstanding {
		return nil, httperr.Overpayment(
			"amount_exceeds_balance",
			fmt.Sprintf("El monto excede el saldo pendiente ($%.2f).", outstanding),
		)
	}

	// A payment that exactly zeroes the balance confirms the booking,
	// regardless of method or how many partial payments came before.
	status := domain.DeriveStatus(b.Amount, paid+in.Amount)

	p := &models.Payment{
		BookingID: in.BookingID,
		PaidAt:    time.Now(),
		Amount:    in.Amount,
		Method:    in.Method,
		Reference: uuid.NewString(),
	}

	if err := uc.repo.CreatePaymentAndUpdateStatus(ctx, p, status); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_registered",
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: map[string]any{
			"booking_id": in.BookingID,
			"amount":     in.Amount,
			"method":     in.Method,
		},
	})

	return p, nil
}
