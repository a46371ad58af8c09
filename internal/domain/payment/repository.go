package payment

import (
	"context"

	"github.com/gonzalomaurino/canchas-api/internal/domain/booking"
	"github.com/gonzalomaurino/canchas-api/internal/models"
)

// ListFilter narrows ListPayments. Nil fields match everything.
type ListFilter struct {
	CourtID *uint
	Method  *string
}

type Repository interface {
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetPayment(
		ctx context.Context,
		id uint,
	) (*models.Payment, error)

	SumPayments(
		ctx context.Context,
		bookingID uint,
	) (float64, error)

	// CreatePaymentAndUpdateStatus persists the payment row and the
	// recomputed booking state in a single transaction.
	CreatePaymentAndUpdateStatus(
		ctx context.Context,
		p *models.Payment,
		status booking.Status,
	) error

	// DeletePaymentRecomputingStatus removes the payment row and, in the
	// same transaction, reconstructs the booking state from the payments
	// that remain, never from the deleted row's attributes.
	DeletePaymentRecomputingStatus(
		ctx context.Context,
		paymentID uint,
		bookingID uint,
		total float64,
	) error

	ListPayments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Payment, error)
}
