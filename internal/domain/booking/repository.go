package booking

import (
	"context"
	"time"

	"github.com/gonzalomaurino/canchas-api/internal/models"
)

// ListFilter narrows ListBookings. Nil fields match everything.
type ListFilter struct {
	Status  *Status
	CourtID *uint
}

type Repository interface {
	// -------- Referenced entities --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetCourt(
		ctx context.Context,
		id uint,
	) (*models.Court, error)

	GetTimeSlot(
		ctx context.Context,
		id uint,
	) (*models.TimeSlot, error)

	// -------- Booking (create / conflict) --------

	// CountBookingsAt backs the advisory availability pre-check. It counts
	// every row holding the slot, cancelled included, mirroring the
	// unique index that settles the race on insert.
	CountBookingsAt(
		ctx context.Context,
		date time.Time,
		courtID uint,
		slotID uint,
	) (int64, error)

	// CreateBooking must translate a (date, court, slot) unique violation
	// into a conflict BusinessError; the index is the authoritative guard.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change / deletion) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	CountPayments(
		ctx context.Context,
		bookingID uint,
	) (int64, error)

	// SumPayments backs the amount-change reconciliation: the total can
	// never drop below what has already been collected.
	SumPayments(
		ctx context.Context,
		bookingID uint,
	) (float64, error)

	// DeleteBookingCascade removes the tournament association, the
	// payments and the booking itself in one transaction, in that order.
	DeleteBookingCascade(
		ctx context.Context,
		bookingID uint,
	) error

	// -------- Listing --------
	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)
}
