package tournament

import (
	"context"

	"github.com/gonzalomaurino/canchas-api/internal/models"
)

type Repository interface {
	CreateTournament(
		ctx context.Context,
		t *models.Tournament,
	) error

	GetTournament(
		ctx context.Context,
		id uint,
	) (*models.Tournament, error)

	ListTournaments(
		ctx context.Context,
	) ([]models.Tournament, error)

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// -------- Association set --------

	// FindAssignment returns the association row owning the booking, or
	// nil when the booking is free.
	FindAssignment(
		ctx context.Context,
		bookingID uint,
	) (*models.TournamentBooking, error)

	// CreateAssignment must translate a booking-uniqueness violation into
	// a conflict BusinessError; the whole-table unique index on booking_id
	// is the authoritative guard.
	CreateAssignment(
		ctx context.Context,
		a *models.TournamentBooking,
	) error

	// DeleteAssignment is an idempotent no-op when the row is absent.
	DeleteAssignment(
		ctx context.Context,
		tournamentID uint,
		bookingID uint,
	) error

	CountAssignments(
		ctx context.Context,
		tournamentID uint,
	) (int64, error)

	// ListBookings joins the association set with full booking
	// projections, ordered by date.
	ListBookings(
		ctx context.Context,
		tournamentID uint,
	) ([]models.Booking, error)

	// DeleteTournamentCascade removes the (empty, but cleaned defensively)
	// association rows and the tournament in one transaction.
	DeleteTournamentCascade(
		ctx context.Context,
		tournamentID uint,
	) error
}
