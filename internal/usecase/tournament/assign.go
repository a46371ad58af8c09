package tournament

import (
	"context"
	"fmt"

	"github.com/gonzalomaurino/canchas-api/internal/audit"
	domain "github.com/gonzalomaurino/canchas-api/internal/domain/tournament"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/models"
)

type AssignBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAssignBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AssignBooking {
	return &AssignBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute adds a booking to a tournament's association set. A booking
// belongs to at most one tournament, ever; the pre-check gives a precise
// message and the whole-table unique index on booking_id settles races.
func (uc *AssignBooking) Execute(
	ctx context.Context,
	tournamentID uint,
	bookingID uint,
) error {

	if _, err := uc.repo.GetTournament(ctx, tournamentID); err != nil {
		return httperr.NotFoundOrStore(err,
			"tournament_not_found", "Torneo no encontrado.", "tournament_read_failed")
	}

	if _, err := uc.repo.GetBooking(ctx, bookingID); err != nil {
		return httperr.NotFoundOrStore(err,
			"booking_not_found", "Reserva no encontrada.", "booking_read_failed")
	}

	existing, err := uc.repo.FindAssignment(ctx, bookingID)
	if err != nil {
		return httperr.Store("assignment_lookup_failed", err)
	}
	if existing != nil {
		if existing.TournamentID == tournamentID {
			return httperr.Conflict(
				"already_assigned_here",
				"La reserva ya está asignada a este torneo.",
			)
		}
		return httperr.Conflict(
			"already_assigned_elsewhere",
			fmt.Sprintf(
				"La reserva #%d ya está asignada al torneo #%d. Una reserva solo puede pertenecer a un torneo.",
				bookingID, existing.TournamentID,
			),
		)
	}

	if err := uc.repo.CreateAssignment(ctx, &models.TournamentBooking{
		TournamentID: tournamentID,
		BookingID:    bookingID,
	}); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_assigned",
		Entity:   "tournament",
		EntityID: &tournamentID,
		Metadata: map[string]any{"booking_id": bookingID},
	})

	return nil
}
