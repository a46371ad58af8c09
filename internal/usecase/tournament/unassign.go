package tournament

import (
	"context"

	"github.com/gonzalomaurino/canchas-api/internal/audit"
	domain "github.com/gonzalomaurino/canchas-api/internal/domain/tournament"
)

type UnassignBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUnassignBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UnassignBooking {
	return &UnassignBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the association row. Removing an absent association is
// a no-op, not an error.
func (uc *UnassignBooking) Execute(
	ctx context.Context,
	tournamentID uint,
	bookingID uint,
) error {

	if err := uc.repo.DeleteAssignment(ctx, tournamentID, bookingID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_unassigned",
		Entity:   "tournament",
		EntityID: &tournamentID,
		Metadata: map[string]any{"booking_id": bookingID},
	})

	return nil
}
