package tournament

import (
	"context"
	"fmt"

	"github.com/gonzalomaurino/canchas-api/internal/audit"
	domain "github.com/gonzalomaurino/canchas-api/internal/domain/tournament"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
)

type DeleteTournament struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteTournament(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteTournament {
	return &DeleteTournament{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes a tournament. A tournament with assigned bookings is
// protected; all bookings must be unassigned first.
func (uc *DeleteTournament) Execute(ctx context.Context, id uint) error {

	if _, err := uc.repo.GetTournament(ctx, id); err != nil {
		return httperr.NotFoundOrStore(err,
			"tournament_not_found", "Torneo no encontrado.", "tournament_read_failed")
	}

	assigned, err := uc.repo.CountAssignments(ctx, id)
	if err != nil {
		return httperr.Store("assignment_count_failed", err)
	}

	if assigned > 0 {
		return httperr.Integrity(
			"tournament_has_bookings",
			fmt.Sprintf(
				"No se puede eliminar el torneo: tiene %d reserva(s) asignada(s).",
				assigned,
			),
		)
	}

	if err := uc.repo.DeleteTournamentCascade(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "tournament_deleted",
		Entity:   "tournament",
		EntityID: &id,
	})

	return nil
}
