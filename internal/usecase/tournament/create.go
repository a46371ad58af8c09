package tournament

import (
	"context"
	"strings"

	"github.com/gonzalomaurino/canchas-api/internal/audit"
	domain "github.com/gonzalomaurino/canchas-api/internal/domain/tournament"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/models"
	ucbooking "github.com/gonzalomaurino/canchas-api/internal/usecase/booking"
)

// ======================================================
// INPUT
// ======================================================

type CreateTournamentInput struct {
	Name      string
	StartDate string
	EndDate   string
	Category  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateTournament struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateTournament(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateTournament {
	return &CreateTournament{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateTournament) Execute(
	ctx context.Context,
	in CreateTournamentInput,
) (*models.Tournament, error) {

	if strings.TrimSpace(in.Name) == "" {
		return nil, httperr.Validation(
			"missing_name",
			"El torneo debe tener nombre.",
		)
	}

	start, err := ucbooking.ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ucbooking.ParseDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, httperr.Validation(
			"invalid_date_range",
			"La fecha de fin no puede ser anterior a la de inicio.",
		)
	}

	t := &models.Tournament{
		Name:      strings.TrimSpace(in.Name),
		StartDate: start,
		EndDate:   end,
		Category:  in.Category,
	}

	if err := uc.repo.CreateTournament(ctx, t); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "tournament_created",
		Entity:   "tournament",
		EntityID: &t.ID,
	})

	return t, nil
}
