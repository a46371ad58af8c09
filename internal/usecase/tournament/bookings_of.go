package tournament

import (
	"context"

	domain "github.com/gonzalomaurino/canchas-api/internal/domain/tournament"
	"github.com/gonzalomaurino/canchas-api/internal/dto"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
)

type BookingsOfTournament struct {
	repo domain.Repository
}

func NewBookingsOfTournament(repo domain.Repository) *BookingsOfTournament {
	return &BookingsOfTournament{repo: repo}
}

// Execute returns the tournament's bookings with their full projections,
// ordered by date.
func (uc *BookingsOfTournament) Execute(
	ctx context.Context,
	tournamentID uint,
) ([]dto.BookingListDTO, error) {

	if _, err := uc.repo.GetTournament(ctx, tournamentID); err != nil {
		return nil, httperr.NotFoundOrStore(err,
			"tournament_not_found", "Torneo no encontrado.", "tournament_read_failed")
	}

	bookings, err := uc.repo.ListBookings(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:         b.ID,
			Date:       b.Date.Format("2006-01-02"),
			Status:     b.Status,
			Amount:     b.Amount,
			ClientName: b.Client.FirstName + " " + b.Client.LastName,
			CourtName:  b.Court.Name,
			SlotStart:  b.TimeSlot.StartTime,
			SlotEnd:    b.TimeSlot.EndTime,
		})
	}

	return out, nil
}
