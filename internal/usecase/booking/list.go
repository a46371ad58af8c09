package booking

import (
	"context"

	domain "github.com/gonzalomaurino/canchas-api/internal/domain/booking"
	"github.com/gonzalomaurino/canchas-api/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute lists bookings, optionally filtered by state and/or court.
// The status string is parsed case-insensitively.
func (uc *ListBookings) Execute(
	ctx context.Context,
	status string,
	courtID *uint,
) ([]dto.BookingListDTO, error) {

	filter := domain.ListFilter{CourtID: courtID}

	if status != "" {
		parsed, err := domain.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = &parsed
	}

	bookings, err := uc.repo.ListBookings(ctx, filter)
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
