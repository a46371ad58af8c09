package payment

import (
	"context"

	domain "github.com/gonzalomaurino/canchas-api/internal/domain/payment"
	"github.com/gonzalomaurino/canchas-api/internal/dto"
)

type ListPayments struct {
	repo domain.Repository
}

func NewListPayments(repo domain.Repository) *ListPayments {
	return &ListPayments{repo: repo}
}

// Execute lists payments newest first, optionally filtered by court
// and/or method.
func (uc *ListPayments) Execute(
	ctx context.Context,
	courtID *uint,
	method *string,
) ([]dto.PaymentListDTO, error) {

	payments, err := uc.repo.ListPayments(ctx, domain.ListFilter{
		CourtID: courtID,
		Method:  method,
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.PaymentListDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.PaymentListDTO{
			ID:         p.ID,
			BookingID:  p.BookingID,
			PaidAt:     p.PaidAt,
			Amount:     p.Amount,
			Method:     p.Method,
			Reference:  p.Reference,
			ClientName: p.Booking.Client.FirstName + " " + p.Booking.Client.LastName,
			CourtName:  p.Booking.Court.Name,
		})
	}

	return out, nil
}
