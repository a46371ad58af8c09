package booking

import (
	"context"
	"log"
	"time"

	"github.com/gonzalomaurino/canchas-api/internal/audit"
	domain "github.com/gonzalomaurino/canchas-api/internal/domain/booking"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/models"
	"github.com/gonzalomaurino/canchas-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Date       string
	ClientID   uint
	CourtID    uint
	TimeSlotID uint

	// Amount defaults to the court's hourly price when zero.
	Amount float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.ClientID == 0 || in.CourtID == 0 || in.TimeSlotID == 0 {
		return nil, httperr.Validation(
			"missing_fields",
			"Cliente, cancha y horario son obligatorios.",
		)
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	if date.Before(timezone.Today(uc.tz)) {
		return nil, httperr.Validation(
			"past_date",
			"No se pueden hacer reservas para fechas anteriores a hoy.",
		)
	}

	if _, err := uc.repo.GetClient(ctx, in.ClientID); err != nil {
		return nil, httperr.NotFoundOrStore(err,
			"client_not_found", "Cliente no encontrado.", "client_read_failed")
	}

	court, err := uc.repo.GetCourt(ctx, in.CourtID)
	if err != nil {
		return nil, httperr.NotFoundOrStore(err,
			"court_not_found", "Cancha no encontrada.", "court_read_failed")
	}

	if _, err := uc.repo.GetTimeSlot(ctx, in.TimeSlotID); err != nil {
		return nil, httperr.NotFoundOrStore(err,
			"time_slot_not_found", "Horario no encontrado.", "time_slot_read_failed")
	}

	amount := in.Amount
	if amount == 0 {
		amount = court.HourlyPrice
	}
	if amount <= 0 {
		return nil, httperr.Validation(
			"invalid_amount",
			"El monto debe ser mayor a cero.",
		)
	}

	// Advisory pre-check only: a read failure or a stale answer never
	// blocks the attempt. The unique index decides on insert.
	if taken, err := uc.repo.CountBookingsAt(
		ctx,
		date,
		in.CourtID,
		in.TimeSlotID,
	); err != nil {
		log.Printf("availability pre-check failed, proceeding to insert: %v", err)
	} else if taken > 0 {
		return nil, httperr.Conflict(
			"slot_taken",
			"Ya existe una reserva para esa cancha, fecha y horario.",
		)
	}

	b := &models.Booking{
		Date:       date,
		ClientID:   in.ClientID,
		CourtID:    in.CourtID,
		TimeSlotID: in.TimeSlotID,
		Amount:     amount,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// ParseDate accepts the wire format AAAA-MM-DD and pins the value to UTC
// midnight so date-only comparisons stay exact.
func ParseDate(s string) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, httperr.Validation(
			"invalid_date",
			"Formato de fecha inválido. Use AAAA-MM-DD.",
		)
	}
	return date, nil
}
