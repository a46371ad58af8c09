package booking

import (
	"strings"

	"github.com/gonzalomaurino/canchas-api/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

// Status is the closed booking-state enumeration. The stored form is the
// canonical lower-case string; ParseStatus is the single place where the
// free-text column value is normalized.
type Status string

const (
	StatusPending   Status = "pendiente"
	StatusDeposit   Status = "seña"
	StatusConfirmed Status = "confirmada"
	StatusCancelled Status = "cancelada"
)

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StatusPending):
		return StatusPending, nil
	case string(StatusDeposit):
		return StatusDeposit, nil
	case string(StatusConfirmed):
		return StatusConfirmed, nil
	case string(StatusCancelled):
		return StatusCancelled, nil
	}
	return "", httperr.Validation("invalid_status", "Estado de reserva desconocido: "+s)
}

func InitialStatus() Status {
	return StatusPending
}

// Protected reports whether a booking in this state may not be deleted
// while payments exist.
func (s Status) Protected() bool {
	return s == StatusConfirmed || s == StatusDeposit
}
