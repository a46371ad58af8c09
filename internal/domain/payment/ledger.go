package payment

import (
	"github.com/gonzalomaurino/canchas-api/internal/domain/booking"
)

// ===============================
// Reconciliation rules
// ===============================

// Outstanding is the booking amount minus the cumulative paid sum,
// floored at zero.
func Outstanding(total, paid float64) float64 {
	if out := total - paid; out > 0 {
		return out
	}
	return 0
}

// DeriveStatus reconstructs the booking state purely from the remaining
// paid sum: zero payments → pendiente, fully paid → confirmada, anything
// in between → seña. Cancellation is an explicit override elsewhere and
// never comes out of here.
func DeriveStatus(total, paid float64) booking.Status {
	switch {
	case paid <= 0:
		return booking.StatusPending
	case paid >= total:
		return booking.StatusConfirmed
	default:
		return booking.StatusDeposit
	}
}

// Details is the read-only projection handed to the presentation layer.
// Paid + Outstanding == Total always holds.
type Details struct {
	Total       float64 `json:"total"`
	Paid        float64 `json:"paid"`
	Outstanding float64 `json:"outstanding"`
}
