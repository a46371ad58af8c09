package booking

import (
	"context"
	"log"
	"time"

	domain "github.com/gonzalomaurino/canchas-api/internal/domain/booking"
)

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute reports whether the (date, court, slot) triple is free.
//
// Fail-open policy: a store read failure counts as "available" so the UI is
// never blocked by a transient outage. The answer is advisory; the unique
// index on bookings reconciles at insert time.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	courtID uint,
	date time.Time,
	slotID uint,
) bool {

	count, err := uc.repo.CountBookingsAt(ctx, date, courtID, slotID)
	if err != nil {
		log.Printf("availability check failed, assuming available: %v", err)
		return true
	}

	return count == 0
}
