package booking

import (
	"context"
	"testing"

	infraRepo "github.com/gonzalomaurino/canchas-api/internal/infra/repository"
	"github.com/gonzalomaurino/canchas-api/internal/testutil"
)

func TestCheckAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := testutil.FutureDate()

	uc := NewCheckAvailability(infraRepo.NewBookingGormRepository(f.db))

	if !uc.Execute(ctx, f.court.ID, date, f.slot.ID) {
		t.Fatal("empty slot must be available")
	}

	testutil.SeedBooking(t, f.db, f.client, f.court, f.slot, "pendiente", 45000)

	if uc.Execute(ctx, f.court.ID, date, f.slot.ID) {
		t.Fatal("occupied slot must not be available")
	}
}

// A cancelled booking still holds its row in the slot's unique index, so
// the slot stays occupied until the booking is deleted.
func TestCheckAvailabilityCancelledStillHolds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := testutil.FutureDate()

	uc := NewCheckAvailability(infraRepo.NewBookingGormRepository(f.db))

	testutil.SeedBooking(t, f.db, f.client, f.court, f.slot, "cancelada", 45000)

	if uc.Execute(ctx, f.court.ID, date, f.slot.ID) {
		t.Fatal("cancelled booking still occupies the slot")
	}
}

// The check is advisory: when the store cannot answer, the caller gets
// "available" and the unique index decides at insert time.
func TestCheckAvailabilityFailsOpen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	uc := NewCheckAvailability(infraRepo.NewBookingGormRepository(f.db))

	sqlDB, err := f.db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	if !uc.Execute(ctx, f.court.ID, testutil.FutureDate(), f.slot.ID) {
		t.Fatal("a failing lookup must report available")
	}
}
