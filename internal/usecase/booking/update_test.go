package booking

import (
	"context"
	"testing"

	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/models"
	"github.com/gonzalomaurino/canchas-api/internal/testutil"
)

func amountPtr(v float64) *float64 { return &v }

// The total can never be updated below the collected sum; allowing it
// would leave paid > total and a details projection that no longer adds
// up.
func TestUpdateBookingAmountBelowPaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := testutil.SeedBooking(t, f.db, f.client, f.court, f.slot, "seña", 45000)
	if err := f.db.Create(&models.Payment{
		BookingID: b.ID, Amount: 20000, Method: "efectivo",
	}).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	_, err := f.update.Execute(ctx, b.ID, UpdateBookingInput{
		Amount: amountPtr(10000),
	})
	if !httperr.IsBusiness(err, "amount_below_paid") {
		t.Fatalf("shrink below paid = %v, want amount_below_paid conflict", err)
	}

	var reloaded models.Booking
	if err := f.db.First(&reloaded, b.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if reloaded.Amount != 45000 || reloaded.Status != "seña" {
		t.Fatalf("booking mutated by rejected update: amount=%v status=%q",
			reloaded.Amount, reloaded.Status)
	}
}

// Changing the total changes what "fully paid" means, so the state is
// re-derived from the ledger.
func TestUpdateBookingAmountReconcilesStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := testutil.SeedBooking(t, f.db, f.client, f.court, f.slot, "seña", 45000)
	if err := f.db.Create(&models.Payment{
		BookingID: b.ID, Amount: 20000, Method: "efectivo",
	}).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	// Lowering the total to exactly the paid sum confirms the booking.
	updated, err := f.update.Execute(ctx, b.ID, UpdateBookingInput{
		Amount: amountPtr(20000),
	})
	if err != nil {
		t.Fatalf("update to paid sum: %v", err)
	}
	if updated.Status != "confirmada" {
		t.Fatalf("status = %q, want confirmada", updated.Status)
	}

	// Raising it again reopens the balance.
	updated, err = f.update.Execute(ctx, b.ID, UpdateBookingInput{
		Amount: amountPtr(60000),
	})
	if err != nil {
		t.Fatalf("update above paid sum: %v", err)
	}
	if updated.Status != "seña" {
		t.Fatalf("status = %q, want seña", updated.Status)
	}
}

func TestUpdateBookingAmountUnpaidStaysPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := testutil.SeedBooking(t, f.db, f.client, f.court, f.slot, "pendiente", 45000)

	updated, err := f.update.Execute(ctx, b.ID, UpdateBookingInput{
		Amount: amountPtr(50000),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != "pendiente" {
		t.Fatalf("status = %q, want pendiente", updated.Status)
	}
}

func TestUpdateBookingValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := testutil.SeedBooking(t, f.db, f.client, f.court, f.slot, "pendiente", 45000)

	if _, err := f.update.Execute(ctx, b.ID, UpdateBookingInput{
		Amount: amountPtr(-1),
	}); !httperr.IsBusiness(err, "invalid_amount") {
		t.Fatalf("negative amount = %v, want invalid_amount", err)
	}

	if _, err := f.update.Execute(ctx, 9999, UpdateBookingInput{
		Amount: amountPtr(100),
	}); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("unknown booking = %v, want booking_not_found", err)
	}
}
