package booking

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/gonzalomaurino/canchas-api/internal/audit"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	infraRepo "github.com/gonzalomaurino/canchas-api/internal/infra/repository"
	"github.com/gonzalomaurino/canchas-api/internal/models"
	"github.com/gonzalomaurino/canchas-api/internal/testutil"
	"github.com/gonzalomaurino/canchas-api/internal/timezone"
)

type fixture struct {
	db     *gorm.DB
	create *CreateBooking
	update *UpdateBooking
	delete *DeleteBooking
	cancel *CancelBooking

	client models.Client
	court  models.Court
	slot   models.TimeSlot
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.OpenDB(t)
	client, court, slot := testutil.SeedBookingRefs(t, db)

	repo := infraRepo.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	return &fixture{
		db:     db,
		create: NewCreateBooking(repo, dispatcher, timezone.DefaultTimezone),
		update: NewUpdateBooking(repo, dispatcher, timezone.DefaultTimezone),
		delete: NewDeleteBooking(repo, dispatcher),
		cancel: NewCancelBooking(repo, dispatcher),
		client: client,
		court:  court,
		slot:   slot,
	}
}

func (f *fixture) input() CreateBookingInput {
	return CreateBookingInput{
		Date:       testutil.FutureDate().Format("2006-01-02"),
		ClientID:   f.client.ID,
		CourtID:    f.court.ID,
		TimeSlotID: f.slot.ID,
	}
}

func TestCreateBookingDefaultsToCourtPrice(t *testing.T) {
	f := newFixture(t)

	b, err := f.create.Execute(context.Background(), f.input())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if b.Status != "pendiente" {
		t.Errorf("status = %q, want pendiente", b.Status)
	}
	if b.Amount != f.court.HourlyPrice {
		t.Errorf("amount = %v, want court price %v", b.Amount, f.court.HourlyPrice)
	}
}

func TestCreateBookingExplicitAmount(t *testing.T) {
	f := newFixture(t)

	in := f.input()
	in.Amount = 52000

	b, err := f.create.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Amount != 52000 {
		t.Errorf("amount = %v, want 52000", b.Amount)
	}
}

func TestCreateBookingSlotTaken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.create.Execute(ctx, f.input()); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// Same court, date and slot, different client.
	other := models.Client{
		FirstName: "Ana",
		LastName:  "Gómez",
		Phone:     "3517654321",
		Email:     "ana.gomez@example.com",
	}
	if err := f.db.Create(&other).Error; err != nil {
		t.Fatalf("seed second client: %v", err)
	}

	in := f.input()
	in.ClientID = other.ID

	_, err := f.create.Execute(ctx, in)
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("double booking = %v, want slot_taken conflict", err)
	}
}

func TestCreateBookingPastDate(t *testing.T) {
	f := newFixture(t)

	in := f.input()
	in.Date = "2020-01-15"

	_, err := f.create.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "past_date") {
		t.Fatalf("past date = %v, want past_date validation", err)
	}
}

func TestCreateBookingInvalidDate(t *testing.T) {
	f := newFixture(t)

	in := f.input()
	in.Date = "15/01/2030"

	_, err := f.create.Execute(context.Background(), in)
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("bad date format = %v, want validation error", err)
	}
}

func TestCreateBookingUnknownRefs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := f.input()
	in.ClientID = 9999
	if _, err := f.create.Execute(ctx, in); !httperr.IsBusiness(err, "client_not_found") {
		t.Fatalf("unknown client = %v, want client_not_found", err)
	}

	in = f.input()
	in.CourtID = 9999
	if _, err := f.create.Execute(ctx, in); !httperr.IsBusiness(err, "court_not_found") {
		t.Fatalf("unknown court = %v, want court_not_found", err)
	}
}

func TestDeleteBookingGuard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := testutil.SeedBooking(t, f.db, f.client, f.court, f.slot, "seña", 45000)
	payment := models.Payment{BookingID: b.ID, Amount: 20000, Method: "efectivo"}
	if err := f.db.Create(&payment).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	err := f.delete.Execute(ctx, b.ID)
	if !httperr.IsBusiness(err, "booking_has_payments") {
		t.Fatalf("guarded delete = %v, want booking_has_payments", err)
	}

	// Once the payment is gone the booking state resets and deletion
	// goes through, payments cascade included.
	if err := f.db.Delete(&payment).Error; err != nil {
		t.Fatalf("remove payment: %v", err)
	}
	f.db.Model(&models.Booking{}).Where("id = ?", b.ID).Update("status", "pendiente")

	if err := f.delete.Execute(ctx, b.ID); err != nil {
		t.Fatalf("delete after payment removal: %v", err)
	}

	var count int64
	f.db.Model(&models.Booking{}).Where("id = ?", b.ID).Count(&count)
	if count != 0 {
		t.Fatal("booking must be gone")
	}
}

func TestDeleteCancelledBookingWithPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := testutil.SeedBooking(t, f.db, f.client, f.court, f.slot, "cancelada", 45000)
	if err := f.db.Create(&models.Payment{
		BookingID: b.ID, Amount: 20000, Method: "efectivo",
	}).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	if err := f.delete.Execute(ctx, b.ID); err != nil {
		t.Fatalf("delete cancelled booking: %v", err)
	}

	var orphans int64
	f.db.Model(&models.Payment{}).Where("booking_id = ?", b.ID).Count(&orphans)
	if orphans != 0 {
		t.Fatalf("payments left behind: %d", orphans)
	}
}

// Deleting a booking takes its tournament association down with it, in
// the same transaction as the payments.
func TestDeleteBookingRemovesTournamentAssociation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := testutil.SeedBooking(t, f.db, f.client, f.court, f.slot, "pendiente", 45000)

	tournament := models.Tournament{
		Name:      "Apertura",
		StartDate: testutil.FutureDate(),
		EndDate:   testutil.FutureDate().AddDate(0, 0, 14),
		Category:  "libre",
	}
	if err := f.db.Create(&tournament).Error; err != nil {
		t.Fatalf("seed tournament: %v", err)
	}
	if err := f.db.Create(&models.TournamentBooking{
		TournamentID: tournament.ID,
		BookingID:    b.ID,
	}).Error; err != nil {
		t.Fatalf("seed assignment: %v", err)
	}

	if err := f.delete.Execute(ctx, b.ID); err != nil {
		t.Fatalf("delete booking: %v", err)
	}

	var assignments int64
	f.db.Model(&models.TournamentBooking{}).
		Where("booking_id = ?", b.ID).
		Count(&assignments)
	if assignments != 0 {
		t.Fatalf("association rows left behind: %d", assignments)
	}

	// The tournament itself is untouched.
	var tournaments int64
	f.db.Model(&models.Tournament{}).Where("id = ?", tournament.ID).Count(&tournaments)
	if tournaments != 1 {
		t.Fatal("tournament must survive the booking delete")
	}
}

func TestCancelBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.create.Execute(ctx, f.input())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancelled, err := f.cancel.Execute(ctx, b.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != "cancelada" {
		t.Fatalf("status = %q, want cancelada", cancelled.Status)
	}

	if _, err := f.cancel.Execute(ctx, b.ID); !httperr.IsBusiness(err, "already_cancelled") {
		t.Fatalf("second cancel = %v, want already_cancelled", err)
	}
}
