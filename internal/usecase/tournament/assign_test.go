package tournament

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/gonzalomaurino/canchas-api/internal/audit"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	infraRepo "github.com/gonzalomaurino/canchas-api/internal/infra/repository"
	"github.com/gonzalomaurino/canchas-api/internal/models"
	"github.com/gonzalomaurino/canchas-api/internal/testutil"
)

type fixture struct {
	db       *gorm.DB
	create   *CreateTournament
	assign   *AssignBooking
	unassign *UnassignBooking
	bookings *BookingsOfTournament
	delete   *DeleteTournament

	booking models.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.OpenDB(t)
	client, court, slot := testutil.SeedBookingRefs(t, db)
	b := testutil.SeedBooking(t, db, client, court, slot, "pendiente", 45000)

	repo := infraRepo.NewTournamentGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	return &fixture{
		db:       db,
		create:   NewCreateTournament(repo, dispatcher),
		assign:   NewAssignBooking(repo, dispatcher),
		unassign: NewUnassignBooking(repo, dispatcher),
		bookings: NewBookingsOfTournament(repo),
		delete:   NewDeleteTournament(repo, dispatcher),
		booking:  b,
	}
}

func (f *fixture) seedTournament(t *testing.T, name string) models.Tournament {
	t.Helper()

	tournament, err := f.create.Execute(context.Background(), CreateTournamentInput{
		Name:      name,
		StartDate: "2030-03-01",
		EndDate:   "2030-03-15",
		Category:  "libre",
	})
	if err != nil {
		t.Fatalf("create tournament %q: %v", name, err)
	}
	return *tournament
}

func TestCreateTournamentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.create.Execute(ctx, CreateTournamentInput{
		Name:      "   ",
		StartDate: "2030-03-01",
		EndDate:   "2030-03-15",
	})
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("blank name = %v, want validation error", err)
	}

	_, err = f.create.Execute(ctx, CreateTournamentInput{
		Name:      "Apertura",
		StartDate: "2030-03-15",
		EndDate:   "2030-03-01",
	})
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("inverted range = %v, want validation error", err)
	}
}

func TestAssignBookingOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	apertura := f.seedTournament(t, "Apertura")
	clausura := f.seedTournament(t, "Clausura")

	if err := f.assign.Execute(ctx, apertura.ID, f.booking.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	// Same tournament again.
	err := f.assign.Execute(ctx, apertura.ID, f.booking.ID)
	if !httperr.IsBusiness(err, "already_assigned_here") {
		t.Fatalf("re-assign = %v, want already_assigned_here", err)
	}

	// A booking belongs to one tournament, full stop.
	err = f.assign.Execute(ctx, clausura.ID, f.booking.ID)
	if !httperr.IsBusiness(err, "already_assigned_elsewhere") {
		t.Fatalf("cross-assign = %v, want already_assigned_elsewhere", err)
	}

	out, err := f.bookings.Execute(ctx, apertura.ID)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(out) != 1 || out[0].ID != f.booking.ID {
		t.Fatalf("tournament bookings = %+v, want just booking %d", out, f.booking.ID)
	}
}

func TestAssignBookingNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	apertura := f.seedTournament(t, "Apertura")

	if err := f.assign.Execute(ctx, 9999, f.booking.ID); !httperr.IsBusiness(err, "tournament_not_found") {
		t.Fatalf("unknown tournament = %v, want tournament_not_found", err)
	}
	if err := f.assign.Execute(ctx, apertura.ID, 9999); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("unknown booking = %v, want booking_not_found", err)
	}
}

func TestUnassignIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	apertura := f.seedTournament(t, "Apertura")

	// Nothing assigned yet; removing is a no-op.
	if err := f.unassign.Execute(ctx, apertura.ID, f.booking.ID); err != nil {
		t.Fatalf("unassign absent: %v", err)
	}

	if err := f.assign.Execute(ctx, apertura.ID, f.booking.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := f.unassign.Execute(ctx, apertura.ID, f.booking.ID); err != nil {
		t.Fatalf("unassign: %v", err)
	}

	// After removal the booking can join another tournament.
	clausura := f.seedTournament(t, "Clausura")
	if err := f.assign.Execute(ctx, clausura.ID, f.booking.ID); err != nil {
		t.Fatalf("assign after unassign: %v", err)
	}
}

func TestDeleteTournamentGuard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	apertura := f.seedTournament(t, "Apertura")
	if err := f.assign.Execute(ctx, apertura.ID, f.booking.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	err := f.delete.Execute(ctx, apertura.ID)
	if !httperr.IsBusiness(err, "tournament_has_bookings") {
		t.Fatalf("guarded delete = %v, want tournament_has_bookings", err)
	}

	if err := f.unassign.Execute(ctx, apertura.ID, f.booking.ID); err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if err := f.delete.Execute(ctx, apertura.ID); err != nil {
		t.Fatalf("delete after unassign: %v", err)
	}

	var count int64
	f.db.Model(&models.Tournament{}).Where("id = ?", apertura.ID).Count(&count)
	if count != 0 {
		t.Fatal("tournament must be gone")
	}
}
