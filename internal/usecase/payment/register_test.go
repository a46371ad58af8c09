package payment

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
	register *RegisterPayment
	delete   *DeletePayment
	details  *PaymentDetails
	booking  models.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.OpenDB(t)
	client, court, slot := testutil.SeedBookingRefs(t, db)
	b := testutil.SeedBooking(t, db, client, court, slot, "pendiente", 45000)

	repo := infraRepo.NewPaymentGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	return &fixture{
		db:       db,
		register: NewRegisterPayment(repo, dispatcher),
		delete:   NewDeletePayment(repo, dispatcher),
		details:  NewPaymentDetails(repo),
		booking:  b,
	}
}

func (f *fixture) bookingStatus(t *testing.T) string {
	t.Helper()
	var b models.Booking
	if err := f.db.First(&b, f.booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	return b.Status
}

func TestPaymentLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Partial payment moves the booking to seña.
	first, err := f.register.Execute(ctx, RegisterPaymentInput{
		BookingID: f.booking.ID,
		Amount:    20000,
		Method:    "efectivo",
	})
	if err != nil {
		t.Fatalf("register first payment: %v", err)
	}
	if first.Reference == "" {
		t.Error("payment reference must be assigned")
	}
	if got := f.bookingStatus(t); got != "seña" {
		t.Fatalf("status after partial payment = %q, want seña", got)
	}

	details, err := f.details.Execute(ctx, f.booking.ID)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if details.Paid != 20000 || details.Outstanding != 25000 {
		t.Fatalf("details = %+v, want paid 20000 / outstanding 25000", details)
	}

	// Settling the balance confirms the booking.
	second, err := f.register.Execute(ctx, RegisterPaymentInput{
		BookingID: f.booking.ID,
		Amount:    25000,
		Method:    "transferencia",
	})
	if err != nil {
		t.Fatalf("register second payment: %v", err)
	}
	if got := f.bookingStatus(t); got != "confirmada" {
		t.Fatalf("status after full payment = %q, want confirmada", got)
	}

	// One peso over the balance is refused outright.
	_, err = f.register.Execute(ctx, RegisterPaymentInput{
		BookingID: f.booking.ID,
		Amount:    1,
		Method:    "efectivo",
	})
	if !httperr.IsKind(err, httperr.KindOverpayment) {
		t.Fatalf("overpay = %v, want overpayment error", err)
	}

	// Deleting the settling payment reverts to seña.
	if err := f.delete.Execute(ctx, second.ID); err != nil {
		t.Fatalf("delete second payment: %v", err)
	}
	if got := f.bookingStatus(t); got != "seña" {
		t.Fatalf("status after deleting settling payment = %q, want seña", got)
	}

	// Deleting the last payment reverts to pendiente.
	if err := f.delete.Execute(ctx, first.ID); err != nil {
		t.Fatalf("delete first payment: %v", err)
	}
	if got := f.bookingStatus(t); got != "pendiente" {
		t.Fatalf("status with no payments = %q, want pendiente", got)
	}
}

func TestRegisterPaymentExactTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.register.Execute(ctx, RegisterPaymentInput{
		BookingID: f.booking.ID,
		Amount:    45000,
		Method:    "tarjeta",
	}); err != nil {
		t.Fatalf("register full payment: %v", err)
	}
	if got := f.bookingStatus(t); got != "confirmada" {
		t.Fatalf("status = %q, want confirmada", got)
	}
}

func TestRegisterPaymentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterPaymentInput{
		BookingID: f.booking.ID,
		Amount:    0,
		Method:    "efectivo",
	})
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("zero amount = %v, want validation error", err)
	}

	_, err = f.register.Execute(ctx, RegisterPaymentInput{
		BookingID: 9999,
		Amount:    100,
		Method:    "efectivo",
	})
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("unknown booking = %v, want not found", err)
	}
}

// A store outage is reported as a store failure, not as a missing
// booking.
func TestRegisterPaymentStoreErrorIsNotNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sqlDB, err := f.db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	_, err = f.register.Execute(ctx, RegisterPaymentInput{
		BookingID: f.booking.ID,
		Amount:    100,
		Method:    "efectivo",
	})
	if !httperr.IsKind(err, httperr.KindStore) {
		t.Fatalf("outage = %v, want store error", err)
	}
	if httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatal("outage must not surface as not found")
	}
}

func TestDeletePaymentNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.delete.Execute(context.Background(), 9999)
	if !httperr.IsBusiness(err, "payment_not_found") {
		t.Fatalf("delete unknown payment = %v, want payment_not_found", err)
	}
}
