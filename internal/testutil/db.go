// Package testutil provides shared fixtures for package tests. Tests run
// against an in-memory sqlite database with the same schema the API
// migrates on boot.
package testutil

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gonzalomaurino/canchas-api/internal/models"
)

// OpenDB opens a fresh in-memory database with the full schema migrated.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// A pooled second connection would see its own empty :memory: db.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Court{},
		&models.Service{},
		&models.TimeSlot{},
		&models.Booking{},
		&models.Payment{},
		&models.Tournament{},
		&models.TournamentBooking{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

// SeedBookingRefs creates one client, one court and one time slot and
// returns them, ready to hang bookings on.
func SeedBookingRefs(t *testing.T, db *gorm.DB) (models.Client, models.Court, models.TimeSlot) {
	t.Helper()

	client := models.Client{
		FirstName: "Juan",
		LastName:  "Pérez",
		Phone:     "3511234567",
		Email:     "juan.perez@example.com",
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}

	court := models.Court{
		Name:        "Cancha 1",
		SurfaceType: "césped sintético",
		Lighting:    true,
		HourlyPrice: 45000,
	}
	if err := db.Create(&court).Error; err != nil {
		t.Fatalf("seed court: %v", err)
	}

	slot := models.TimeSlot{StartTime: "18:00", EndTime: "19:00"}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("seed time slot: %v", err)
	}

	return client, court, slot
}

// SeedBooking creates a booking on the given refs for a future date.
func SeedBooking(
	t *testing.T,
	db *gorm.DB,
	client models.Client,
	court models.Court,
	slot models.TimeSlot,
	status string,
	amount float64,
) models.Booking {
	t.Helper()

	b := models.Booking{
		Date:       FutureDate(),
		ClientID:   client.ID,
		CourtID:    court.ID,
		TimeSlotID: slot.ID,
		Status:     status,
		Amount:     amount,
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}

// FutureDate returns a date far enough ahead to pass past-date checks.
func FutureDate() time.Time {
	d := time.Now().UTC().AddDate(0, 1, 0)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
