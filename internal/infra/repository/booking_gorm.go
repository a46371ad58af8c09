package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/gonzalomaurino/canchas-api/internal/domain/booking"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *BookingGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *BookingGormRepository) GetCourt(
	ctx context.Context,
	id uint,
) (*models.Court, error) {

	var court models.Court
	if err := r.db.WithContext(ctx).First(&court, id).Error; err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *BookingGormRepository) GetTimeSlot(
	ctx context.Context,
	id uint,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CountBookingsAt(
	ctx context.Context,
	date time.Time,
	courtID uint,
	slotID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"date = ? AND court_id = ? AND time_slot_id = ?",
			date, courtID, slotID,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.Conflict(
				"slot_taken",
				"Ya existe una reserva para esa cancha, fecha y horario.",
			)
		}
		return httperr.Store("booking_create_failed", err)
	}
	return nil
}

// --------------------------------------------------
// Booking (state change / deletion)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Court").
		Preload("TimeSlot").
		First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(b).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.Conflict(
				"slot_taken",
				"Ya existe una reserva para esa cancha, fecha y horario.",
			)
		}
		return httperr.Store("booking_update_failed", err)
	}
	return nil
}

func (r *BookingGormRepository) CountPayments(
	ctx context.Context,
	bookingID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BookingGormRepository) SumPayments(
	ctx context.Context,
	bookingID uint,
) (float64, error) {

	var paid float64
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("booking_id = ?", bookingID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paid).Error; err != nil {
		return 0, err
	}

	return paid, nil
}

// DeleteBookingCascade removes the booking and its dependents in order:
// tournament association, payments, booking. The store also defines
// cascade rules; doing it explicitly keeps the delete order deterministic.
func (r *BookingGormRepository) DeleteBookingCascade(
	ctx context.Context,
	bookingID uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Where("booking_id = ?", bookingID).
			Delete(&models.TournamentBooking{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("booking_id = ?", bookingID).
			Delete(&models.Payment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Booking{}, bookingID).Error
	})

	if err != nil {
		return httperr.Store("booking_delete_failed", err)
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Court").
		Preload("TimeSlot")

	if filter.Status != nil {
		q = q.Where("LOWER(status) = ?", string(*filter.Status))
	}
	if filter.CourtID != nil {
		q = q.Where("court_id = ?", *filter.CourtID)
	}

	var bookings []models.Booking
	if err := q.
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
