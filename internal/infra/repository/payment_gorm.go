package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gonzalomaurino/canchas-api/internal/domain/booking"
	domain "github.com/gonzalomaurino/canchas-api/internal/domain/payment"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PaymentGormRepository) GetPayment(
	ctx context.Context,
	id uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentGormRepository) SumPayments(
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

// --------------------------------------------------
// Payment + booking state, one transaction each
// --------------------------------------------------

func (r *PaymentGormRepository) CreatePaymentAndUpdateStatus(
	ctx context.Context,
	p *models.Payment,
	status booking.Status,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(p).Error; err != nil {
			return err
		}

		return tx.
			Model(&models.Booking{}).
			Where("id = ?", p.BookingID).
			Update("status", string(status)).Error
	})

	if err != nil {
		return httperr.Store("payment_create_failed", err)
	}
	return nil
}

func (r *PaymentGormRepository) DeletePaymentRecomputingStatus(
	ctx context.Context,
	paymentID uint,
	bookingID uint,
	total float64,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Delete(&models.Payment{}, paymentID).Error; err != nil {
			return err
		}

		// State is reconstructed from what remains, inside the same
		// transaction as the delete.
		var remaining float64
		if err := tx.
			Model(&models.Payment{}).
			Where("booking_id = ?", bookingID).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&remaining).Error; err != nil {
			return err
		}

		return tx.
			Model(&models.Booking{}).
			Where("id = ?", bookingID).
			Update("status", string(domain.DeriveStatus(total, remaining))).Error
	})

	if err != nil {
		return httperr.Store("payment_delete_failed", err)
	}
	return nil
}

func (r *PaymentGormRepository) ListPayments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Payment, error) {

	q := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Booking.Client").
		Preload("Booking.Court")

	if filter.CourtID != nil {
		q = q.
			Joins("JOIN bookings ON bookings.id = payments.booking_id").
			Where("bookings.court_id = ?", *filter.CourtID)
	}
	if filter.Method != nil {
		q = q.Where("payments.method = ?", *filter.Method)
	}

	var payments []models.Payment
	if err := q.
		Order("payments.id DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}

	return payments, nil
}

// Compile-time check
var _ domain.Repository = (*PaymentGormRepository)(nil)
