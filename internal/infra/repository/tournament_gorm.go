package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/gonzalomaurino/canchas-api/internal/domain/tournament"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/models"
)

type TournamentGormRepository struct {
	db *gorm.DB
}

func NewTournamentGormRepository(db *gorm.DB) *TournamentGormRepository {
	return &TournamentGormRepository{db: db}
}

func (r *TournamentGormRepository) CreateTournament(
	ctx context.Context,
	t *models.Tournament,
) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return httperr.Store("tournament_create_failed", err)
	}
	return nil
}

func (r *TournamentGormRepository) GetTournament(
	ctx context.Context,
	id uint,
) (*models.Tournament, error) {

	var t models.Tournament
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TournamentGormRepository) ListTournaments(
	ctx context.Context,
) ([]models.Tournament, error) {

	var tournaments []models.Tournament
	if err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&tournaments).Error; err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *TournamentGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Association set
// --------------------------------------------------

func (r *TournamentGormRepository) FindAssignment(
	ctx context.Context,
	bookingID uint,
) (*models.TournamentBooking, error) {

	var a models.TournamentBooking
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&a).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *TournamentGormRepository) CreateAssignment(
	ctx context.Context,
	a *models.TournamentBooking,
) error {

	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.Conflict(
				"already_assigned",
				"La reserva ya está asignada a un torneo.",
			)
		}
		return httperr.Store("assignment_create_failed", err)
	}
	return nil
}

func (r *TournamentGormRepository) DeleteAssignment(
	ctx context.Context,
	tournamentID uint,
	bookingID uint,
) error {

	if err := r.db.WithContext(ctx).
		Where("tournament_id = ? AND booking_id = ?", tournamentID, bookingID).
		Delete(&models.TournamentBooking{}).Error; err != nil {
		return httperr.Store("assignment_delete_failed", err)
	}
	return nil
}

func (r *TournamentGormRepository) CountAssignments(
	ctx context.Context,
	tournamentID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TournamentBooking{}).
		Where("tournament_id = ?", tournamentID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *TournamentGormRepository) ListBookings(
	ctx context.Context,
	tournamentID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Court").
		Preload("TimeSlot").
		Joins("JOIN tournament_bookings ON tournament_bookings.booking_id = bookings.id").
		Where("tournament_bookings.tournament_id = ?", tournamentID).
		Order("bookings.date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *TournamentGormRepository) DeleteTournamentCascade(
	ctx context.Context,
	tournamentID uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Where("tournament_id = ?", tournamentID).
			Delete(&models.TournamentBooking{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Tournament{}, tournamentID).Error
	})

	if err != nil {
		return httperr.Store("tournament_delete_failed", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*TournamentGormRepository)(nil)
