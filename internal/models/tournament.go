package models

import "time"

type Tournament struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string    `gorm:"size:100;not null" json:"name"`
	StartDate time.Time `gorm:"type:date" json:"start_date"`
	EndDate   time.Time `gorm:"type:date" json:"end_date"`
	Category  string    `gorm:"size:50" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TournamentBooking is the tournament↔booking association. The unique index
// on BookingID spans the whole table: a booking belongs to at most one
// tournament, ever.
type TournamentBooking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TournamentID uint       `gorm:"not null;index" json:"tournament_id"`
	Tournament   Tournament `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BookingID uint    `gorm:"not null;uniqueIndex" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
