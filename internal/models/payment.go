package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `gorm:"not null;index" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"booking"`

	PaidAt time.Time `gorm:"not null" json:"paid_at"`
	Amount float64   `gorm:"not null" json:"amount"`
	Method string    `gorm:"size:30;not null" json:"method"`

	// Receipt reference handed to the client.
	Reference string `gorm:"size:36" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
}
