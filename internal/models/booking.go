package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One booking per (date, court, slot). The advisory availability
	// check may race; this index is the final arbiter.
	Date time.Time `gorm:"type:date;not null;uniqueIndex:idx_booking_slot" json:"date"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	CourtID uint  `gorm:"not null;uniqueIndex:idx_booking_slot" json:"court_id"`
	Court   Court `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"court"`

	TimeSlotID uint     `gorm:"not null;uniqueIndex:idx_booking_slot" json:"time_slot_id"`
	TimeSlot   TimeSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"time_slot"`

	Amount float64 `gorm:"not null" json:"amount"`
	Status string  `gorm:"size:20;default:'pendiente'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
