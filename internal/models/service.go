package models

import "time"

// Service is an amenity a court can offer (lockers, grill, parking...).
// The court association lives in the court_services join table.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Cost float64 `json:"cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
