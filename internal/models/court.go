package models

import "time"

type Court struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	SurfaceType string  `gorm:"size:50" json:"surface_type"`
	Lighting    bool    `gorm:"default:false" json:"lighting"`
	HourlyPrice float64 `gorm:"not null" json:"hourly_price"`

	// Legacy free-text list, kept for data imported before the
	// court_services association existed.
	ServicesText string `gorm:"size:255" json:"services_text"`

	Services []Service `gorm:"many2many:court_services;" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
