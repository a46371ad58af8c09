package models

import "time"

// TimeSlot is a fixed start/end pairing ("18:00"–"19:00") usable by any
// court on any date.
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartTime string `gorm:"size:5;not null;uniqueIndex:idx_time_slot_range" json:"start_time"`
	EndTime   string `gorm:"size:5;not null;uniqueIndex:idx_time_slot_range" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
