package model

import "time"

// Setting is one named configuration value. The unique index on Key is what
// makes the upsert path race-free: at most one row per key can ever exist,
// regardless of how many writers collide.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"key" validate:"required"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
