package models

import (
	"time"
)

type Announcement struct {
	ID      string `json:"id"      db:"id"`
	Message string `json:"message" db:"message"`

	// StartDate nil means the announcement is active immediately
	StartDate *time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time  `json:"end_date"   db:"end_date"`

	CreatedBy string    `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsActiveAt reports whether the announcement should be shown at the given time.
func (a *Announcement) IsActiveAt(now time.Time) bool {
	if now.After(a.EndDate) {
		return false
	}
	return a.StartDate == nil || !a.StartDate.After(now)
}
