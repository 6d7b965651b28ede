package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Weekday names accepted in activity schedules, as the frontend renders them.
var ScheduleDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

type Activity struct {
	ID          string          `json:"id"          db:"id"`
	Name        string          `json:"name"        db:"name"`
	Description string          `json:"description" db:"description"`
	// Days the activity meets on, e.g. ["Monday", "Wednesday"]
	Days pq.StringArray `json:"days" db:"days"`
	// Meeting window, minutes since midnight (e.g. 15:30 -> 930)
	StartMinutes int             `json:"start_minutes" db:"start_minutes"`
	EndMinutes   int             `json:"end_minutes"   db:"end_minutes"`
	Capacity     int             `json:"capacity"      db:"capacity"`
	Fee          decimal.Decimal `json:"fee"           db:"fee"`
	CreatedAt    time.Time       `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"    db:"updated_at"`

	// Participant student emails, loaded alongside the activity row
	Participants []string `json:"participants" db:"-"`
}

// SpotsLeft returns the remaining signup capacity.
func (a *Activity) SpotsLeft() int {
	left := a.Capacity - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}

// MeetsOn reports whether the activity is scheduled on the given weekday name.
func (a *Activity) MeetsOn(day string) bool {
	for _, d := range a.Days {
		if d == day {
			return true
		}
	}
	return false
}
