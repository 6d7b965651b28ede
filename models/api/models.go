package api

import (
	"time"
)

// TeacherModel represents the teacher data returned by the API.
// The password hash never leaves the domain layer.
type TeacherModel struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ActivityModel represents an activity as the frontend consumes it
type ActivityModel struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Days         []string `json:"days"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	Capacity     int      `json:"max_participants"`
	Fee          string   `json:"fee"`
	Participants []string `json:"participants"`
	SpotsLeft    int      `json:"spots_left"`
}

// AnnouncementModel represents an announcement as the frontend consumes it
type AnnouncementModel struct {
	ID        string     `json:"id"`
	Message   string     `json:"message"`
	StartDate *time.Time `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	CreatedBy string     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
