package services

import (
	"context"
	"time"

	"github.com/samber/mo"

	"schoolms/models"
)

// TeachersService defines the interface for teacher account operations
type TeachersService interface {
	Login(ctx context.Context, username, password string) (*models.Teacher, error)
	GetTeacherByUsername(ctx context.Context, username string) (mo.Option[*models.Teacher], error)
}

// ActivityFilter narrows activity listings. Zero values mean "no filter".
type ActivityFilter struct {
	Day string
	// Activities starting at or after this time, minutes since midnight
	StartAfterMinutes *int
	// Activities ending at or before this time, minutes since midnight
	EndBeforeMinutes *int
}

// ActivitiesService defines the interface for extracurricular activity operations
type ActivitiesService interface {
	ListActivities(ctx context.Context, filter ActivityFilter) ([]*models.Activity, error)
	GetScheduleDays(ctx context.Context) ([]string, error)
	SignupForActivity(ctx context.Context, activityName, email string) (*models.Activity, error)
	UnregisterFromActivity(ctx context.Context, activityName, email string) (*models.Activity, error)
}

// CreateAnnouncementParams carries the fields for a new announcement
type CreateAnnouncementParams struct {
	Message   string
	StartDate *time.Time
	EndDate   time.Time
	CreatedBy string
}

// UpdateAnnouncementParams carries the updatable fields of an announcement
type UpdateAnnouncementParams struct {
	Message   string
	StartDate *time.Time
	EndDate   time.Time
}

// AnnouncementsService defines the interface for announcement operations
type AnnouncementsService interface {
	GetActiveAnnouncements(ctx context.Context) ([]*models.Announcement, error)
	GetAllAnnouncements(ctx context.Context) ([]*models.Announcement, error)
	CreateAnnouncement(ctx context.Context, params CreateAnnouncementParams) (*models.Announcement, error)
	UpdateAnnouncement(
		ctx context.Context,
		id string,
		params UpdateAnnouncementParams,
	) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
	CleanupExpiredAnnouncements(ctx context.Context, retention time.Duration) (int64, error)
}

// TransactionManager defines the interface for running work inside a database transaction
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
