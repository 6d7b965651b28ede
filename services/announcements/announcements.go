package announcements

import (
	"context"
	"fmt"
	"log"
	"time"

	"schoolms/core"
	"schoolms/db"
	"schoolms/models"
	"schoolms/notifier"
	"schoolms/services"
)

type AnnouncementsService struct {
	announcementsRepo *db.PostgresAnnouncementsRepository
}

func NewAnnouncementsService(repo *db.PostgresAnnouncementsRepository) *AnnouncementsService {
	return &AnnouncementsService{announcementsRepo: repo}
}

func (s *AnnouncementsService) GetActiveAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	log.Printf("📋 Starting to get active announcements")

	announcements, err := s.announcementsRepo.GetActiveAnnouncements(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get active announcements: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved %d active announcements", len(announcements))
	return announcements, nil
}

func (s *AnnouncementsService) GetAllAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	log.Printf("📋 Starting to get all announcements")

	announcements, err := s.announcementsRepo.GetAllAnnouncements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all announcements: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved %d announcements", len(announcements))
	return announcements, nil
}

func (s *AnnouncementsService) CreateAnnouncement(
	ctx context.Context,
	params services.CreateAnnouncementParams,
) (*models.Announcement, error) {
	log.Printf("📋 Starting to create announcement by: %s", params.CreatedBy)

	if params.Message == "" {
		return nil, fmt.Errorf("message cannot be empty")
	}
	if params.EndDate.IsZero() {
		return nil, fmt.Errorf("end_date cannot be empty")
	}
	if params.CreatedBy == "" {
		return nil, fmt.Errorf("created_by cannot be empty")
	}

	announcement := &models.Announcement{
		ID:        core.NewID("ann"),
		Message:   params.Message,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		CreatedBy: params.CreatedBy,
	}
	if err := s.announcementsRepo.CreateAnnouncement(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	// Fan out to the configured notification channels; delivery is best-effort
	notifier.AnnouncementCreated(announcement)

	log.Printf("📋 Completed successfully - created announcement with ID: %s", announcement.ID)
	return announcement, nil
}

func (s *AnnouncementsService) UpdateAnnouncement(
	ctx context.Context,
	id string,
	params services.UpdateAnnouncementParams,
) (*models.Announcement, error) {
	log.Printf("📋 Starting to update announcement with ID: %s", id)

	if !core.IsValidULID(id) {
		return nil, fmt.Errorf("announcement ID must be a valid ULID")
	}
	if params.Message == "" {
		return nil, fmt.Errorf("message cannot be empty")
	}
	if params.EndDate.IsZero() {
		return nil, fmt.Errorf("end_date cannot be empty")
	}

	maybeAnnouncement, err := s.announcementsRepo.UpdateAnnouncement(
		ctx, id, params.Message, params.StartDate, params.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}
	if !maybeAnnouncement.IsPresent() {
		return nil, core.ErrNotFound
	}
	announcement := maybeAnnouncement.MustGet()

	log.Printf("📋 Completed successfully - updated announcement with ID: %s", announcement.ID)
	return announcement, nil
}

func (s *AnnouncementsService) DeleteAnnouncement(ctx context.Context, id string) error {
	log.Printf("📋 Starting to delete announcement with ID: %s", id)

	if !core.IsValidULID(id) {
		return fmt.Errorf("announcement ID must be a valid ULID")
	}

	deleted, err := s.announcementsRepo.DeleteAnnouncement(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if !deleted {
		return core.ErrNotFound
	}

	log.Printf("📋 Completed successfully - deleted announcement with ID: %s", id)
	return nil
}

// CleanupExpiredAnnouncements removes announcements whose end date passed more
// than the retention window ago
func (s *AnnouncementsService) CleanupExpiredAnnouncements(
	ctx context.Context,
	retention time.Duration,
) (int64, error) {
	log.Printf("📋 Starting cleanup of expired announcements")

	cutoff := time.Now().Add(-retention)
	removed, err := s.announcementsRepo.DeleteExpiredAnnouncements(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired announcements: %w", err)
	}

	log.Printf("📋 Completed successfully - removed %d expired announcements", removed)
	return removed, nil
}
