package announcements

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolms/core"
	"schoolms/db"
	"schoolms/services"
	"schoolms/testutils"
)

func setupTestService(t *testing.T) *AnnouncementsService {
	cfg, err := testutils.LoadTestConfig()
	if err != nil {
		t.Skipf("test database not configured: %v", err)
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { dbConn.Close() })

	require.NoError(t, db.EnsureSchema(context.Background(), dbConn, cfg.DatabaseSchema))

	announcementsRepo := db.NewPostgresAnnouncementsRepository(dbConn, cfg.DatabaseSchema)
	return NewAnnouncementsService(announcementsRepo)
}

func TestAnnouncementsService_CreateAnnouncement(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	t.Run("success - created announcement is active", func(t *testing.T) {
		announcement, err := service.CreateAnnouncement(ctx, services.CreateAnnouncementParams{
			Message:   "Test announcement",
			EndDate:   time.Now().Add(24 * time.Hour),
			CreatedBy: "principal",
		})
		require.NoError(t, err)
		assert.True(t, core.IsValidULID(announcement.ID))

		active, err := service.GetActiveAnnouncements(ctx)
		require.NoError(t, err)

		found := false
		for _, a := range active {
			if a.ID == announcement.ID {
				found = true
			}
		}
		assert.True(t, found, "expected new announcement in active listing")
	})

	t.Run("future start date keeps announcement out of active listing", func(t *testing.T) {
		start := time.Now().Add(12 * time.Hour)
		announcement, err := service.CreateAnnouncement(ctx, services.CreateAnnouncementParams{
			Message:   "Scheduled announcement",
			StartDate: &start,
			EndDate:   time.Now().Add(24 * time.Hour),
			CreatedBy: "principal",
		})
		require.NoError(t, err)

		active, err := service.GetActiveAnnouncements(ctx)
		require.NoError(t, err)

		for _, a := range active {
			assert.NotEqual(t, announcement.ID, a.ID)
		}
	})

	t.Run("failure - empty message", func(t *testing.T) {
		_, err := service.CreateAnnouncement(ctx, services.CreateAnnouncementParams{
			EndDate:   time.Now().Add(24 * time.Hour),
			CreatedBy: "principal",
		})
		assert.Error(t, err)
	})
}

func TestAnnouncementsService_UpdateAnnouncement(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	announcement, err := service.CreateAnnouncement(ctx, services.CreateAnnouncementParams{
		Message:   "Original message",
		EndDate:   time.Now().Add(24 * time.Hour),
		CreatedBy: "principal",
	})
	require.NoError(t, err)

	t.Run("success - updates fields", func(t *testing.T) {
		updated, err := service.UpdateAnnouncement(ctx, announcement.ID, services.UpdateAnnouncementParams{
			Message: "Updated message",
			EndDate: time.Now().Add(48 * time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, "Updated message", updated.Message)
		assert.Equal(t, announcement.CreatedBy, updated.CreatedBy)
	})

	t.Run("failure - unknown ID", func(t *testing.T) {
		_, err := service.UpdateAnnouncement(ctx, core.NewID("ann"), services.UpdateAnnouncementParams{
			Message: "Updated message",
			EndDate: time.Now().Add(48 * time.Hour),
		})
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("failure - malformed ID", func(t *testing.T) {
		_, err := service.UpdateAnnouncement(ctx, "not-a-ulid", services.UpdateAnnouncementParams{
			Message: "Updated message",
			EndDate: time.Now().Add(48 * time.Hour),
		})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, core.ErrNotFound)
	})
}

func TestAnnouncementsService_DeleteAnnouncement(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	announcement, err := service.CreateAnnouncement(ctx, services.CreateAnnouncementParams{
		Message:   "To be deleted",
		EndDate:   time.Now().Add(24 * time.Hour),
		CreatedBy: "principal",
	})
	require.NoError(t, err)

	t.Run("success - removes announcement", func(t *testing.T) {
		require.NoError(t, service.DeleteAnnouncement(ctx, announcement.ID))

		err := service.DeleteAnnouncement(ctx, announcement.ID)
		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}

func TestAnnouncementsService_CleanupExpiredAnnouncements(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	// Ended two days ago, retention of one day - should be swept
	expired, err := service.CreateAnnouncement(ctx, services.CreateAnnouncementParams{
		Message:   "Long expired",
		EndDate:   time.Now().Add(-48 * time.Hour),
		CreatedBy: "principal",
	})
	require.NoError(t, err)

	// Still active - must survive the sweep
	active, err := service.CreateAnnouncement(ctx, services.CreateAnnouncementParams{
		Message:   "Still active",
		EndDate:   time.Now().Add(24 * time.Hour),
		CreatedBy: "principal",
	})
	require.NoError(t, err)

	removed, err := service.CleanupExpiredAnnouncements(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, int64(1))

	all, err := service.GetAllAnnouncements(ctx)
	require.NoError(t, err)

	for _, a := range all {
		assert.NotEqual(t, expired.ID, a.ID, "expired announcement should have been removed")
	}

	found := false
	for _, a := range all {
		if a.ID == active.ID {
			found = true
		}
	}
	assert.True(t, found, "active announcement should survive cleanup")
}
