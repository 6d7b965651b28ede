package announcements

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"schoolms/models"
	"schoolms/services"
)

// MockAnnouncementsService is a mock implementation of the AnnouncementsService interface
type MockAnnouncementsService struct {
	mock.Mock
}

func (m *MockAnnouncementsService) GetActiveAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Announcement), args.Error(1)
}

func (m *MockAnnouncementsService) GetAllAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Announcement), args.Error(1)
}

func (m *MockAnnouncementsService) CreateAnnouncement(
	ctx context.Context,
	params services.CreateAnnouncementParams,
) (*models.Announcement, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Announcement), args.Error(1)
}

func (m *MockAnnouncementsService) UpdateAnnouncement(
	ctx context.Context,
	id string,
	params services.UpdateAnnouncementParams,
) (*models.Announcement, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Announcement), args.Error(1)
}

func (m *MockAnnouncementsService) DeleteAnnouncement(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAnnouncementsService) CleanupExpiredAnnouncements(
	ctx context.Context,
	retention time.Duration,
) (int64, error) {
	args := m.Called(ctx, retention)
	return args.Get(0).(int64), args.Error(1)
}
