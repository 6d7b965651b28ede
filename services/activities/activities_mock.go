package activities

import (
	"context"

	"github.com/stretchr/testify/mock"

	"schoolms/models"
	"schoolms/services"
)

// MockActivitiesService is a mock implementation of the ActivitiesService interface
type MockActivitiesService struct {
	mock.Mock
}

func (m *MockActivitiesService) ListActivities(
	ctx context.Context,
	filter services.ActivityFilter,
) ([]*models.Activity, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Activity), args.Error(1)
}

func (m *MockActivitiesService) GetScheduleDays(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockActivitiesService) SignupForActivity(
	ctx context.Context,
	activityName, email string,
) (*models.Activity, error) {
	args := m.Called(ctx, activityName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivitiesService) UnregisterFromActivity(
	ctx context.Context,
	activityName, email string,
) (*models.Activity, error) {
	args := m.Called(ctx, activityName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}
