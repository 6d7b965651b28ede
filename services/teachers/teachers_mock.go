package teachers

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"schoolms/models"
)

// MockTeachersService is a mock implementation of the TeachersService interface
type MockTeachersService struct {
	mock.Mock
}

func (m *MockTeachersService) Login(ctx context.Context, username, password string) (*models.Teacher, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Teacher), args.Error(1)
}

func (m *MockTeachersService) GetTeacherByUsername(
	ctx context.Context,
	username string,
) (mo.Option[*models.Teacher], error) {
	args := m.Called(ctx, username)
	return args.Get(0).(mo.Option[*models.Teacher]), args.Error(1)
}
