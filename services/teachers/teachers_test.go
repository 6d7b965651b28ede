package teachers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolms/core"
	"schoolms/db"
	"schoolms/testutils"
)

func setupTestService(t *testing.T) (*TeachersService, *db.PostgresTeachersRepository) {
	cfg, err := testutils.LoadTestConfig()
	if err != nil {
		t.Skipf("test database not configured: %v", err)
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { dbConn.Close() })

	require.NoError(t, db.EnsureSchema(context.Background(), dbConn, cfg.DatabaseSchema))

	teachersRepo := db.NewPostgresTeachersRepository(dbConn, cfg.DatabaseSchema)
	return NewTeachersService(teachersRepo), teachersRepo
}

func TestTeachersService_Login(t *testing.T) {
	service, teachersRepo := setupTestService(t)
	ctx := context.Background()

	teacher := testutils.CreateTestTeacher(t, teachersRepo)

	t.Run("success - valid credentials", func(t *testing.T) {
		loggedIn, err := service.Login(ctx, teacher.Username, testutils.TestTeacherPassword)
		require.NoError(t, err)
		assert.Equal(t, teacher.ID, loggedIn.ID)
		assert.Equal(t, teacher.Username, loggedIn.Username)
	})

	t.Run("failure - wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, teacher.Username, "wrong-password")
		assert.ErrorIs(t, err, core.ErrUnauthorized)
	})

	t.Run("failure - unknown username", func(t *testing.T) {
		_, err := service.Login(ctx, "no-such-teacher", testutils.TestTeacherPassword)
		assert.ErrorIs(t, err, core.ErrUnauthorized)
	})

	t.Run("failure - empty username", func(t *testing.T) {
		_, err := service.Login(ctx, "", testutils.TestTeacherPassword)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, core.ErrUnauthorized)
	})
}

func TestTeachersService_GetTeacherByUsername(t *testing.T) {
	service, teachersRepo := setupTestService(t)
	ctx := context.Background()

	teacher := testutils.CreateTestTeacher(t, teachersRepo)

	t.Run("found", func(t *testing.T) {
		maybeTeacher, err := service.GetTeacherByUsername(ctx, teacher.Username)
		require.NoError(t, err)
		require.True(t, maybeTeacher.IsPresent())
		assert.Equal(t, teacher.ID, maybeTeacher.MustGet().ID)
	})

	t.Run("not found", func(t *testing.T) {
		maybeTeacher, err := service.GetTeacherByUsername(ctx, "no-such-teacher")
		require.NoError(t, err)
		assert.False(t, maybeTeacher.IsPresent())
	})
}
