package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"schoolms/appctx"
	"schoolms/config"
	"schoolms/core"
	"schoolms/db"
	"schoolms/models"
)

// TestTeacherPassword is the plaintext behind every test teacher credential
const TestTeacherPassword = "test-password"

// LoadTestConfig loads configuration for tests from environment variables
func LoadTestConfig() (*config.AppConfig, error) {
	// Try to load environment variables from various possible locations
	_ = godotenv.Load("../.env.test") // From services/ directory
	_ = godotenv.Load(".env.test")    // From root directory
	_ = godotenv.Load()               // Default .env file

	databaseURL := os.Getenv("DB_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	databaseSchema := os.Getenv("DB_SCHEMA")
	if databaseSchema == "" {
		return nil, fmt.Errorf("DB_SCHEMA is not set")
	}

	return &config.AppConfig{
		DatabaseURL:    databaseURL,
		DatabaseSchema: databaseSchema,
	}, nil
}

// CreateTestTeacher creates a teacher with a unique username to avoid
// constraint violations. The password is always TestTeacherPassword.
func CreateTestTeacher(t *testing.T, teachersRepo *db.PostgresTeachersRepository) *models.Teacher {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestTeacherPassword), bcrypt.MinCost)
	require.NoError(t, err, "Failed to hash test password")

	teacher := &models.Teacher{
		ID:           core.NewID("t"),
		Username:     "test-teacher-" + uuid.New().String(),
		DisplayName:  "Test Teacher",
		PasswordHash: string(hash),
		Role:         models.TeacherRoleTeacher,
	}
	err = teachersRepo.CreateTeacher(context.Background(), teacher)
	require.NoError(t, err, "Failed to create test teacher")
	return teacher
}

// CreateTestActivity creates an activity with a unique name and the given capacity
func CreateTestActivity(
	t *testing.T,
	activitiesRepo *db.PostgresActivitiesRepository,
	capacity int,
) *models.Activity {
	activity := &models.Activity{
		ID:           core.NewID("act"),
		Name:         "Test Activity " + uuid.New().String(),
		Description:  "Activity created by a test",
		Days:         []string{"Monday"},
		StartMinutes: 15 * 60,
		EndMinutes:   16 * 60,
		Capacity:     capacity,
		Fee:          decimal.Zero,
	}
	err := activitiesRepo.CreateActivity(context.Background(), activity)
	require.NoError(t, err, "Failed to create test activity")
	return activity
}

// CreateTestContext creates a context with the given teacher set for testing
func CreateTestContext(teacher *models.Teacher) context.Context {
	return appctx.SetTeacher(context.Background(), teacher)
}
