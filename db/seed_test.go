package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolms/db"
	"schoolms/testutils"
)

func TestSeedExampleData_Idempotent(t *testing.T) {
	cfg, err := testutils.LoadTestConfig()
	if err != nil {
		t.Skipf("test database not configured: %v", err)
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { dbConn.Close() })

	ctx := context.Background()
	require.NoError(t, db.EnsureSchema(ctx, dbConn, cfg.DatabaseSchema))

	teachersRepo := db.NewPostgresTeachersRepository(dbConn, cfg.DatabaseSchema)
	activitiesRepo := db.NewPostgresActivitiesRepository(dbConn, cfg.DatabaseSchema)
	announcementsRepo := db.NewPostgresAnnouncementsRepository(dbConn, cfg.DatabaseSchema)

	seededUsernames := []string{"mrodriguez", "mchen", "principal"}
	seededActivityNames := []string{
		"Chess Club", "Programming Class", "Morning Fitness", "Soccer Team",
		"Art Club", "Drama Club", "Debate Team", "Weekend Robotics Workshop",
	}

	// Counts only the rows SeedExampleData owns, so rows created by other
	// tests against the same database cannot interfere
	countByKeys := func(table, keyColumn string, keys []string) int {
		var count int
		query := fmt.Sprintf(
			"SELECT COUNT(*) FROM %s.%s WHERE %s = ANY($1)",
			cfg.DatabaseSchema, table, keyColumn)
		require.NoError(t, dbConn.GetContext(ctx, &count, query, pq.Array(keys)))
		return count
	}

	require.NoError(t, db.SeedExampleData(ctx, teachersRepo, activitiesRepo, announcementsRepo))

	teachersAfterFirst := countByKeys("teachers", "username", seededUsernames)
	activitiesAfterFirst := countByKeys("activities", "name", seededActivityNames)
	announcementsAfterFirst, err := announcementsRepo.GetAllAnnouncements(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(seededUsernames), teachersAfterFirst, "expected one row per example teacher")
	assert.Equal(t, len(seededActivityNames), activitiesAfterFirst, "expected one row per example activity")
	assert.NotEmpty(t, announcementsAfterFirst, "expected the welcome announcement to be present")

	// Seeding again must not duplicate rows keyed by natural keys
	require.NoError(t, db.SeedExampleData(ctx, teachersRepo, activitiesRepo, announcementsRepo))

	assert.Equal(t, teachersAfterFirst, countByKeys("teachers", "username", seededUsernames))
	assert.Equal(t, activitiesAfterFirst, countByKeys("activities", "name", seededActivityNames))

	welcomeMessage := "Welcome back! Activity signups for the new semester are now open."
	assert.LessOrEqual(t, countByKeys("announcements", "message", []string{welcomeMessage}), 1,
		"welcome announcement must never be duplicated")
}
