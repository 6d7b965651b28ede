package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	// necessary import to wire up the postgres driver
	_ "github.com/lib/pq"

	dbtx "schoolms/db/tx"
	"schoolms/models"
)

type PostgresActivitiesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for activities table
var activitiesColumns = []string{
	"id",
	"name",
	"description",
	"days",
	"start_minutes",
	"end_minutes",
	"capacity",
	"fee",
	"created_at",
	"updated_at",
}

func NewPostgresActivitiesRepository(db *sqlx.DB, schema string) *PostgresActivitiesRepository {
	return &PostgresActivitiesRepository{db: db, schema: schema}
}

func (r *PostgresActivitiesRepository) CreateActivity(ctx context.Context, activity *models.Activity) error {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(activitiesColumns, ", ")
	returningStr := strings.Join(activitiesColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.activities (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s`, r.schema, columnsStr, returningStr)

	err := db.QueryRowxContext(ctx, query,
		activity.ID,
		activity.Name,
		activity.Description,
		activity.Days,
		activity.StartMinutes,
		activity.EndMinutes,
		activity.Capacity,
		activity.Fee,
	).StructScan(activity)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	return nil
}

func (r *PostgresActivitiesRepository) GetActivityByName(
	ctx context.Context,
	name string,
	forUpdate bool,
) (mo.Option[*models.Activity], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(activitiesColumns, ", ")
	forUpdateClause := ""
	if forUpdate {
		forUpdateClause = " FOR UPDATE"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.activities
		WHERE name = $1%s`, columnsStr, r.schema, forUpdateClause)

	activity := &models.Activity{}
	err := db.QueryRowxContext(ctx, query, name).StructScan(activity)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return mo.None[*models.Activity](), nil
		}
		return mo.None[*models.Activity](), fmt.Errorf("failed to get activity by name: %w", err)
	}

	participants, err := r.getParticipants(ctx, activity.ID)
	if err != nil {
		return mo.None[*models.Activity](), err
	}
	activity.Participants = participants

	return mo.Some(activity), nil
}

func (r *PostgresActivitiesRepository) GetAllActivities(ctx context.Context) ([]*models.Activity, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(activitiesColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.activities
		ORDER BY name ASC`, columnsStr, r.schema)

	activities := []*models.Activity{}
	if err := db.SelectContext(ctx, &activities, query); err != nil {
		return nil, fmt.Errorf("failed to get all activities: %w", err)
	}

	if err := r.attachParticipants(ctx, activities); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *PostgresActivitiesRepository) AddParticipant(
	ctx context.Context,
	activityID, email string,
) error {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s.activity_participants (activity_id, email, created_at)
		VALUES ($1, $2, NOW())`, r.schema)

	if _, err := db.ExecContext(ctx, query, activityID, email); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}

	return nil
}

func (r *PostgresActivitiesRepository) RemoveParticipant(
	ctx context.Context,
	activityID, email string,
) (bool, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		DELETE FROM %s.activity_participants
		WHERE activity_id = $1 AND email = $2`, r.schema)

	result, err := db.ExecContext(ctx, query, activityID, email)
	if err != nil {
		return false, fmt.Errorf("failed to remove participant: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *PostgresActivitiesRepository) CountActivities(ctx context.Context) (int, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.activities`, r.schema)

	var count int
	if err := db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}

	return count, nil
}

func (r *PostgresActivitiesRepository) getParticipants(ctx context.Context, activityID string) ([]string, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT email
		FROM %s.activity_participants
		WHERE activity_id = $1
		ORDER BY created_at ASC`, r.schema)

	participants := []string{}
	if err := db.SelectContext(ctx, &participants, query, activityID); err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	return participants, nil
}

// attachParticipants loads participants for all given activities in one query
func (r *PostgresActivitiesRepository) attachParticipants(ctx context.Context, activities []*models.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT activity_id, email
		FROM %s.activity_participants
		ORDER BY created_at ASC`, r.schema)

	rows := []struct {
		ActivityID string `db:"activity_id"`
		Email      string `db:"email"`
	}{}
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return fmt.Errorf("failed to get participants: %w", err)
	}

	byActivity := make(map[string][]string, len(activities))
	for _, row := range rows {
		byActivity[row.ActivityID] = append(byActivity[row.ActivityID], row.Email)
	}

	for _, activity := range activities {
		participants := byActivity[activity.ID]
		if participants == nil {
			participants = []string{}
		}
		activity.Participants = participants
	}

	return nil
}
