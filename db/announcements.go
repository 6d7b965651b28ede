package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	// necessary import to wire up the postgres driver
	_ "github.com/lib/pq"

	dbtx "schoolms/db/tx"
	"schoolms/models"
)

type PostgresAnnouncementsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for announcements table
var announcementsColumns = []string{
	"id",
	"message",
	"start_date",
	"end_date",
	"created_by",
	"created_at",
	"updated_at",
}

func NewPostgresAnnouncementsRepository(db *sqlx.DB, schema string) *PostgresAnnouncementsRepository {
	return &PostgresAnnouncementsRepository{db: db, schema: schema}
}

func (r *PostgresAnnouncementsRepository) CreateAnnouncement(
	ctx context.Context,
	announcement *models.Announcement,
) error {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(announcementsColumns, ", ")
	returningStr := strings.Join(announcementsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.announcements (%s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, r.schema, columnsStr, returningStr)

	err := db.QueryRowxContext(ctx, query,
		announcement.ID,
		announcement.Message,
		announcement.StartDate,
		announcement.EndDate,
		announcement.CreatedBy,
	).StructScan(announcement)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	return nil
}

// GetActiveAnnouncements returns announcements whose window contains the given
// time: end_date not passed, start_date absent or already reached.
func (r *PostgresAnnouncementsRepository) GetActiveAnnouncements(
	ctx context.Context,
	now time.Time,
) ([]*models.Announcement, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(announcementsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.announcements
		WHERE end_date >= $1 AND (start_date IS NULL OR start_date <= $1)
		ORDER BY created_at DESC`, columnsStr, r.schema)

	announcements := []*models.Announcement{}
	if err := db.SelectContext(ctx, &announcements, query, now); err != nil {
		return nil, fmt.Errorf("failed to get active announcements: %w", err)
	}

	return announcements, nil
}

func (r *PostgresAnnouncementsRepository) GetAllAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(announcementsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.announcements
		ORDER BY created_at DESC`, columnsStr, r.schema)

	announcements := []*models.Announcement{}
	if err := db.SelectContext(ctx, &announcements, query); err != nil {
		return nil, fmt.Errorf("failed to get all announcements: %w", err)
	}

	return announcements, nil
}

func (r *PostgresAnnouncementsRepository) UpdateAnnouncement(
	ctx context.Context,
	id, message string,
	startDate *time.Time,
	endDate time.Time,
) (mo.Option[*models.Announcement], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(announcementsColumns, ", ")

	query := fmt.Sprintf(`
		UPDATE %s.announcements
		SET message = $2, start_date = $3, end_date = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, r.schema, returningStr)

	announcement := &models.Announcement{}
	err := db.QueryRowxContext(ctx, query, id, message, startDate, endDate).StructScan(announcement)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return mo.None[*models.Announcement](), nil
		}
		return mo.None[*models.Announcement](), fmt.Errorf("failed to update announcement: %w", err)
	}

	return mo.Some(announcement), nil
}

func (r *PostgresAnnouncementsRepository) DeleteAnnouncement(ctx context.Context, id string) (bool, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		DELETE FROM %s.announcements
		WHERE id = $1`, r.schema)

	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete announcement: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// DeleteExpiredAnnouncements removes announcements whose end date passed
// before the given cutoff. Returns the number of rows removed.
func (r *PostgresAnnouncementsRepository) DeleteExpiredAnnouncements(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		DELETE FROM %s.announcements
		WHERE end_date < $1`, r.schema)

	result, err := db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired announcements: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
