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

type PostgresTeachersRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for teachers table
var teachersColumns = []string{
	"id",
	"username",
	"display_name",
	"password_hash",
	"role",
	"created_at",
	"updated_at",
}

func NewPostgresTeachersRepository(db *sqlx.DB, schema string) *PostgresTeachersRepository {
	return &PostgresTeachersRepository{db: db, schema: schema}
}

func (r *PostgresTeachersRepository) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(teachersColumns, ", ")
	returningStr := strings.Join(teachersColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.teachers (%s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, r.schema, columnsStr, returningStr)

	err := db.QueryRowxContext(ctx, query,
		teacher.ID,
		teacher.Username,
		teacher.DisplayName,
		teacher.PasswordHash,
		teacher.Role,
	).StructScan(teacher)
	if err != nil {
		return fmt.Errorf("failed to create teacher: %w", err)
	}

	return nil
}

func (r *PostgresTeachersRepository) GetTeacherByUsername(
	ctx context.Context,
	username string,
) (mo.Option[*models.Teacher], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(teachersColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.teachers
		WHERE username = $1`, columnsStr, r.schema)

	teacher := &models.Teacher{}
	err := db.QueryRowxContext(ctx, query, username).StructScan(teacher)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return mo.None[*models.Teacher](), nil
		}
		return mo.None[*models.Teacher](), fmt.Errorf("failed to get teacher by username: %w", err)
	}

	return mo.Some(teacher), nil
}

func (r *PostgresTeachersRepository) CountTeachers(ctx context.Context) (int, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.teachers`, r.schema)

	var count int
	if err := db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count teachers: %w", err)
	}

	return count, nil
}
