package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// EnsureSchema creates the schema and tables if they do not exist yet.
// Statements are idempotent so this is safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sqlx.DB, schema string) error {
	statements := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, schema),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s.teachers (
				id TEXT PRIMARY KEY,
				username TEXT NOT NULL UNIQUE,
				display_name TEXT NOT NULL,
				password_hash TEXT NOT NULL,
				role TEXT NOT NULL DEFAULT 'teacher',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, schema),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s.activities (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL UNIQUE,
				description TEXT NOT NULL,
				days TEXT[] NOT NULL,
				start_minutes INTEGER NOT NULL,
				end_minutes INTEGER NOT NULL,
				capacity INTEGER NOT NULL,
				fee NUMERIC(8, 2) NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, schema),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s.activity_participants (
				activity_id TEXT NOT NULL REFERENCES %s.activities(id) ON DELETE CASCADE,
				email TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				PRIMARY KEY (activity_id, email)
			)`, schema, schema),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s.announcements (
				id TEXT PRIMARY KEY,
				message TEXT NOT NULL,
				start_date TIMESTAMPTZ,
				end_date TIMESTAMPTZ NOT NULL,
				created_by TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, schema),
	}

	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}
