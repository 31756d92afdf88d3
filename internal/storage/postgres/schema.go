package postgres

import (
	"database/sql"
	"fmt"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	username      text NOT NULL UNIQUE,
	password_hash text NOT NULL,
	created_at    timestamptz NOT NULL DEFAULT now(),
	updated_at    timestamptz NOT NULL DEFAULT now(),
	last_login_at timestamptz
);
`

// EnsureSchema creates the tables the service needs if they do not exist yet.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(usersSchema); err != nil {
		return fmt.Errorf("ensure users schema: %w", err)
	}
	return nil
}
