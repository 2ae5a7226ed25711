package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Table DDL, one statement per table owned by a service.
const (
	AdminsTable = `CREATE TABLE IF NOT EXISTS admins (
		id            SERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL
	)`

	EventsTable = `CREATE TABLE IF NOT EXISTS events (
		id          SERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		date        DATE,
		location    TEXT NOT NULL,
		venue       TEXT NOT NULL,
		description TEXT NOT NULL
	)`

	// (user_id, event_id) is deliberately not unique: re-registration is allowed.
	BookingsTable = `CREATE TABLE IF NOT EXISTS bookings (
		id         SERIAL PRIMARY KEY,
		user_id    INTEGER NOT NULL,
		user_name  TEXT NOT NULL,
		event_id   INTEGER NOT NULL,
		event_name TEXT NOT NULL,
		date       DATE,
		location   TEXT NOT NULL DEFAULT '',
		venue      TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS bookings_user_id_idx ON bookings (user_id);
	CREATE INDEX IF NOT EXISTS bookings_event_id_idx ON bookings (event_id)`

	UsersTable = `CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		name          TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		phone         TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL
	)`
)

// EnsureSchema creates the given tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB, ddl ...string) error {
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
