package pg

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements in dependency order. Cascade constraints mirror the
// relational model; no code path deletes threads, so the comment/reply
// cascades are never the normal deletion route.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(50) PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS threads (
		id VARCHAR(50) PRIMARY KEY,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		owner VARCHAR(50) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date TIMESTAMP NOT NULL DEFAULT current_timestamp
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id VARCHAR(50) PRIMARY KEY,
		content TEXT NOT NULL,
		owner VARCHAR(50) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		thread_id VARCHAR(50) NOT NULL REFERENCES threads(id) ON DELETE CASCADE,
		date TIMESTAMP NOT NULL DEFAULT current_timestamp,
		is_delete BOOLEAN NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS comment_replies (
		id VARCHAR(50) PRIMARY KEY,
		content TEXT NOT NULL,
		owner VARCHAR(50) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		thread_id VARCHAR(50) NOT NULL REFERENCES threads(id) ON DELETE CASCADE,
		comment_id VARCHAR(50) NOT NULL REFERENCES comments(id) ON DELETE CASCADE,
		date TIMESTAMP NOT NULL DEFAULT current_timestamp,
		is_delete BOOLEAN NOT NULL DEFAULT false
	)`,
}

// ApplyMigrations creates the schema if it does not exist yet.
func ApplyMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply migration: %w", err)
		}
	}
	return nil
}
