package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

// schemaV1 is the initial schema for the SQLite store. Values are stored
// as a denormalized JSON column for single-query retrieval; the engine's
// in-memory types are the source of truth for their shape.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS tags (
    id TEXT PRIMARY KEY,
    item_id TEXT NOT NULL,
    dimension TEXT NOT NULL,
    values_json TEXT NOT NULL,

    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,

    UNIQUE (item_id, dimension)
);
CREATE INDEX IF NOT EXISTS idx_tags_item ON tags(item_id);

CREATE TABLE IF NOT EXISTS schema_meta (
    version INTEGER NOT NULL
);
`

// InitSchema creates the schema if it does not exist and records the
// schema version.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_meta`).Scan(&count); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if count == 0 {
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_meta (version) VALUES (?)`, SchemaVersion); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	}
	return nil
}
