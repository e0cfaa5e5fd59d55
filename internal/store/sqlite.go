package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/raybunnage/prestag/internal/models"
)

// timeFormat is the stored timestamp layout. Nanoseconds are fixed-width
// so lexicographic order on the column matches chronological order.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteTagStore implements TagStore using SQLite for persistence.
type SQLiteTagStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteTagStore opens (or creates) the database at dbPath and
// initializes the schema.
func NewSQLiteTagStore(dbPath string) (*SQLiteTagStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteTagStore{db: db, dbPath: dbPath}, nil
}

// SaveTags inserts or replaces the values for one dimension of one item.
func (s *SQLiteTagStore) SaveTags(ctx context.Context, itemID, dimension string, values []models.DimensionValue) error {
	if itemID == "" {
		return fmt.Errorf("item ID is required")
	}
	if dimension == "" {
		return fmt.Errorf("dimension is required")
	}

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal values: %w", err)
	}

	now := time.Now().UTC().Format(timeFormat)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tags (id, item_id, dimension, values_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (item_id, dimension) DO UPDATE SET
			values_json = excluded.values_json,
			updated_at = excluded.updated_at`,
		uuid.NewString(), itemID, dimension, string(data), now, now)
	if err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}
	return nil
}

// GetTags returns every stored dimension's values for one item.
func (s *SQLiteTagStore) GetTags(ctx context.Context, itemID string) (map[string][]models.DimensionValue, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT dimension, values_json FROM tags WHERE item_id = ?`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]models.DimensionValue)
	for rows.Next() {
		var dimension, data string
		if err := rows.Scan(&dimension, &data); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		var values []models.DimensionValue
		if err := json.Unmarshal([]byte(data), &values); err != nil {
			return nil, fmt.Errorf("failed to unmarshal values for %s/%s: %w", itemID, dimension, err)
		}
		result[dimension] = values
	}
	return result, rows.Err()
}

// GetRecord returns the full record for one (item, dimension) pair, or nil.
func (s *SQLiteTagStore) GetRecord(ctx context.Context, itemID, dimension string) (*TagRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, values_json, created_at, updated_at
		FROM tags WHERE item_id = ? AND dimension = ?`, itemID, dimension)

	var rec TagRecord
	var data, created, updated string
	if err := row.Scan(&rec.ID, &data, &created, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read tag record: %w", err)
	}

	rec.ItemID = itemID
	rec.Dimension = dimension
	if err := json.Unmarshal([]byte(data), &rec.Values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal values: %w", err)
	}
	var err error
	if rec.CreatedAt, err = time.Parse(timeFormat, created); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(timeFormat, updated); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return &rec, nil
}

// ListItems returns up to limit distinct item IDs, oldest first.
func (s *SQLiteTagStore) ListItems(ctx context.Context, limit int) ([]string, error) {
	query := `SELECT item_id FROM tags GROUP BY item_id ORDER BY MIN(created_at), item_id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan item ID: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteTags removes the stored values for one dimension of one item.
func (s *SQLiteTagStore) DeleteTags(ctx context.Context, itemID, dimension string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM tags WHERE item_id = ? AND dimension = ?`, itemID, dimension); err != nil {
		return fmt.Errorf("failed to delete tags: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteTagStore) Close() error {
	return s.db.Close()
}
