// Package store defines the TagStore interface for persisting
// classification results and their audit metadata.
package store

import (
	"context"
	"time"

	"github.com/raybunnage/prestag/internal/models"
)

// TagRecord is one persisted set of values for an (item, dimension) pair.
type TagRecord struct {
	ID        string                  `json:"id"`
	ItemID    string                  `json:"item_id"`
	Dimension string                  `json:"dimension"`
	Values    []models.DimensionValue `json:"values"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// TagStore persists dimension values per classified item. Saving the same
// (item, dimension) pair again replaces the previous values; the record
// keeps its original creation time.
type TagStore interface {
	// SaveTags inserts or replaces the values for one dimension of one item.
	SaveTags(ctx context.Context, itemID, dimension string, values []models.DimensionValue) error

	// GetTags returns every stored dimension's values for one item.
	// An unknown item yields an empty map, not an error.
	GetTags(ctx context.Context, itemID string) (map[string][]models.DimensionValue, error)

	// GetRecord returns the full audit record for one (item, dimension)
	// pair, or nil when absent.
	GetRecord(ctx context.Context, itemID, dimension string) (*TagRecord, error)

	// ListItems returns up to limit distinct item IDs, oldest first.
	// limit <= 0 means no limit.
	ListItems(ctx context.Context, limit int) ([]string, error)

	// DeleteTags removes the stored values for one dimension of one item.
	// Deleting absent tags is not an error.
	DeleteTags(ctx context.Context, itemID, dimension string) error

	Close() error
}
