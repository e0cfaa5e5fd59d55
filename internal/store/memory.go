package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raybunnage/prestag/internal/models"
)

// InMemoryTagStore implements TagStore for testing and development.
type InMemoryTagStore struct {
	mu      sync.RWMutex
	records map[string]map[string]*TagRecord // itemID → dimension → record
}

// NewInMemoryTagStore creates a new in-memory store.
func NewInMemoryTagStore() *InMemoryTagStore {
	return &InMemoryTagStore{
		records: make(map[string]map[string]*TagRecord),
	}
}

// SaveTags inserts or replaces the values for one dimension of one item.
func (s *InMemoryTagStore) SaveTags(ctx context.Context, itemID, dimension string, values []models.DimensionValue) error {
	if itemID == "" {
		return fmt.Errorf("item ID is required")
	}
	if dimension == "" {
		return fmt.Errorf("dimension is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dims, ok := s.records[itemID]
	if !ok {
		dims = make(map[string]*TagRecord)
		s.records[itemID] = dims
	}

	now := time.Now().UTC()
	if existing, ok := dims[dimension]; ok {
		existing.Values = cloneValues(values)
		existing.UpdatedAt = now
		return nil
	}

	dims[dimension] = &TagRecord{
		ID:        uuid.NewString(),
		ItemID:    itemID,
		Dimension: dimension,
		Values:    cloneValues(values),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

// GetTags returns every stored dimension's values for one item.
func (s *InMemoryTagStore) GetTags(ctx context.Context, itemID string) (map[string][]models.DimensionValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]models.DimensionValue)
	for dimension, rec := range s.records[itemID] {
		result[dimension] = cloneValues(rec.Values)
	}
	return result, nil
}

// GetRecord returns the full record for one (item, dimension) pair, or nil.
func (s *InMemoryTagStore) GetRecord(ctx context.Context, itemID, dimension string) (*TagRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[itemID][dimension]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.Values = cloneValues(rec.Values)
	return &cp, nil
}

// ListItems returns up to limit distinct item IDs, oldest first.
func (s *InMemoryTagStore) ListItems(ctx context.Context, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type entry struct {
		id      string
		created time.Time
	}
	entries := make([]entry, 0, len(s.records))
	for id, dims := range s.records {
		oldest := time.Time{}
		for _, rec := range dims {
			if oldest.IsZero() || rec.CreatedAt.Before(oldest) {
				oldest = rec.CreatedAt
			}
		}
		entries = append(entries, entry{id, oldest})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].created.Equal(entries[j].created) {
			return entries[i].created.Before(entries[j].created)
		}
		return entries[i].id < entries[j].id
	})

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if limit > 0 && len(ids) >= limit {
			break
		}
		ids = append(ids, e.id)
	}
	return ids, nil
}

// DeleteTags removes the stored values for one dimension of one item.
func (s *InMemoryTagStore) DeleteTags(ctx context.Context, itemID, dimension string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dims, ok := s.records[itemID]; ok {
		delete(dims, dimension)
		if len(dims) == 0 {
			delete(s.records, itemID)
		}
	}
	return nil
}

// Close is a no-op for the in-memory store.
func (s *InMemoryTagStore) Close() error { return nil }

func cloneValues(values []models.DimensionValue) []models.DimensionValue {
	out := make([]models.DimensionValue, len(values))
	copy(out, values)
	return out
}
