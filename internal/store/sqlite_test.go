package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/raybunnage/prestag/internal/models"
)

func newTestSQLiteStore(t *testing.T) TagStore {
	t.Helper()
	s, err := NewSQLiteTagStore(filepath.Join(t.TempDir(), "tags.db"))
	if err != nil {
		t.Fatalf("NewSQLiteTagStore() error: %v", err)
	}
	return s
}

func TestSQLiteTagStore(t *testing.T) {
	runTagStoreTests(t, newTestSQLiteStore)
}

func TestSQLiteTagStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "tags.db")

	s, err := NewSQLiteTagStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteTagStore() error: %v", err)
	}
	if err := s.SaveTags(ctx, "item-1", "topics", sampleValues()); err != nil {
		t.Fatalf("SaveTags() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	reopened, err := NewSQLiteTagStore(dbPath)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetTags(ctx, "item-1")
	if err != nil {
		t.Fatalf("GetTags() after reopen error: %v", err)
	}
	values, ok := got["topics"]
	if !ok || len(values) != 2 {
		t.Fatalf("GetTags() after reopen = %v", got)
	}
	if values[0].Value != "asd" || values[0].Source != models.SourceNLP {
		t.Errorf("values[0] = %+v", values[0])
	}
	if len(values[0].Evidence.MatchedTerms) != 1 {
		t.Errorf("evidence lost across reopen: %+v", values[0].Evidence)
	}
}

func TestSQLiteTagStore_CreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "tags.db")

	s, err := NewSQLiteTagStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteTagStore() error: %v", err)
	}
	defer s.Close()

	if err := s.SaveTags(context.Background(), "item-1", "topics", sampleValues()); err != nil {
		t.Errorf("SaveTags() error: %v", err)
	}
}

func TestSQLiteTagStore_NumericValuesRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)
	defer s.Close()

	values := []models.DimensionValue{{Value: 7.5, Confidence: 0.7, Source: models.SourceNLP}}
	if err := s.SaveTags(ctx, "item-1", "complexity", values); err != nil {
		t.Fatalf("SaveTags() error: %v", err)
	}

	got, err := s.GetTags(ctx, "item-1")
	if err != nil {
		t.Fatalf("GetTags() error: %v", err)
	}
	// JSON decoding yields float64 for numbers.
	v, ok := got["complexity"][0].Value.(float64)
	if !ok || v != 7.5 {
		t.Errorf("value = %v (%T), want 7.5 (float64)", got["complexity"][0].Value, got["complexity"][0].Value)
	}
}
