package classify

import (
	"context"
	"fmt"
	"testing"

	"github.com/raybunnage/prestag/internal/dimensions"
	"github.com/raybunnage/prestag/internal/models"
	"github.com/raybunnage/prestag/internal/store"
)

func newTestTagger() (*Tagger, store.TagStore) {
	st := store.NewInMemoryTagStore()
	return NewTagger(NewEngine(dimensions.NewRegistry()), st), st
}

func TestTagger_TagItem(t *testing.T) {
	tagger, _ := newTestTagger()
	ctx := context.Background()

	text := "Clinical treatment protocols for autism in pediatric patients, " +
		"with preliminary research findings from recent studies."
	tags, err := tagger.TagItem(ctx, "pres-001", text, nil)
	if err != nil {
		t.Fatalf("TagItem() error: %v", err)
	}
	if len(tags) == 0 {
		t.Fatal("TagItem() returned no tags")
	}

	stored, err := tagger.StoredTags(ctx, "pres-001")
	if err != nil {
		t.Fatalf("StoredTags() error: %v", err)
	}
	for dimension, values := range tags {
		if len(values) == 0 {
			if _, ok := stored[dimension]; ok {
				t.Errorf("empty dimension %q was persisted", dimension)
			}
			continue
		}
		got, ok := stored[dimension]
		if !ok {
			t.Errorf("dimension %q not persisted", dimension)
			continue
		}
		if len(got) != len(values) {
			t.Errorf("dimension %q stored %d values, want %d", dimension, len(got), len(values))
		}
	}
}

func TestTagger_TagItem_RequiresID(t *testing.T) {
	tagger, _ := newTestTagger()

	if _, err := tagger.TagItem(context.Background(), "", "some long enough text", nil); err == nil {
		t.Error("TagItem() with empty ID error = nil, want error")
	}
}

func TestTagger_TagBatch(t *testing.T) {
	tagger, _ := newTestTagger()
	ctx := context.Background()

	items := []Item{
		{ID: "a", Text: "Clinical treatment protocols for autism in children."},
		{ID: "b", Text: "Preliminary pilot findings on mitochondrial metabolism."},
		{ID: "c", Text: "A hands-on workshop with step-by-step procedures."},
	}

	results := tagger.TagBatch(ctx, items, 2)
	if len(results) != len(items) {
		t.Fatalf("got %d results, want %d", len(results), len(items))
	}
	for i, r := range results {
		if r.ItemID != items[i].ID {
			t.Errorf("result %d is for %q, want %q (input order)", i, r.ItemID, items[i].ID)
		}
		if r.Err != nil {
			t.Errorf("item %q failed: %v", r.ItemID, r.Err)
		}
		if len(r.Tags) == 0 {
			t.Errorf("item %q has no tags", r.ItemID)
		}
	}

	// Every item landed in the store.
	ids, err := tagger.store.ListItems(ctx, 0)
	if err != nil {
		t.Fatalf("ListItems() error: %v", err)
	}
	if len(ids) != len(items) {
		t.Errorf("store holds %d items, want %d", len(ids), len(items))
	}
}

func TestTagger_TagBatch_WorkerFloor(t *testing.T) {
	tagger, _ := newTestTagger()

	items := []Item{{ID: "a", Text: "Clinical treatment protocols for autism."}}
	results := tagger.TagBatch(context.Background(), items, 0)
	if len(results) != 1 || results[0].Err != nil {
		t.Errorf("TagBatch() with zero workers = %v, want one clean result", results)
	}
}

// failingStore rejects every save, for exercising per-item error capture.
type failingStore struct {
	store.TagStore
}

func (f *failingStore) SaveTags(ctx context.Context, itemID, dimension string, values []models.DimensionValue) error {
	return fmt.Errorf("disk full")
}

func TestTagger_TagBatch_ErrorsDoNotAbort(t *testing.T) {
	st := &failingStore{TagStore: store.NewInMemoryTagStore()}
	tagger := NewTagger(NewEngine(dimensions.NewRegistry()), st)

	items := []Item{
		{ID: "a", Text: "Clinical treatment protocols for autism in children."},
		{ID: "", Text: "Missing identifier for this one entirely."},
		{ID: "c", Text: "Preliminary pilot findings on mitochondrial metabolism."},
	}

	results := tagger.TagBatch(context.Background(), items, 2)
	if len(results) != len(items) {
		t.Fatalf("got %d results, want %d", len(results), len(items))
	}
	for i, r := range results {
		if r.Err == nil {
			t.Errorf("result %d error = nil, want error", i)
		}
	}
}

func TestTagger_StoredTags_UnknownItem(t *testing.T) {
	tagger, _ := newTestTagger()

	tags, err := tagger.StoredTags(context.Background(), "never-tagged")
	if err != nil {
		t.Fatalf("StoredTags() error: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("StoredTags(unknown) = %v, want empty", tags)
	}
}
