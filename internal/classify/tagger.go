package classify

import (
	"context"
	"fmt"
	"sync"

	"github.com/raybunnage/prestag/internal/models"
	"github.com/raybunnage/prestag/internal/store"
)

// Item is one unit of batch input: an identifier plus the text to
// classify and its optional context.
type Item struct {
	ID      string
	Text    string
	Context models.Context
}

// Result pairs an item with its classification outcome. Err is set when
// persisting failed; classification itself cannot fail, only come back
// empty.
type Result struct {
	ItemID string
	Tags   map[string][]models.DimensionValue
	Err    error
}

// Tagger binds an Engine to a TagStore: it classifies items and persists
// the suggestions.
type Tagger struct {
	engine *Engine
	store  store.TagStore
}

// NewTagger creates a Tagger.
func NewTagger(engine *Engine, st store.TagStore) *Tagger {
	return &Tagger{engine: engine, store: st}
}

// TagItem classifies one item and persists every dimension's suggestions.
// Dimensions with no suggestions are not stored.
func (t *Tagger) TagItem(ctx context.Context, itemID, text string, mctx models.Context) (map[string][]models.DimensionValue, error) {
	if itemID == "" {
		return nil, fmt.Errorf("item ID is required")
	}

	tags := t.engine.Classify(text, mctx)
	for dimension, values := range tags {
		if len(values) == 0 {
			continue
		}
		if err := t.store.SaveTags(ctx, itemID, dimension, values); err != nil {
			return nil, fmt.Errorf("failed to save %s tags for %s: %w", dimension, itemID, err)
		}
	}
	return tags, nil
}

// TagBatch classifies independent items on a bounded worker pool. Item
// order is not preserved in processing, but results are returned in input
// order. A failed item records its error and never aborts the batch.
func (t *Tagger) TagBatch(ctx context.Context, items []Item, workers int) []Result {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(items))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				item := items[i]
				tags, err := t.TagItem(ctx, item.ID, item.Text, item.Context)
				results[i] = Result{ItemID: item.ID, Tags: tags, Err: err}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// StoredTags returns the persisted tags for one item.
func (t *Tagger) StoredTags(ctx context.Context, itemID string) (map[string][]models.DimensionValue, error) {
	return t.store.GetTags(ctx, itemID)
}
