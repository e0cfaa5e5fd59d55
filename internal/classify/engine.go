// Package classify orchestrates classification: it fans a text out to the
// registered dimensions, collects their suggestions, and persists results
// through a TagStore.
package classify

import (
	"io"
	"log/slog"
	"sync"

	"github.com/raybunnage/prestag/internal/dimensions"
	"github.com/raybunnage/prestag/internal/logging"
	"github.com/raybunnage/prestag/internal/models"
)

// Engine evaluates dimensions against input texts. It holds only frozen
// state (the registry and its indices) and is safe for concurrent use.
type Engine struct {
	registry  *dimensions.Registry
	log       *slog.Logger
	decisions *logging.DecisionLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithDecisionLogger sets the scoring-trace logger. Nil is valid.
func WithDecisionLogger(dl *logging.DecisionLogger) Option {
	return func(e *Engine) { e.decisions = dl }
}

// NewEngine creates an Engine over the given registry.
func NewEngine(registry *dimensions.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the engine's dimension registry.
func (e *Engine) Registry() *dimensions.Registry { return e.registry }

// Classify evaluates every registered dimension against the text and
// returns each dimension's suggestions, confidence-sorted within each
// list. Dimensions are evaluated concurrently; they share only frozen
// state, so no coordination is needed beyond collecting results.
func (e *Engine) Classify(text string, ctx models.Context) map[string][]models.DimensionValue {
	result, _ := e.classify(text, ctx, e.registry.All())
	return result
}

// ClassifyDimensions evaluates only the named dimensions. An unknown name
// fails loudly before any evaluation runs.
func (e *Engine) ClassifyDimensions(text string, ctx models.Context, names []string) (map[string][]models.DimensionValue, error) {
	dims := make([]dimensions.Dimension, 0, len(names))
	for _, name := range names {
		d, err := e.registry.Get(name)
		if err != nil {
			return nil, err
		}
		dims = append(dims, d)
	}
	return e.classify(text, ctx, dims)
}

func (e *Engine) classify(text string, ctx models.Context, dims []dimensions.Dimension) (map[string][]models.DimensionValue, error) {
	result := make(map[string][]models.DimensionValue, len(dims))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, d := range dims {
		wg.Add(1)
		go func(d dimensions.Dimension) {
			defer wg.Done()
			name := d.Definition().Name
			values := d.SuggestValues(text, ctx)

			mu.Lock()
			result[name] = values
			mu.Unlock()

			e.log.Debug("dimension evaluated",
				"dimension", name,
				"suggestions", len(values))
			e.traceSuggestions(name, values)
		}(d)
	}
	wg.Wait()

	return result, nil
}

// traceSuggestions records each dimension's score breakdown for audit.
func (e *Engine) traceSuggestions(dimension string, values []models.DimensionValue) {
	if e.decisions == nil {
		return
	}
	for _, v := range values {
		e.decisions.Log(map[string]any{
			"event":         "suggestion",
			"dimension":     dimension,
			"value":         v.Value,
			"confidence":    v.Confidence,
			"source":        v.Source,
			"score":         v.Evidence.Score,
			"matched_terms": v.Evidence.MatchedTerms,
		})
	}
}

// Validate reports whether value is valid for the named dimension.
func (e *Engine) Validate(name string, value any) (bool, error) {
	d, err := e.registry.Get(name)
	if err != nil {
		return false, err
	}
	return d.ValidateValue(value), nil
}

// Display renders a stored value for the named dimension.
func (e *Engine) Display(name string, value any) (string, error) {
	d, err := e.registry.Get(name)
	if err != nil {
		return "", err
	}
	return d.DisplayValue(value), nil
}

// Similarity returns the closeness of two values on the named dimension.
func (e *Engine) Similarity(name string, a, b any) (float64, error) {
	d, err := e.registry.Get(name)
	if err != nil {
		return 0, err
	}
	return d.Similarity(a, b), nil
}
