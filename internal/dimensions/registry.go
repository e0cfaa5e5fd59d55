package dimensions

import (
	"errors"
	"fmt"
)

// ErrUnknownDimension is returned when a registry lookup names a dimension
// that was never registered. This is a configuration error, not a data
// condition, and is never silently swallowed.
var ErrUnknownDimension = errors.New("unknown dimension")

// Registry is the process-wide, read-only table mapping dimension names to
// ready-to-use instances. Each dimension builds its internal indices
// exactly once, at registry construction; the registry is never mutated
// afterward and is safe for concurrent readers.
type Registry struct {
	byName map[string]Dimension
	order  []string
}

// NewRegistry constructs every dimension and registers it under its
// definition name.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Dimension)}
	for _, d := range []Dimension{
		NewTopics(),
		NewComplexity(),
		NewApplicationContext(),
		NewApproachType(),
		NewEvidenceLevel(),
		NewPatientPopulation(),
		NewTemporalRelevance(),
		NewLearningModality(),
	} {
		name := d.Definition().Name
		r.byName[name] = d
		r.order = append(r.order, name)
	}
	return r
}

// Get returns the dimension registered under name.
func (r *Registry) Get(name string) (Dimension, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, name)
	}
	return d, nil
}

// Names returns the registered dimension names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// All returns every registered dimension in registration order.
func (r *Registry) All() []Dimension {
	dims := make([]Dimension, 0, len(r.order))
	for _, name := range r.order {
		dims = append(dims, r.byName[name])
	}
	return dims
}
