// Package dimensions implements the classification dimensions: one scoring
// strategy per dimension, all satisfying a common contract, registered into
// an immutable lookup table at startup.
package dimensions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raybunnage/prestag/internal/models"
)

// MinTextLength is the minimum input length for suggestion. Shorter inputs
// yield no suggestions rather than an error; "nothing to suggest" is an
// expected outcome, not a fault.
const MinTextLength = 10

// Dimension is the contract every classification dimension satisfies.
// Implementations are pure: SuggestValues retains no state across calls
// beyond indices precomputed at construction, which never change.
type Dimension interface {
	// Definition returns the dimension's immutable schema.
	Definition() models.DimensionDefinition

	// ValidateValue reports whether value satisfies the definition's
	// type/options/range constraints. Total: never panics, and invalid or
	// wrong-typed input simply yields false.
	ValidateValue(value any) bool

	// SuggestValues analyzes text (plus the open context side channel) and
	// returns candidate values ranked by descending confidence. A fresh
	// call recomputes; results for identical inputs are identical.
	SuggestValues(text string, ctx models.Context) []models.DimensionValue

	// DisplayValue renders a stored value for humans. Unknown values fall
	// back to stringifying the raw value rather than failing.
	DisplayValue(value any) string

	// Similarity returns a closeness measure in [0,1] between two stored
	// values. The default notion is exact equality.
	Similarity(a, b any) float64
}

// tooShort reports whether text is below the suggestion threshold.
func tooShort(text string) bool {
	return len(strings.TrimSpace(text)) < MinTextLength
}

// exactSimilarity is the default similarity: 1.0 on equal values, else 0.0.
// Handles the string, []string, and numeric shapes dimensions produce.
func exactSimilarity(a, b any) float64 {
	if na, ok := toFloat(a); ok {
		if nb, ok := toFloat(b); ok && na == nb {
			return 1.0
		}
		return 0.0
	}
	sa, okA := asStringSlice(a)
	sb, okB := asStringSlice(b)
	if okA && okB && len(sa) == len(sb) {
		for i := range sa {
			if sa[i] != sb[i] {
				return 0.0
			}
		}
		return 1.0
	}
	return 0.0
}

// toFloat coerces numeric values (and numeric strings, which appear in
// stored data) to float64.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// asStringSlice coerces a stored value to a string slice: a bare string
// becomes a one-element slice, and []any is accepted when every element
// is a string (the shape JSON decoding produces).
func asStringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case string:
		return []string{v}, true
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// displayFallback stringifies an unrecognized stored value.
func displayFallback(value any) string {
	return fmt.Sprintf("%v", value)
}
