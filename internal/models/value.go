// Package models defines the shared value types every dimension and
// consumer of the classification engine speaks.
package models

// Source indicates how a dimension value was produced
type Source string

const (
	SourceManual Source = "manual" // Human assigned it directly
	SourceNLP    Source = "nlp"    // Derived from text analysis
	SourceRule   Source = "rule"   // Derived from a fixed fallback rule
	SourceML     Source = "ml"     // Produced by an external model
)

// DimensionValue is one candidate tag for a dimension. The Value payload is
// dimension-specific: a string ID for categorical/hierarchical dimensions,
// a []string for multi-valued ones, or a float64 for numeric/scale ones.
// Values are never mutated after creation.
type DimensionValue struct {
	Value      any      `json:"value" yaml:"value"`
	Confidence float64  `json:"confidence" yaml:"confidence"` // 0.0 - 1.0
	Source     Source   `json:"source" yaml:"source"`
	Evidence   Evidence `json:"evidence,omitempty" yaml:"evidence,omitempty"`
}

// Evidence records how a suggestion was derived, for auditability.
// Only the fields relevant to the producing strategy are set.
type Evidence struct {
	// Name is the human-readable label of the suggested category or node.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Path is the taxonomy path from root for hierarchical suggestions.
	Path []string `json:"path,omitempty" yaml:"path,omitempty"`

	// MatchedTerms lists the literal keywords and phrases found in the text.
	MatchedTerms []string `json:"matched_terms,omitempty" yaml:"matched_terms,omitempty"`

	// Score is the raw accumulated score before confidence normalization.
	Score float64 `json:"score,omitempty" yaml:"score,omitempty"`

	// Level is the discrete bucket a numeric suggestion was drawn from.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// TechnicalScore is the 0-1 technical density signal (complexity).
	TechnicalScore float64 `json:"technical_score,omitempty" yaml:"technical_score,omitempty"`

	// PrerequisiteScore is the additive prerequisite-language bonus (complexity).
	PrerequisiteScore float64 `json:"prerequisite_score,omitempty" yaml:"prerequisite_score,omitempty"`

	// UncertaintyCount is the number of hedging terms found (evidence level).
	UncertaintyCount int `json:"uncertainty_count,omitempty" yaml:"uncertainty_count,omitempty"`

	// PracticalCount and TheoreticalCount are indicator tallies (approach type).
	PracticalCount   int `json:"practical_count,omitempty" yaml:"practical_count,omitempty"`
	TheoreticalCount int `json:"theoretical_count,omitempty" yaml:"theoretical_count,omitempty"`

	// YearsFound lists calendar years mentioned in the text (temporal relevance).
	YearsFound []string `json:"years_found,omitempty" yaml:"years_found,omitempty"`

	// SpecialPopulations lists special-population mentions (patient population).
	SpecialPopulations []string `json:"special_populations,omitempty" yaml:"special_populations,omitempty"`

	// Reason explains a rule-sourced fallback suggestion.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Context is the open side channel handed to suggestion algorithms alongside
// the text, e.g. {"presenter_title": "MD, PhD"}. A nil Context is valid.
type Context map[string]string

// Get returns the value for key, or "" when absent. Safe on nil Context.
func (c Context) Get(key string) string {
	if c == nil {
		return ""
	}
	return c[key]
}
