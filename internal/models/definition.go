package models

// DimensionType identifies the value shape of a dimension
type DimensionType string

const (
	TypeCategorical  DimensionType = "categorical"
	TypeNumeric      DimensionType = "numeric"
	TypeScale        DimensionType = "scale"
	TypeHierarchical DimensionType = "hierarchical"
)

// Range bounds a numeric or scale dimension. Labels optionally maps
// scale values to human-readable names.
type Range struct {
	Min    float64           `json:"min" yaml:"min"`
	Max    float64           `json:"max" yaml:"max"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// ValidationRules holds per-dimension selection constraints.
type ValidationRules struct {
	MinSelections int `json:"min_selections,omitempty" yaml:"min_selections,omitempty"`
	MaxSelections int `json:"max_selections,omitempty" yaml:"max_selections,omitempty"`

	// Depth constraints for hierarchical values.
	MinDepth int `json:"min_depth,omitempty" yaml:"min_depth,omitempty"`
	MaxDepth int `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`

	// AllowDecimal permits fractional values on numeric dimensions.
	AllowDecimal bool `json:"allow_decimal,omitempty" yaml:"allow_decimal,omitempty"`
}

// DimensionDefinition is the static schema for one dimension. One instance
// exists per dimension, created at construction and immutable for the
// process lifetime.
type DimensionDefinition struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Type        DimensionType `json:"type" yaml:"type"`

	// Required marks dimensions every classification should carry.
	Required bool `json:"required" yaml:"required"`

	// Multiple marks dimensions that may carry more than one value.
	Multiple bool `json:"multiple" yaml:"multiple"`

	// Options enumerates allowed values for categorical dimensions.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`

	// Range bounds numeric and scale dimensions.
	Range *Range `json:"range,omitempty" yaml:"range,omitempty"`

	Rules ValidationRules `json:"validation_rules,omitempty" yaml:"validation_rules,omitempty"`
}
