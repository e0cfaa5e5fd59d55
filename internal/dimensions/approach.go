package dimensions

import (
	"fmt"
	"strings"

	"github.com/raybunnage/prestag/internal/models"
	"github.com/raybunnage/prestag/internal/textutil"
)

const (
	// approachReweight boosts the bands on the side whose procedure/
	// framework indicators dominate.
	approachReweight = 1.5

	// approachConfidence applies when a band matched; balancedConfidence
	// applies to the middle-of-scale default. Every presentation has some
	// theory/practice position even absent explicit cues, so the default
	// is reported rather than omitted.
	approachConfidence = 0.7
	balancedValue      = 3.0
	balancedConfidence = 0.4
)

// approachBand is one of the five ordered theory-to-practice bands.
type approachBand struct {
	value    float64
	id       string
	name     string
	keywords []string
}

// practicalIndicators and theoreticalIndicators are the fixed cue phrase
// lists that tilt the band scores toward one side of the spectrum.
var practicalIndicators = []string{
	"step 1", "step 2", "first,", "second,", "finally,",
	"protocol", "procedure", "checklist", "workflow",
}

var theoreticalIndicators = []string{
	"hypothesis", "theory suggests", "conceptually", "in principle",
	"theoretical framework", "model predicts",
}

// ApproachType places content on the 1-5 theory-to-practice scale.
type ApproachType struct {
	def   models.DimensionDefinition
	bands []approachBand
}

// NewApproachType builds the approach type dimension and its bands.
func NewApproachType() *ApproachType {
	bands := []approachBand{
		{
			value: 1, id: "theoretical", name: "Highly Theoretical",
			keywords: []string{"theory", "concept", "hypothesis", "mechanism", "principle",
				"model", "framework", "fundamental", "abstract", "philosophical"},
		},
		{
			value: 2, id: "theory-leaning", name: "Theory-Leaning",
			keywords: []string{"understanding", "explanation", "background", "foundation",
				"rationale", "evidence", "research-based"},
		},
		{
			value: 3, id: "balanced", name: "Balanced",
			keywords: []string{"application", "implementation", "practical considerations",
				"case examples", "both theory and practice"},
		},
		{
			value: 4, id: "practice-leaning", name: "Practice-Leaning",
			keywords: []string{"clinical", "hands-on", "practical tips", "how-to",
				"guidelines", "protocols", "procedures"},
		},
		{
			value: 5, id: "practical", name: "Highly Practical",
			keywords: []string{"step-by-step", "tutorial", "demonstration", "workshop",
				"skills", "techniques", "tools", "immediate application"},
		},
	}

	labels := make(map[string]string, len(bands))
	for _, band := range bands {
		labels[band.id] = band.name
	}

	return &ApproachType{
		def: models.DimensionDefinition{
			Name:        "approach_type",
			Description: "Balance between theoretical and practical focus",
			Type:        models.TypeScale,
			Required:    true,
			Range:       &models.Range{Min: 1, Max: 5, Labels: labels},
		},
		bands: bands,
	}
}

func (d *ApproachType) Definition() models.DimensionDefinition { return d.def }

// ValidateValue accepts an integral value within [1,5].
func (d *ApproachType) ValidateValue(value any) bool {
	v, ok := toFloat(value)
	return ok && v == float64(int(v)) && v >= d.def.Range.Min && v <= d.def.Range.Max
}

func (d *ApproachType) SuggestValues(text string, ctx models.Context) []models.DimensionValue {
	if tooShort(text) {
		return nil
	}
	textLower := strings.ToLower(text)

	scores := make([]float64, len(d.bands))
	matched := make([][]string, len(d.bands))
	for i, band := range d.bands {
		for _, kw := range band.keywords {
			if textutil.Contains(textLower, kw) {
				scores[i] += float64(len(strings.Fields(kw)))
				matched[i] = append(matched[i], kw)
			}
		}
	}

	practical := textutil.CountTerms(textLower, practicalIndicators)
	theoretical := textutil.CountTerms(textLower, theoreticalIndicators)

	// Multiply the dominant side's bands.
	if practical > theoretical {
		for i, band := range d.bands {
			if band.id == "practice-leaning" || band.id == "practical" {
				scores[i] *= approachReweight
			}
		}
	} else if theoretical > practical {
		for i, band := range d.bands {
			if band.id == "theoretical" || band.id == "theory-leaning" {
				scores[i] *= approachReweight
			}
		}
	}

	best := -1
	bestScore := 0.0
	for i, score := range scores {
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return []models.DimensionValue{{
			Value:      balancedValue,
			Confidence: balancedConfidence,
			Source:     models.SourceNLP,
			Evidence: models.Evidence{
				Level:  "balanced",
				Name:   "Balanced",
				Reason: "no_clear_indicators",
			},
		}}
	}

	band := d.bands[best]
	return []models.DimensionValue{{
		Value:      band.value,
		Confidence: approachConfidence,
		Source:     models.SourceNLP,
		Evidence: models.Evidence{
			Level:            band.id,
			Name:             band.name,
			Score:            bestScore,
			MatchedTerms:     matched[best],
			PracticalCount:   practical,
			TheoreticalCount: theoretical,
		},
	}}
}

// DisplayValue renders a scale value as its band name.
func (d *ApproachType) DisplayValue(value any) string {
	v, ok := toFloat(value)
	if !ok {
		return displayFallback(value)
	}
	for _, band := range d.bands {
		if band.value == v {
			return band.name
		}
	}
	return fmt.Sprintf("Level %v", value)
}

func (d *ApproachType) Similarity(a, b any) float64 { return exactSimilarity(a, b) }
