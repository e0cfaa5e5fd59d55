package dimensions

import (
	"sort"
	"strings"

	"github.com/raybunnage/prestag/internal/models"
	"github.com/raybunnage/prestag/internal/textutil"
)

const (
	// modalityTermWeight multiplies a matched keyword's word count.
	modalityTermWeight = 1.0

	// maxModalitySuggestions caps the modalities suggested.
	maxModalitySuggestions = 2

	// modalityConfidenceScale and modalityConfidenceCap keep automated
	// suggestions capped. No fallback: content without delivery cues gets
	// no modality guess.
	modalityConfidenceScale = 0.8
	modalityConfidenceCap   = 0.8
)

// LearningModality classifies how the content is delivered to its
// audience: lecture, case walkthrough, hands-on, demonstration, or
// open discussion.
type LearningModality struct {
	def     models.DimensionDefinition
	catalog []category
	byID    map[string]category
}

// NewLearningModality builds the learning modality dimension.
func NewLearningModality() *LearningModality {
	catalog := []category{
		{
			id: "didactic", name: "Didactic Lecture",
			description: "Structured presentation of material",
			keywords: []string{"lecture", "presentation", "overview", "slides",
				"didactic", "talk", "presented"},
		},
		{
			id: "case-based", name: "Case-Based",
			description: "Learning anchored in patient cases",
			keywords: []string{"case study", "case report", "case presentation",
				"case discussion", "patient case", "clinical vignette"},
		},
		{
			id: "interactive", name: "Interactive/Hands-on",
			description: "Active participation and practice",
			keywords: []string{"hands-on", "interactive", "exercise", "practice session",
				"workshop", "breakout", "small group"},
		},
		{
			id: "demonstration", name: "Demonstration",
			description: "Live or recorded technique walkthrough",
			keywords: []string{"demonstration", "demo", "walkthrough", "live procedure",
				"step-by-step", "shown"},
		},
		{
			id: "discussion", name: "Discussion/Q&A",
			description: "Open dialogue and questions",
			keywords: []string{"discussion", "q&a", "question and answer", "panel",
				"roundtable", "debate", "audience questions"},
		},
	}

	d := &LearningModality{catalog: catalog, byID: indexCatalog(catalog)}
	d.def = models.DimensionDefinition{
		Name:        "learning_modality",
		Description: "How the content is delivered to its audience",
		Type:        models.TypeCategorical,
		Multiple:    true,
		Options:     catalogOptions(catalog),
		Rules: models.ValidationRules{
			MaxSelections: maxModalitySuggestions,
		},
	}
	return d
}

func (d *LearningModality) Definition() models.DimensionDefinition { return d.def }

// ValidateValue accepts a known modality ID or list of known IDs.
func (d *LearningModality) ValidateValue(value any) bool {
	return validateOptions(value, d.byID)
}

func (d *LearningModality) SuggestValues(text string, ctx models.Context) []models.DimensionValue {
	if tooShort(text) {
		return nil
	}
	textLower := strings.ToLower(text)

	type scored struct {
		cat     category
		score   float64
		matched []string
	}
	var hits []scored

	for _, cat := range d.catalog {
		score := 0.0
		var matched []string
		for _, kw := range cat.keywords {
			if textutil.Contains(textLower, kw) {
				score += float64(len(strings.Fields(kw))) * modalityTermWeight
				matched = append(matched, kw)
			}
		}
		if score > 0 {
			hits = append(hits, scored{cat, score, matched})
		}
	}

	if len(hits) == 0 {
		return nil
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].cat.id < hits[j].cat.id
	})
	if len(hits) > maxModalitySuggestions {
		hits = hits[:maxModalitySuggestions]
	}

	top := hits[0].score
	suggestions := make([]models.DimensionValue, 0, len(hits))
	for _, h := range hits {
		confidence := h.score / top * modalityConfidenceScale
		if confidence > modalityConfidenceCap {
			confidence = modalityConfidenceCap
		}
		suggestions = append(suggestions, models.DimensionValue{
			Value:      h.cat.id,
			Confidence: confidence,
			Source:     models.SourceNLP,
			Evidence: models.Evidence{
				Name:         h.cat.name,
				Score:        h.score,
				MatchedTerms: h.matched,
			},
		})
	}
	return suggestions
}

// DisplayValue renders modality IDs as their names.
func (d *LearningModality) DisplayValue(value any) string {
	return displayOptions(value, d.byID)
}

// Similarity is the Jaccard index over the modality sets.
func (d *LearningModality) Similarity(a, b any) float64 {
	return jaccardSimilarity(a, b)
}
