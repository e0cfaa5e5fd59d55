package dimensions

import (
	"sort"
	"strings"

	"github.com/raybunnage/prestag/internal/models"
	"github.com/raybunnage/prestag/internal/textutil"
)

const (
	// contextTermWeight multiplies a matched keyword's word count, so
	// multi-word phrases dominate single-word coincidental matches.
	contextTermWeight = 1.5

	// contextReweight boosts a category when its strongest cue words appear.
	contextReweight = 1.5

	// maxContextSuggestions caps the number of contexts suggested.
	maxContextSuggestions = 3

	// contextConfidenceScale and contextConfidenceCap keep automated
	// suggestions below full certainty.
	contextConfidenceScale = 0.8
	contextConfidenceCap   = 0.9

	// credentialConfidence applies to the presenter-credential fallback.
	credentialConfidence = 0.5
)

// category is one entry in a categorical dimension's fixed catalog.
type category struct {
	id          string
	name        string
	description string
	keywords    []string
}

// ApplicationContext classifies where and how the knowledge is applied.
type ApplicationContext struct {
	def     models.DimensionDefinition
	catalog []category
	byID    map[string]category
}

// NewApplicationContext builds the application context dimension.
func NewApplicationContext() *ApplicationContext {
	catalog := []category{
		{
			id: "clinical-practice", name: "Clinical Practice",
			description: "Direct patient care and treatment",
			keywords: []string{"patient", "treatment", "clinical", "therapy", "diagnosis",
				"management", "care", "practice", "intervention", "protocol"},
		},
		{
			id: "research", name: "Research",
			description: "Scientific investigation and discovery",
			keywords: []string{"research", "study", "investigation", "experiment", "analysis",
				"methodology", "data", "findings", "hypothesis", "evidence"},
		},
		{
			id: "education", name: "Education",
			description: "Teaching and training",
			keywords: []string{"education", "teaching", "training", "learning", "curriculum",
				"student", "course", "tutorial", "workshop", "seminar"},
		},
		{
			id: "laboratory", name: "Laboratory",
			description: "Lab techniques and procedures",
			keywords: []string{"laboratory", "lab", "assay", "technique", "procedure",
				"sample", "test", "measurement", "analysis", "protocol"},
		},
		{
			id: "public-health", name: "Public Health",
			description: "Population health and policy",
			keywords: []string{"public health", "population", "epidemiology", "prevention",
				"screening", "policy", "community", "outbreak", "surveillance"},
		},
		{
			id: "industry", name: "Industry/Commercial",
			description: "Commercial applications and development",
			keywords: []string{"industry", "commercial", "product", "development", "manufacturing",
				"regulatory", "FDA", "approval", "market", "business"},
		},
	}

	d := &ApplicationContext{catalog: catalog, byID: indexCatalog(catalog)}
	d.def = models.DimensionDefinition{
		Name:        "application_context",
		Description: "Where and how the knowledge is applied",
		Type:        models.TypeCategorical,
		Required:    true,
		Multiple:    true,
		Options:     catalogOptions(catalog),
		Rules: models.ValidationRules{
			MinSelections: 1,
			MaxSelections: maxContextSuggestions,
		},
	}
	return d
}

func (d *ApplicationContext) Definition() models.DimensionDefinition { return d.def }

// ValidateValue accepts a known context ID or a list of known context IDs.
func (d *ApplicationContext) ValidateValue(value any) bool {
	return validateOptions(value, d.byID)
}

func (d *ApplicationContext) SuggestValues(text string, ctx models.Context) []models.DimensionValue {
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
				score += float64(len(strings.Fields(kw))) * contextTermWeight
				matched = append(matched, kw)
			}
		}
		if score > 0 {
			hits = append(hits, scored{cat, score, matched})
		}
	}

	// Strong cue words reinforce their home category.
	for i := range hits {
		switch hits[i].cat.id {
		case "clinical-practice":
			if textutil.Contains(textLower, "patient") || textutil.Contains(textLower, "treatment") {
				hits[i].score *= contextReweight
			}
		case "research":
			if textutil.Contains(textLower, "study") || textutil.Contains(textLower, "research") {
				hits[i].score *= contextReweight
			}
		}
	}

	if len(hits) == 0 {
		return d.credentialFallback(ctx)
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].cat.id < hits[j].cat.id
	})
	if len(hits) > maxContextSuggestions {
		hits = hits[:maxContextSuggestions]
	}

	top := hits[0].score
	suggestions := make([]models.DimensionValue, 0, len(hits))
	for _, h := range hits {
		confidence := h.score / top * contextConfidenceScale
		if confidence > contextConfidenceCap {
			confidence = contextConfidenceCap
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

// credentialFallback derives a low-confidence rule suggestion from the
// presenter's credentials when no keyword evidence exists.
func (d *ApplicationContext) credentialFallback(ctx models.Context) []models.DimensionValue {
	title := strings.ToLower(ctx.Get("presenter_title"))
	if title == "" {
		return nil
	}

	var id string
	switch {
	case strings.Contains(title, "md") || strings.Contains(title, "physician"):
		id = "clinical-practice"
	case strings.Contains(title, "phd") || strings.Contains(title, "researcher"):
		id = "research"
	default:
		return nil
	}

	return []models.DimensionValue{{
		Value:      id,
		Confidence: credentialConfidence,
		Source:     models.SourceRule,
		Evidence: models.Evidence{
			Name:   d.byID[id].name,
			Reason: "presenter_credentials",
		},
	}}
}

// DisplayValue renders context IDs as their human names.
func (d *ApplicationContext) DisplayValue(value any) string {
	return displayOptions(value, d.byID)
}

// Similarity is the Jaccard index over the two value sets: multi-valued
// contexts overlap partially.
func (d *ApplicationContext) Similarity(a, b any) float64 {
	return jaccardSimilarity(a, b)
}

// indexCatalog maps category IDs to their entries.
func indexCatalog(catalog []category) map[string]category {
	byID := make(map[string]category, len(catalog))
	for _, cat := range catalog {
		byID[cat.id] = cat
	}
	return byID
}

// catalogOptions lists the catalog's IDs in declaration order.
func catalogOptions(catalog []category) []string {
	options := make([]string, len(catalog))
	for i, cat := range catalog {
		options[i] = cat.id
	}
	return options
}

// validateOptions accepts a known ID or a list of known IDs.
func validateOptions(value any, byID map[string]category) bool {
	ids, ok := asStringSlice(value)
	if !ok || len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if _, known := byID[id]; !known {
			return false
		}
	}
	return true
}

// displayOptions renders IDs as their names, joined for lists; unknown
// IDs fall back to the raw value.
func displayOptions(value any, byID map[string]category) string {
	ids, ok := asStringSlice(value)
	if !ok {
		return displayFallback(value)
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		if cat, known := byID[id]; known {
			names[i] = cat.name
		} else {
			names[i] = id
		}
	}
	return strings.Join(names, ", ")
}

// jaccardSimilarity treats both values as sets of IDs and returns
// intersection over union.
func jaccardSimilarity(a, b any) float64 {
	sa, okA := asStringSlice(a)
	sb, okB := asStringSlice(b)
	if !okA || !okB {
		return 0.0
	}
	setA := make(map[string]bool, len(sa))
	for _, id := range sa {
		setA[id] = true
	}
	setB := make(map[string]bool, len(sb))
	for _, id := range sb {
		setB[id] = true
	}
	intersection := 0
	for id := range setA {
		if setB[id] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
