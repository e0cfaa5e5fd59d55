package dimensions

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/raybunnage/prestag/internal/models"
	"github.com/raybunnage/prestag/internal/textutil"
)

const (
	// temporalKeywordWeight and yearIndicatorWeight score category cues;
	// year-pattern hits are stronger evidence than loose keywords.
	temporalKeywordWeight = 2.0
	yearIndicatorWeight   = 3.0

	// yearMentionWeight is added when the average of explicitly mentioned
	// calendar years lands clearly in a category's era.
	yearMentionWeight = 2.0

	// tenseNudge is the small adjustment for perfect/future verb phrases.
	tenseNudge = 1.0

	// temporalScoreScale and temporalConfidenceCap map the winning score
	// to a capped confidence.
	temporalScoreScale    = 8.0
	temporalConfidenceCap = 0.85

	// defaultTemporalConfidence applies to the "current" fallback when no
	// temporal cue exists at all.
	defaultTemporalConfidence = 0.5

	historicalYearCutoff = 2000
	recentYearWindow     = 2
)

// temporalCategory is one currency category with keyword and
// year-indicator cues.
type temporalCategory struct {
	id          string
	name        string
	description string
	keywords    []string
	yearRes     []*regexp.Regexp
}

var yearMentionRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// TemporalRelevance classifies the currency of information. CurrentYear
// anchors the mentioned-year heuristic; it is fixed at construction so a
// classification pass is a pure function of its inputs.
type TemporalRelevance struct {
	def         models.DimensionDefinition
	categories  []temporalCategory
	byID        map[string]temporalCategory
	currentYear int
}

// NewTemporalRelevance builds the temporal relevance dimension anchored
// at the given year.
func NewTemporalRelevanceAt(currentYear int) *TemporalRelevance {
	categories := []temporalCategory{
		{
			id: "historical", name: "Historical Context",
			description: "Background and evolution of concepts",
			keywords: []string{"history", "historical", "evolution", "originally", "traditionally",
				"classical", "foundation", "pioneered", "discovered"},
			yearRes: compilePatterns(`19\d{2}`, `early`, `first described`),
		},
		{
			id: "current", name: "Current Standard",
			description: "Established current practices and knowledge",
			keywords: []string{"current", "standard", "established", "conventional", "accepted",
				"routine", "typical", "common practice", "guidelines"},
			yearRes: compilePatterns(`202[0-3]`, `recent years`, `currently`),
		},
		{
			id: "emerging", name: "Emerging/Cutting-edge",
			description: "Latest developments and future directions",
			keywords: []string{"emerging", "cutting-edge", "latest", "novel", "new", "recent",
				"breakthrough", "innovative", "state-of-the-art", "frontier"},
			yearRes: compilePatterns(`202[4-5]`, `just published`, `recently discovered`),
		},
		{
			id: "future", name: "Future Directions",
			description: "Predictions and upcoming developments",
			keywords: []string{"future", "upcoming", "next generation", "potential", "promising",
				"pipeline", "horizon", "prospects", "will be", "may lead to"},
			yearRes: compilePatterns(`202[6-9]`, `next decade`, `coming years`),
		},
	}

	byID := make(map[string]temporalCategory, len(categories))
	options := make([]string, len(categories))
	for i, cat := range categories {
		byID[cat.id] = cat
		options[i] = cat.id
	}

	return &TemporalRelevance{
		def: models.DimensionDefinition{
			Name:        "temporal_relevance",
			Description: "Currency and temporal context of information",
			Type:        models.TypeCategorical,
			Required:    true,
			Options:     options,
		},
		categories:  categories,
		byID:        byID,
		currentYear: currentYear,
	}
}

// NewTemporalRelevance builds the dimension anchored at the year the
// registry was constructed.
func NewTemporalRelevance() *TemporalRelevance {
	return NewTemporalRelevanceAt(currentYear())
}

func (d *TemporalRelevance) Definition() models.DimensionDefinition { return d.def }

// ValidateValue accepts a known temporal category ID.
func (d *TemporalRelevance) ValidateValue(value any) bool {
	id, ok := value.(string)
	if !ok {
		return false
	}
	_, known := d.byID[id]
	return known
}

func (d *TemporalRelevance) SuggestValues(text string, ctx models.Context) []models.DimensionValue {
	if tooShort(text) {
		return nil
	}
	textLower := strings.ToLower(text)

	scores := make(map[string]float64)
	matched := make(map[string][]string)

	for _, cat := range d.categories {
		for _, kw := range cat.keywords {
			if textutil.Contains(textLower, kw) {
				scores[cat.id] += temporalKeywordWeight
				matched[cat.id] = append(matched[cat.id], kw)
			}
		}
		for _, re := range cat.yearRes {
			if re.MatchString(textLower) {
				scores[cat.id] += yearIndicatorWeight
				matched[cat.id] = append(matched[cat.id], "year pattern: "+re.String())
			}
		}
	}

	// Average of explicitly mentioned years places the content in an era.
	years := yearMentionRe.FindAllString(text, -1)
	if len(years) > 0 {
		sum := 0
		for _, y := range years {
			n, _ := strconv.Atoi(y)
			sum += n
		}
		avg := float64(sum) / float64(len(years))
		switch {
		case avg < historicalYearCutoff:
			scores["historical"] += yearMentionWeight
			matched["historical"] = append(matched["historical"], "old years")
		case avg >= float64(d.currentYear-recentYearWindow):
			scores["emerging"] += yearMentionWeight
			matched["emerging"] = append(matched["emerging"], "recent years")
		}
	}

	// Verb tense nudges.
	if textutil.Contains(textLower, "has been") || textutil.Contains(textLower, "have been") {
		if _, present := scores["current"]; present {
			scores["current"] += tenseNudge
		}
	}
	if textutil.Contains(textLower, "will be") || textutil.Contains(textLower, "may become") {
		if _, present := scores["future"]; present {
			scores["future"] += tenseNudge
		}
	}

	if len(scores) == 0 {
		// Undated content defaults to the current standard, at reduced
		// confidence and with rule provenance.
		return []models.DimensionValue{{
			Value:      "current",
			Confidence: defaultTemporalConfidence,
			Source:     models.SourceRule,
			Evidence: models.Evidence{
				Name:   "Current Standard",
				Reason: "no_temporal_indicators",
			},
		}}
	}

	best := ""
	bestScore := 0.0
	for _, cat := range d.categories {
		if score, ok := scores[cat.id]; ok && score > bestScore {
			best = cat.id
			bestScore = score
		}
	}

	confidence := bestScore / temporalScoreScale
	if confidence > temporalConfidenceCap {
		confidence = temporalConfidenceCap
	}

	return []models.DimensionValue{{
		Value:      best,
		Confidence: confidence,
		Source:     models.SourceNLP,
		Evidence: models.Evidence{
			Name:         d.byID[best].name,
			Score:        bestScore,
			MatchedTerms: matched[best],
			YearsFound:   years,
		},
	}}
}

// DisplayValue renders a category ID as its name.
func (d *TemporalRelevance) DisplayValue(value any) string {
	id, ok := value.(string)
	if !ok {
		return displayFallback(value)
	}
	if cat, known := d.byID[id]; known {
		return cat.name
	}
	return id
}

func (d *TemporalRelevance) Similarity(a, b any) float64 { return exactSimilarity(a, b) }

func compilePatterns(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}

func currentYear() int {
	return time.Now().Year()
}
