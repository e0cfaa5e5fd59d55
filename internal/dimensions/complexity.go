package dimensions

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/raybunnage/prestag/internal/models"
	"github.com/raybunnage/prestag/internal/textutil"
)

const (
	// complexityKeywordWeight and complexityPhraseWeight score bucket
	// indicators; longer phrases are stronger, more specific evidence.
	complexityKeywordWeight = 2.0
	complexityPhraseWeight  = 3.0

	// techDensityMid and techDensityHigh select which third of the winning
	// bucket's numeric sub-range to report. These cut points are carried
	// from the original heuristics as calibration targets, not validated
	// ground truth.
	techDensityMid  = 0.4
	techDensityHigh = 0.7

	// techDensityScale rescales the jargon-per-word ratio into [0,1];
	// roughly 10% technical terms counts as fully technical.
	techDensityScale = 10.0

	// prereqStep and prereqCap bound the prerequisite-language bonus.
	prereqStep = 0.5
	prereqCap  = 2.0

	// complexityConfidence applies when a keyword bucket matched;
	// complexityFallbackConfidence applies to the density-only estimate.
	// Automated suggestions stay below manual-equivalent confidence.
	complexityConfidence         = 0.7
	complexityFallbackConfidence = 0.5
)

// complexityBucket is one discrete level with its indicators and the
// numeric sub-range it maps to on the 1-10 scale.
type complexityBucket struct {
	level    string
	keywords []string
	phrases  []string
	min, max float64
}

// technicalPatterns match medical/statistical jargon and dosage units.
// The ratio of matches to word count is the technical density signal.
var technicalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:metabol|mitochondr|oxidat|pathophysio|biomark|proteom|genomic)\w*\b`),
	regexp.MustCompile(`(?i)\b\d+\s*(?:mg|ml|μM|mM|ng|pg|IU)\b`),
	regexp.MustCompile(`(?i)\b(?:p-value|significance|correlation|regression|CI|SD|SEM)\b`),
	regexp.MustCompile(`(?i)\b(?:methodology|hypothesis|mechanism|pathway|substrate|receptor)\b`),
	regexp.MustCompile(`(?i)\b(?:dysfunction|syndrome|disorder|disease|pathology)\b`),
}

var prerequisitePhrases = []string{
	"requires understanding of",
	"builds upon",
	"assumes knowledge",
	"prerequisite",
	"advanced understanding",
	"familiarity with",
}

// Complexity scores content depth on a 1-10 scale by combining discrete
// keyword buckets with a continuous technical-density signal and a
// prerequisite-language bonus.
type Complexity struct {
	def     models.DimensionDefinition
	buckets []complexityBucket
}

// NewComplexity builds the complexity dimension and its keyword buckets.
func NewComplexity() *Complexity {
	return &Complexity{
		def: models.DimensionDefinition{
			Name:        "complexity",
			Description: "Depth and sophistication level of content",
			Type:        models.TypeNumeric,
			Required:    true,
			Range:       &models.Range{Min: 1, Max: 10},
			Rules:       models.ValidationRules{AllowDecimal: true},
		},
		buckets: []complexityBucket{
			{
				level: "beginner",
				keywords: []string{"introduction", "basics", "fundamental", "overview", "101",
					"beginner", "getting started", "primer", "essentials"},
				phrases: []string{"what is", "introduction to", "basics of", "for beginners"},
				min:     1, max: 3,
			},
			{
				level: "intermediate",
				keywords: []string{"practical", "application", "case study", "clinical",
					"implementation", "protocol", "management"},
				phrases: []string{"how to", "best practices", "clinical applications", "case studies"},
				min:     4, max: 6,
			},
			{
				level: "advanced",
				keywords: []string{"advanced", "complex", "detailed", "comprehensive", "research",
					"mechanism", "pathophysiology", "molecular"},
				phrases: []string{"deep dive", "advanced topics", "research findings", "mechanisms of"},
				min:     7, max: 9,
			},
			{
				level: "expert",
				keywords: []string{"cutting-edge", "novel", "emerging", "frontier", "breakthrough",
					"controversial", "debate", "hypothesis"},
				phrases: []string{"latest research", "novel approaches", "emerging evidence", "future directions"},
				min:     9, max: 10,
			},
		},
	}
}

func (d *Complexity) Definition() models.DimensionDefinition { return d.def }

// ValidateValue accepts any numeric value within [1,10].
func (d *Complexity) ValidateValue(value any) bool {
	v, ok := toFloat(value)
	return ok && v >= d.def.Range.Min && v <= d.def.Range.Max
}

func (d *Complexity) SuggestValues(text string, ctx models.Context) []models.DimensionValue {
	if tooShort(text) {
		return nil
	}
	textLower := strings.ToLower(text)

	technical := technicalScore(text)
	prereq := prerequisiteScore(textLower)

	// Score each bucket; ties keep the shallower level.
	best := d.buckets[0]
	bestScore := 0.0
	totalIndicators := 0.0
	for _, bucket := range d.buckets {
		score := 0.0
		for _, kw := range bucket.keywords {
			if textutil.Contains(textLower, kw) {
				score += complexityKeywordWeight
			}
		}
		for _, phrase := range bucket.phrases {
			if textutil.Contains(textLower, phrase) {
				score += complexityPhraseWeight
			}
		}
		totalIndicators += score
		if score > bestScore {
			best = bucket
			bestScore = score
		}
	}

	if bestScore == 0 {
		// No bucket evidence: estimate from technical density alone.
		value := 3.0
		if technical > 0.6 {
			value = 7.0
		} else if technical > 0.3 {
			value = 5.0
		}
		return []models.DimensionValue{{
			Value:      value,
			Confidence: complexityFallbackConfidence,
			Source:     models.SourceNLP,
			Evidence: models.Evidence{
				TechnicalScore: technical,
				Reason:         "technical_analysis",
			},
		}}
	}

	// The density signal picks which third of the bucket's range to report.
	var value float64
	switch {
	case technical > techDensityHigh:
		value = best.max
	case technical > techDensityMid:
		value = (best.min + best.max) / 2
	default:
		value = best.min
	}
	value += prereq
	if value < d.def.Range.Min {
		value = d.def.Range.Min
	}
	if value > d.def.Range.Max {
		value = d.def.Range.Max
	}

	return []models.DimensionValue{{
		Value:      value,
		Confidence: complexityConfidence,
		Source:     models.SourceNLP,
		Evidence: models.Evidence{
			Level:             best.level,
			Score:             totalIndicators,
			TechnicalScore:    technical,
			PrerequisiteScore: prereq,
		},
	}}
}

// DisplayValue renders the numeric value with its level description.
func (d *Complexity) DisplayValue(value any) string {
	v, ok := toFloat(value)
	if !ok {
		return displayFallback(value)
	}
	return fmt.Sprintf("%.1f/10 - %s", v, LevelDescription(v))
}

func (d *Complexity) Similarity(a, b any) float64 { return exactSimilarity(a, b) }

// LevelDescription maps a complexity value to its human-readable band.
func LevelDescription(value float64) string {
	switch {
	case value <= 3:
		return "Beginner - Suitable for those new to the topic"
	case value <= 6:
		return "Intermediate - Assumes basic knowledge"
	case value <= 8:
		return "Advanced - Requires solid understanding"
	default:
		return "Expert - Cutting-edge or highly specialized"
	}
}

// technicalScore computes the 0-1 technical density of the text: regex
// jargon matches per word, rescaled and capped.
func technicalScore(text string) float64 {
	words := textutil.WordCount(text)
	if words == 0 {
		return 0.0
	}
	matches := 0
	for _, re := range technicalPatterns {
		matches += len(re.FindAllStringIndex(text, -1))
	}
	ratio := float64(matches) / float64(words) * techDensityScale
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}

// prerequisiteScore nudges complexity upward for prerequisite language,
// half a point per phrase, capped.
func prerequisiteScore(textLower string) float64 {
	score := float64(textutil.CountTerms(textLower, prerequisitePhrases)) * prereqStep
	if score > prereqCap {
		return prereqCap
	}
	return score
}
