package dimensions

import (
	"fmt"
	"strings"

	"github.com/raybunnage/prestag/internal/models"
	"github.com/raybunnage/prestag/internal/textutil"
)

const (
	// evidenceKeywordWeight and evidencePhraseWeight score level
	// indicators; phrases are stronger evidence than single keywords.
	evidenceKeywordWeight = 2.0
	evidencePhraseWeight  = 3.0

	// studyTypeWeight is added toward the level a study-type mention
	// implies (e.g. "meta-analysis" implies established evidence).
	studyTypeWeight = 2.0

	// hedgingThreshold: more hedging terms than this boost "emerging".
	hedgingThreshold = 3

	// evidenceScoreScale and evidenceConfidenceCap map the winning raw
	// score to a confidence capped below manual-equivalent certainty.
	evidenceScoreScale    = 10.0
	evidenceConfidenceCap = 0.8
)

// evidenceLevel is one research-maturity category with its indicators.
type evidenceLevel struct {
	id          string
	name        string
	description string
	keywords    []string
	phrases     []string
}

// studyTypeIndicators map study-design mentions to the evidence level
// they imply.
var studyTypeIndicators = []struct {
	term  string
	level string
}{
	{"rct", "established"},
	{"randomized controlled", "established"},
	{"meta-analysis", "established"},
	{"systematic review", "established"},
	{"case report", "emerging"},
	{"case series", "emerging"},
	{"observational", "developing"},
	{"cohort study", "developing"},
	{"clinical trial", "developing"},
}

// hedgingTerms signal uncertainty; their density shifts weight toward
// emerging evidence.
var hedgingTerms = []string{
	"may", "might", "could", "possibly", "potentially",
	"suggests", "appears", "seems", "unclear", "unknown",
}

// EvidenceLevel classifies research maturity and strength of evidence.
type EvidenceLevel struct {
	def    models.DimensionDefinition
	levels []evidenceLevel
	byID   map[string]evidenceLevel
}

// NewEvidenceLevel builds the evidence level dimension.
func NewEvidenceLevel() *EvidenceLevel {
	levels := []evidenceLevel{
		{
			id: "emerging", name: "Emerging",
			description: "Early research, preliminary findings",
			keywords: []string{"preliminary", "pilot", "initial", "early", "emerging",
				"novel", "first", "exploratory", "hypothesis-generating"},
			phrases: []string{"early evidence", "preliminary data", "pilot study",
				"initial findings", "emerging research"},
		},
		{
			id: "developing", name: "Developing",
			description: "Growing body of evidence, some validation",
			keywords: []string{"developing", "growing", "accumulating", "promising",
				"encouraging", "building", "evolving"},
			phrases: []string{"growing evidence", "accumulating data", "recent studies",
				"multiple studies", "converging evidence"},
		},
		{
			id: "established", name: "Established",
			description: "Well-validated with strong evidence base",
			keywords: []string{"established", "validated", "confirmed", "proven",
				"well-documented", "consensus", "standard", "accepted"},
			phrases: []string{"well established", "strong evidence", "meta-analysis",
				"systematic review", "clinical guidelines", "gold standard"},
		},
		{
			id: "controversial", name: "Controversial",
			description: "Conflicting evidence or ongoing debate",
			keywords: []string{"controversial", "debate", "conflicting", "disputed",
				"contested", "mixed", "inconsistent", "paradoxical"},
			phrases: []string{"ongoing debate", "conflicting results", "controversial topic",
				"mixed evidence", "paradoxical findings"},
		},
	}

	byID := make(map[string]evidenceLevel, len(levels))
	options := make([]string, len(levels))
	for i, lvl := range levels {
		byID[lvl.id] = lvl
		options[i] = lvl.id
	}

	return &EvidenceLevel{
		def: models.DimensionDefinition{
			Name:        "evidence_level",
			Description: "Research maturity and strength of evidence",
			Type:        models.TypeCategorical,
			Options:     options,
		},
		levels: levels,
		byID:   byID,
	}
}

func (d *EvidenceLevel) Definition() models.DimensionDefinition { return d.def }

// ValidateValue accepts a known evidence level ID.
func (d *EvidenceLevel) ValidateValue(value any) bool {
	id, ok := value.(string)
	if !ok {
		return false
	}
	_, known := d.byID[id]
	return known
}

func (d *EvidenceLevel) SuggestValues(text string, ctx models.Context) []models.DimensionValue {
	if tooShort(text) {
		return nil
	}
	textLower := strings.ToLower(text)

	scores := make(map[string]float64)
	matched := make(map[string][]string)

	for _, lvl := range d.levels {
		for _, kw := range lvl.keywords {
			if textutil.Contains(textLower, kw) {
				scores[lvl.id] += evidenceKeywordWeight
				matched[lvl.id] = append(matched[lvl.id], kw)
			}
		}
		for _, phrase := range lvl.phrases {
			if textutil.Contains(textLower, phrase) {
				scores[lvl.id] += evidencePhraseWeight
				matched[lvl.id] = append(matched[lvl.id], phrase)
			}
		}
	}

	// Study-design mentions imply a maturity level directly.
	for _, ind := range studyTypeIndicators {
		if textutil.Contains(textLower, ind.term) {
			scores[ind.level] += studyTypeWeight
			matched[ind.level] = append(matched[ind.level], ind.term)
		}
	}

	// Dense hedging language is itself a sign the evidence is early.
	hedging := textutil.CountTerms(textLower, hedgingTerms)
	if hedging > hedgingThreshold {
		if _, present := scores["emerging"]; present {
			scores["emerging"] += float64(hedging)
		}
	}

	if len(scores) == 0 {
		return nil
	}

	// Pick the best level; ties resolve in catalog order.
	best := ""
	bestScore := 0.0
	for _, lvl := range d.levels {
		if score, ok := scores[lvl.id]; ok && score > bestScore {
			best = lvl.id
			bestScore = score
		}
	}
	if best == "" {
		return nil
	}

	confidence := bestScore / evidenceScoreScale
	if confidence > evidenceConfidenceCap {
		confidence = evidenceConfidenceCap
	}

	return []models.DimensionValue{{
		Value:      best,
		Confidence: confidence,
		Source:     models.SourceNLP,
		Evidence: models.Evidence{
			Name:             d.byID[best].name,
			Score:            bestScore,
			MatchedTerms:     matched[best],
			UncertaintyCount: hedging,
		},
	}}
}

// DisplayValue renders a level ID as "Name - description".
func (d *EvidenceLevel) DisplayValue(value any) string {
	id, ok := value.(string)
	if !ok {
		return displayFallback(value)
	}
	lvl, known := d.byID[id]
	if !known {
		return id
	}
	return fmt.Sprintf("%s - %s", lvl.name, lvl.description)
}

func (d *EvidenceLevel) Similarity(a, b any) float64 { return exactSimilarity(a, b) }
