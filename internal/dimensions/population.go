package dimensions

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/raybunnage/prestag/internal/models"
	"github.com/raybunnage/prestag/internal/textutil"
)

const (
	// populationPhraseWeight and populationKeywordWeight score population
	// cues; multi-word keywords are more specific evidence.
	populationPhraseWeight  = 2.0
	populationKeywordWeight = 1.0

	// ageMentionWeight is added when an explicit age implies a population.
	ageMentionWeight = 2.0

	// maxPopulationSuggestions caps the populations suggested.
	maxPopulationSuggestions = 2

	// populationScoreScale and populationConfidenceCap map raw scores to
	// capped confidences. There is deliberately no fallback: guessing
	// "general" when nothing matched would overstate an unsupported default.
	populationScoreScale    = 5.0
	populationConfidenceCap = 0.8

	pediatricAgeLimit = 18
	geriatricAgeMin   = 65
)

// population is one demographic category with its cue terms.
type population struct {
	id       string
	name     string
	ageRange string
	keywords []string
}

// agePatterns capture explicit age mentions; the captured number decides
// whether the mention implies pediatric or geriatric content. Month-based
// ages always imply infants.
var agePatterns = []struct {
	re     *regexp.Regexp
	infant bool
}{
	{re: regexp.MustCompile(`\b(\d+)\s*(?:year|yr)s?\s*old\b`)},
	{re: regexp.MustCompile(`\b(?:age|aged?)\s*(\d+)\b`)},
	{re: regexp.MustCompile(`\b(\d+)\s*months?\s*old\b`), infant: true},
}

// specialPopulations are cross-cutting cohorts recorded as evidence
// alongside the primary demographic suggestions.
var specialPopulations = []struct {
	id    string
	terms []string
}{
	{"immunocompromised", []string{"immunocompromised", "immunosuppressed", "transplant"}},
	{"chronic-disease", []string{"chronic disease", "comorbid", "multiple conditions"}},
	{"genetic-disorders", []string{"genetic", "hereditary", "congenital", "inherited"}},
}

// PatientPopulation classifies the patient demographics content targets.
type PatientPopulation struct {
	def     models.DimensionDefinition
	catalog []population
	byID    map[string]population
}

// NewPatientPopulation builds the patient population dimension.
func NewPatientPopulation() *PatientPopulation {
	catalog := []population{
		{
			id: "pediatric", name: "Pediatric", ageRange: "0-18 years",
			keywords: []string{"pediatric", "children", "child", "infant", "adolescent",
				"youth", "teenage", "newborn", "neonatal"},
		},
		{
			id: "adult", name: "Adult", ageRange: "18-65 years",
			keywords: []string{"adult", "adults", "middle-aged"},
		},
		{
			id: "geriatric", name: "Geriatric", ageRange: "65+ years",
			keywords: []string{"geriatric", "elderly", "older adult", "senior", "aging"},
		},
		{
			id: "maternal", name: "Maternal/Prenatal", ageRange: "Childbearing age",
			keywords: []string{"maternal", "prenatal", "pregnancy", "pregnant", "perinatal",
				"obstetric", "mother", "fetal"},
		},
		{
			id: "general", name: "General Population", ageRange: "All ages",
			keywords: []string{"general population", "all ages", "across lifespan"},
		},
	}

	byID := make(map[string]population, len(catalog))
	options := make([]string, len(catalog))
	for i, pop := range catalog {
		byID[pop.id] = pop
		options[i] = pop.id
	}

	return &PatientPopulation{
		def: models.DimensionDefinition{
			Name:        "patient_population",
			Description: "Relevant patient demographics",
			Type:        models.TypeCategorical,
			Multiple:    true,
			Options:     options,
		},
		catalog: catalog,
		byID:    byID,
	}
}

func (d *PatientPopulation) Definition() models.DimensionDefinition { return d.def }

// ValidateValue accepts a known population ID or list of known IDs.
func (d *PatientPopulation) ValidateValue(value any) bool {
	ids, ok := asStringSlice(value)
	if !ok || len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if _, known := d.byID[id]; !known {
			return false
		}
	}
	return true
}

func (d *PatientPopulation) SuggestValues(text string, ctx models.Context) []models.DimensionValue {
	if tooShort(text) {
		return nil
	}
	textLower := strings.ToLower(text)

	scores := make(map[string]float64)
	matched := make(map[string][]string)

	for _, pop := range d.catalog {
		for _, kw := range pop.keywords {
			if textutil.Contains(textLower, kw) {
				weight := populationKeywordWeight
				if len(strings.Fields(kw)) > 1 {
					weight = populationPhraseWeight
				}
				scores[pop.id] += weight
				matched[pop.id] = append(matched[pop.id], kw)
			}
		}
	}

	// Explicit age mentions shift weight toward pediatric or geriatric.
	for _, ap := range agePatterns {
		for _, m := range ap.re.FindAllStringSubmatch(textLower, -1) {
			age, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			switch {
			case ap.infant || age < pediatricAgeLimit:
				scores["pediatric"] += ageMentionWeight
				matched["pediatric"] = append(matched["pediatric"], "age mention")
			case age >= geriatricAgeMin:
				scores["geriatric"] += ageMentionWeight
				matched["geriatric"] = append(matched["geriatric"], "age mention")
			}
		}
	}

	if len(scores) == 0 {
		// No evidence: silence, not a guessed default.
		return nil
	}

	var special []string
	for _, sp := range specialPopulations {
		if len(textutil.ContainsAny(textLower, sp.terms)) > 0 {
			special = append(special, sp.id)
		}
	}

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > maxPopulationSuggestions {
		ids = ids[:maxPopulationSuggestions]
	}

	suggestions := make([]models.DimensionValue, 0, len(ids))
	for _, id := range ids {
		confidence := scores[id] / populationScoreScale
		if confidence > populationConfidenceCap {
			confidence = populationConfidenceCap
		}
		suggestions = append(suggestions, models.DimensionValue{
			Value:      id,
			Confidence: confidence,
			Source:     models.SourceNLP,
			Evidence: models.Evidence{
				Name:               d.byID[id].name,
				Score:              scores[id],
				MatchedTerms:       matched[id],
				SpecialPopulations: special,
			},
		})
	}
	return suggestions
}

// DisplayValue renders population IDs as their names.
func (d *PatientPopulation) DisplayValue(value any) string {
	ids, ok := asStringSlice(value)
	if !ok {
		return displayFallback(value)
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		if pop, known := d.byID[id]; known {
			names[i] = pop.name
		} else {
			names[i] = id
		}
	}
	return strings.Join(names, ", ")
}

// Similarity is the Jaccard index over the population sets.
func (d *PatientPopulation) Similarity(a, b any) float64 {
	return jaccardSimilarity(a, b)
}
