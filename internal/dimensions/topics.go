package dimensions

import (
	"regexp"
	"sort"
	"strings"

	"github.com/raybunnage/prestag/internal/models"
	"github.com/raybunnage/prestag/internal/taxonomy"
	"github.com/raybunnage/prestag/internal/textutil"
)

const (
	// topicDepthWeight boosts deeper nodes when their keyword matches:
	// specificity should outrank generality.
	topicDepthWeight = 0.2

	// maxTopicSuggestions caps the number of topic candidates returned.
	maxTopicSuggestions = 5

	// topicConfidenceCap keeps automated topic suggestions below full
	// certainty; they are always subject to human review.
	topicConfidenceCap = 0.9
)

// stemPattern catches morphological variants the keyword index misses,
// e.g. "mitochondria", "mitochondrion", "mitochondrial".
type stemPattern struct {
	re      *regexp.Regexp
	nodeIDs []string
}

// Topics is the hierarchical subject-matter dimension backed by the fixed
// topic taxonomy.
type Topics struct {
	def   models.DimensionDefinition
	tree  *taxonomy.Tree
	stems []stemPattern
}

// NewTopics builds the topics dimension, its taxonomy, and its stem table.
func NewTopics() *Topics {
	return &Topics{
		def: models.DimensionDefinition{
			Name:        "topics",
			Description: "Hierarchical subject matter taxonomy",
			Type:        models.TypeHierarchical,
			Required:    true,
			Multiple:    true,
			Rules: models.ValidationRules{
				MinSelections: 1,
				MaxSelections: maxTopicSuggestions,
				MinDepth:      2,
				MaxDepth:      4,
			},
		},
		tree: taxonomy.Default(),
		stems: []stemPattern{
			{regexp.MustCompile(`\bmitochond\w+\b`), []string{"mitochondrial"}},
			{regexp.MustCompile(`\bmetabol\w+\b`), []string{"metabolic", "energy-metabolism"}},
			{regexp.MustCompile(`\boxidat\w+\b`), []string{"oxidative-stress"}},
			{regexp.MustCompile(`\bautis\w+\b`), []string{"asd"}},
			{regexp.MustCompile(`\bbiomark\w+\b`), []string{"asd-biomarkers"}},
			{regexp.MustCompile(`\bfatigu\w+\b`), []string{"cfs"}},
			{regexp.MustCompile(`\bneurol\w+\b`), []string{"neuro"}},
			{regexp.MustCompile(`\btreatment\w+\b`), []string{"treatment"}},
			{regexp.MustCompile(`\bdiagnos\w+\b`), []string{"diagnostics"}},
		},
	}
}

func (d *Topics) Definition() models.DimensionDefinition { return d.def }

// Taxonomy exposes the frozen topic tree for display and traversal.
func (d *Topics) Taxonomy() *taxonomy.Tree { return d.tree }

// ValidateValue accepts a known node ID, or a path whose successive
// segments are actual parent/child links in the live tree.
func (d *Topics) ValidateValue(value any) bool {
	switch v := value.(type) {
	case string:
		return d.tree.Find(v) != nil
	case []string:
		return d.tree.ValidatePath(v)
	case []any:
		path, ok := asStringSlice(v)
		return ok && d.tree.ValidatePath(path)
	default:
		return false
	}
}

// SuggestValues scans the text against the keyword index and stem table,
// scoring each matched node by occurrence count weighted toward deeper
// (more specific) nodes.
func (d *Topics) SuggestValues(text string, ctx models.Context) []models.DimensionValue {
	if tooShort(text) {
		return nil
	}
	textLower := strings.ToLower(text)

	scores := make(map[*taxonomy.Node]float64)

	// Pass 1: exact keyword/alias/name occurrences from the index.
	for term, nodes := range d.tree.Terms() {
		if !strings.Contains(textLower, term) {
			continue
		}
		count := textutil.Occurrences(d.tree.Pattern(term), textLower)
		if count == 0 {
			continue
		}
		for _, node := range nodes {
			weight := 1.0 + float64(node.Depth())*topicDepthWeight
			scores[node] += float64(count) * weight
		}
	}

	// Pass 2: stem patterns for morphological variants.
	for _, stem := range d.stems {
		if !stem.re.MatchString(textLower) {
			continue
		}
		for _, id := range stem.nodeIDs {
			if node := d.tree.Find(id); node != nil {
				scores[node] += 1.0
			}
		}
	}

	if len(scores) == 0 {
		return nil
	}

	ranked := make([]*taxonomy.Node, 0, len(scores))
	for node := range scores {
		ranked = append(ranked, node)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if scores[ranked[i]] != scores[ranked[j]] {
			return scores[ranked[i]] > scores[ranked[j]]
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > maxTopicSuggestions {
		ranked = ranked[:maxTopicSuggestions]
	}

	top := scores[ranked[0]]
	suggestions := make([]models.DimensionValue, 0, len(ranked))
	for _, node := range ranked {
		score := scores[node]
		confidence := score / top
		if confidence > 1.0 {
			confidence = 1.0
		}
		confidence *= topicConfidenceCap

		suggestions = append(suggestions, models.DimensionValue{
			Value:      node.ID,
			Confidence: confidence,
			Source:     models.SourceNLP,
			Evidence: models.Evidence{
				Name:         node.Name,
				Path:         node.Path(),
				Score:        score,
				MatchedTerms: textutil.ContainsAny(textLower, node.Keywords),
			},
		})
	}
	return suggestions
}

// DisplayValue renders a node ID as its name, and a path as a chain.
func (d *Topics) DisplayValue(value any) string {
	switch v := value.(type) {
	case string:
		if node := d.tree.Find(v); node != nil {
			return node.Name
		}
		return v
	case []string:
		return strings.Join(v, " > ")
	default:
		return displayFallback(value)
	}
}

// Similarity measures path overlap: common leading prefix length divided
// by the longer path's length.
func (d *Topics) Similarity(a, b any) float64 {
	id1, ok1 := a.(string)
	id2, ok2 := b.(string)
	if !ok1 || !ok2 {
		return 0.0
	}
	return d.tree.Similarity(id1, id2)
}
