package taxonomy

import (
	"regexp"
	"strings"
)

// Tree is the frozen topic taxonomy plus its precomputed lookup indices.
// All indices are built at construction; Tree is safe for concurrent
// readers with no synchronization.
type Tree struct {
	root *Node
	byID map[string]*Node

	// index maps every case-folded keyword, alias, and node name to the
	// nodes that declare it.
	index map[string][]*Node

	// patterns holds a compiled whole-word occurrence pattern per indexed
	// term, so suggestion scoring never compiles regexes per call.
	patterns map[string]*regexp.Regexp
}

// Root returns the synthetic root node.
func (t *Tree) Root() *Node { return t.root }

// Find returns the node with the given ID, or nil.
func (t *Tree) Find(id string) *Node { return t.byID[id] }

// Lookup returns the nodes declaring the given term (keyword, alias, or
// node name), matched case-insensitively.
func (t *Tree) Lookup(term string) []*Node {
	return t.index[strings.ToLower(term)]
}

// Terms returns every indexed term with its declaring nodes and compiled
// occurrence pattern. Callers must not mutate the returned structures.
func (t *Tree) Terms() map[string][]*Node { return t.index }

// Pattern returns the compiled whole-word pattern for an indexed term,
// or nil for unknown terms.
func (t *Tree) Pattern(term string) *regexp.Regexp {
	return t.patterns[strings.ToLower(term)]
}

// ValidatePath reports whether path names an actual root-to-node chain:
// each successive segment must be a child of the previous node. A
// syntactically well-formed but nonexistent path fails.
func (t *Tree) ValidatePath(path []string) bool {
	if len(path) == 0 {
		return false
	}
	node := t.root
	start := 0
	if strings.EqualFold(path[0], t.root.Name) {
		start = 1
	}
	for _, segment := range path[start:] {
		var next *Node
		for _, child := range node.Children {
			if child.Name == segment {
				next = child
				break
			}
		}
		if next == nil {
			return false
		}
		node = next
	}
	return true
}

// Similarity resolves two node IDs and returns the length of their common
// leading path prefix divided by the longer path's length. Identical nodes
// score 1.0; nodes sharing no ancestor below root approach 0. Unknown IDs
// score 0.
func (t *Tree) Similarity(id1, id2 string) float64 {
	n1, n2 := t.Find(id1), t.Find(id2)
	if n1 == nil || n2 == nil {
		return 0.0
	}
	if n1 == n2 {
		return 1.0
	}

	p1, p2 := n1.Path(), n2.Path()
	common := 0
	for i := 0; i < len(p1) && i < len(p2); i++ {
		if p1[i] != p2[i] {
			break
		}
		common++
	}

	longer := len(p1)
	if len(p2) > longer {
		longer = len(p2)
	}
	if longer == 0 {
		return 0.0
	}
	return float64(common) / float64(longer)
}

// Walk visits every node below the root in depth-first order.
func (t *Tree) Walk(visit func(n *Node)) {
	var walk func(n *Node)
	walk = func(n *Node) {
		if n != t.root {
			visit(n)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(t.root)
}

// freeze builds the ID map, keyword index, and per-term occurrence
// patterns. Called once, after the tree structure is authored.
func (t *Tree) freeze() {
	t.byID = make(map[string]*Node)
	t.index = make(map[string][]*Node)
	t.patterns = make(map[string]*regexp.Regexp)

	var walk func(n *Node)
	walk = func(n *Node) {
		t.byID[n.ID] = n

		t.addTerm(n.Name, n)
		for _, kw := range n.Keywords {
			t.addTerm(kw, n)
		}
		for _, alias := range n.Aliases {
			t.addTerm(alias, n)
		}

		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(t.root)
}

func (t *Tree) addTerm(term string, n *Node) {
	folded := strings.ToLower(term)
	t.index[folded] = append(t.index[folded], n)
	if _, ok := t.patterns[folded]; !ok {
		t.patterns[folded] = regexp.MustCompile(`\b` + regexp.QuoteMeta(folded) + `\b`)
	}
}
