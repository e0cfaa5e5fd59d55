// Package taxonomy provides the fixed hierarchical topic tree used by the
// topics dimension: construction, keyword indexing, path computation, and
// path-overlap similarity. The tree is built once and read-only thereafter.
package taxonomy

// Node is one node in the topic tree. The tree owns its nodes top-down;
// Parent is a non-owning back-reference. Nodes are never added, removed,
// or reparented after the tree is built.
type Node struct {
	ID       string
	Name     string
	Parent   *Node
	Children []*Node

	// Keywords and Aliases are the terms that evidence this topic in text.
	Keywords []string
	Aliases  []string
}

// Path returns the ordered node names from the root down to n.
// It always terminates: depth is finite and parent links never cycle.
func (n *Node) Path() []string {
	var rev []string
	for cur := n; cur != nil; cur = cur.Parent {
		rev = append(rev, cur.Name)
	}
	path := make([]string, len(rev))
	for i, name := range rev {
		path[len(rev)-1-i] = name
	}
	return path
}

// Depth returns n's depth in the tree; the root is depth 0.
func (n *Node) Depth() int {
	depth := 0
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		depth++
	}
	return depth
}

// addChild appends a child carrying the given keyword set and wires its
// parent reference. Used only during tree construction.
func (n *Node) addChild(id, name string, keywords ...string) *Node {
	child := &Node{ID: id, Name: name, Parent: n, Keywords: keywords}
	n.Children = append(n.Children, child)
	return child
}
