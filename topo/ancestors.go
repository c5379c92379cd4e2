package topo

import "github.com/katalvlaran/chronon/graph"

const (
	white = 0 // unvisited
	gray  = 1 // on the current DFS path
	black = 2 // fully explored
)

// Ancestors returns every node reachable from roots (including roots
// themselves) in topological order: for every edge parent->child in the
// traversed set, parent appears before child. Order among independent
// subgraphs is otherwise the deterministic order DFS discovers them in,
// driven by the order of roots and of each node's Parents slice.
//
// Complexity: O(V + E) over the reachable subgraph.
func Ancestors(roots []*graph.Node) ([]*graph.Node, error) {
	w := &walker{
		state: make(map[*graph.Node]int),
		order: make([]*graph.Node, 0),
	}
	for _, r := range roots {
		if r == nil {
			continue
		}
		if err := w.visit(r); err != nil {
			return nil, err
		}
	}

	// visit walks Parents before appending a node, so the post-order
	// sequence already lists parents before children.
	return w.order, nil
}

type walker struct {
	state map[*graph.Node]int
	order []*graph.Node
}

func (w *walker) visit(n *graph.Node) error {
	switch w.state[n] {
	case black:
		return nil
	case gray:
		return ErrCycleDetected
	}
	w.state[n] = gray

	for _, p := range n.Parents {
		if err := w.visit(p); err != nil {
			return err
		}
	}

	w.state[n] = black
	w.order = append(w.order, n)

	return nil
}
