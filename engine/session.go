package engine

import (
	"github.com/katalvlaran/chronon/align"
	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/graph"
	"github.com/katalvlaran/chronon/op"
	"github.com/katalvlaran/chronon/topo"
)

// Session is the live, mutable evaluation state for one fixed ancestor
// set, advanced batch by batch via Scheduler.EvaluateUntil. Construct
// one with Scheduler.StartAt.
type Session struct {
	nodes     []*graph.Node
	nodeIndex map[*graph.Node]int
	parentIdx [][]int // per-node, the nodeIndex of each of its parents

	opState []any          // per-node Source/Operator/Combiner/Reshaper state
	alignSt []*align.State // per-node alignment bookkeeping; nil for non-Operator nodes

	requested   []*graph.Node
	requestedAt map[*graph.Node]int // index into outputs, for O(1) append

	outputs     []block.Block[any] // parallel to requested
	currentTime block.Timestamp
	poisoned    bool
}

// Scheduler drives Sessions. It carries no state of its own; every
// method is a pure function of the Session (and, for StartAt, the
// caller's requested roots) it is given.
type Scheduler struct{}

// StartAt computes the ancestor set of requested in topological order,
// allocates fresh per-node state, and sets current_time to tStart.
func (Scheduler) StartAt(requested []*graph.Node, tStart block.Timestamp) (*Session, error) {
	nodes, err := topo.Ancestors(requested)
	if err != nil {
		return nil, err
	}

	nodeIndex := make(map[*graph.Node]int, len(nodes))
	for i, n := range nodes {
		nodeIndex[n] = i
	}

	parentIdx := make([][]int, len(nodes))
	opState := make([]any, len(nodes))
	alignSt := make([]*align.State, len(nodes))

	for i, n := range nodes {
		idx := make([]int, len(n.Parents))
		for j, p := range n.Parents {
			idx[j] = nodeIndex[p]
		}
		parentIdx[i] = idx

		opState[i] = newState(n.Op)

		if operator, ok := n.Op.(op.Operator); ok && !n.IsSource() {
			var initials []op.Initial
			if wi, ok := n.Op.(op.WithInitials); ok {
				initials = wi.Initials()
			}
			alignSt[i] = align.NewState(operator.Flags().Align, len(n.Parents), initials)
		}
	}

	requestedAt := make(map[*graph.Node]int, len(requested))
	for i, n := range requested {
		requestedAt[n] = i
	}

	return &Session{
		nodes:       nodes,
		nodeIndex:   nodeIndex,
		parentIdx:   parentIdx,
		opState:     opState,
		alignSt:     alignSt,
		requested:   append([]*graph.Node(nil), requested...),
		requestedAt: requestedAt,
		outputs:     make([]block.Block[any], len(requested)),
		currentTime: tStart,
	}, nil
}

// newState builds a Node's initial per-node state by dispatching on
// whichever node shape its Op implements.
func newState(o op.Op) any {
	switch v := o.(type) {
	case op.Source:
		return v.NewState()
	case op.Operator:
		return v.NewState()
	case op.Combiner:
		return v.NewState()
	case op.Reshaper:
		return v.NewState()
	default:
		return nil
	}
}

// Output returns the concatenated output block collected so far for a
// requested node. Panics if n was not part of the requested set passed
// to StartAt — a programmer error, not a runtime one.
func (s *Session) Output(n *graph.Node) block.Block[any] {
	i, ok := s.requestedAt[n]
	if !ok {
		panic("engine: Output called for a node outside the requested set")
	}

	return s.outputs[i]
}

// CurrentTime reports the session's current high-water mark.
func (s *Session) CurrentTime() block.Timestamp { return s.currentTime }
