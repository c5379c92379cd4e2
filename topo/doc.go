// Package topo computes a topological ordering of the ancestors of a
// set of requested Nodes — parents before children — so the scheduler
// can walk the DAG in a single pass and have every node's inputs ready
// before it runs.
//
// The algorithm is the classic three-color (white/gray/black) DFS used
// by lvlath's dfs.TopologicalSort, adapted to walk Node.Parents instead
// of core.Graph edges and to accept multiple roots at once. Because the
// walk follows edges from child to parent, the plain post-order already
// lists parents before children and is returned without reversal. Because chronon Nodes are immutable and can
// only reference already-constructed parents (the identity map is the
// sole constructor and always builds bottom-up), a true cycle is
// structurally unreachable — the gray-revisit check here is a defensive
// invariant, not a condition the public API can actually trigger.
package topo
