package statevis // import "github.com/statevis/statevis"

import (
	"sort"
	"strings"
)

// Transition is one rule of the table: while in From, receiving Input moves
// the machine to To, optionally emitting Output.  A synthetic transition used
// to start an error-path cluster may carry a multi-line From label joining
// several origin states.
type Transition struct {

	// From is the state the rule applies in.
	From string

	// To is the resulting state.
	To string

	// Input is the symbol triggering the rule.
	Input string

	// Output is the emitted symbol, or empty when the rule emits nothing.
	Output string
}

// TransitionSet is the ordered sequence of transitions as parsed.  Order is
// preserved because it determines emission order; duplicates are legal.
type TransitionSet []Transition

// States returns every name appearing as a From or To of some transition,
// sorted.  States are derived from the table, never declared separately.
func (ts TransitionSet) States() []string {
	set := map[string]bool{}
	for _, t := range ts {
		set[t.From] = true
		set[t.To] = true
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// From returns the transitions applying in state st, preserving table order.
func (ts TransitionSet) From(st string) TransitionSet {
	var out TransitionSet
	for _, t := range ts {
		if t.From == st {
			out = append(out, t)
		}
	}
	return out
}

// StartStates returns the sorted subset of states whose name contains any of
// the marker substrings.  Start states seed the per-state clusters and act as
// expansion boundaries when reached from another cluster.
func (ts TransitionSet) StartStates(markers []string) []string {
	var out []string
	for _, s := range ts.States() {
		for _, m := range markers {
			if strings.Contains(s, m) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// NodeKey identifies one rendered node.  The same state name appearing in two
// clusters yields two distinct keys; the origin node of a cluster is distinct
// from the same state reached later as a destination.
type NodeKey struct {
	State   string
	Cluster int
	Origin  bool
}

// Node is one rendered node of a cluster.  Label is the display name, which
// for a combined error-path origin is a multi-line join of origin states.
// Sink is set when no edge in the cluster has this node as source.
type Node struct {
	Key   NodeKey
	Label string
	Sink  bool
}

// Edge is one rendered transition between two nodes of the same cluster.
type Edge struct {
	From   NodeKey
	To     NodeKey
	Input  string
	Output string
}

// Cluster is the self-contained sub-graph expanded from one starting
// transition.  Seq is the run-wide sequence number disambiguating node
// identifiers across clusters.  Nodes are in discovery order, Edges in
// emission order.
type Cluster struct {
	Seq   int
	Nodes []Node
	Edges []Edge
}

// Section is one labeled subgraph of the document, wrapping the clusters of
// one unusual input or one start state.  RankTB lays the section out
// top-to-bottom; error-path sections use it.
type Section struct {
	Label    string
	RankTB   bool
	Clusters []Cluster
}

// Document is the complete graph description: error-path sections first,
// then one section per start state.
type Document struct {
	Name     string
	Sections []Section
}
