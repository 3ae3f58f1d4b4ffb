package statevis // import "github.com/statevis/statevis"

import (
	"strings"
)

// builder expands one cluster at a time over an immutable transition set.
// The start-state set bounds expansion: reaching a start state renders it but
// never follows its outgoing transitions, since those are covered by that
// state's own cluster.
type builder struct {
	ts      TransitionSet
	starts  map[string]bool
	unusual map[string]bool
	opts    Options
}

func newBuilder(ts TransitionSet, opts Options) *builder {
	starts := map[string]bool{}
	for _, s := range ts.StartStates(opts.StartMarkers) {
		starts[s] = true
	}
	return &builder{
		ts:      ts,
		starts:  starts,
		unusual: opts.unusualSet(),
		opts:    opts,
	}
}

// build expands the sub-graph reachable from start and returns it as a
// cluster numbered seq.  The starting edge is emitted unconditionally; the
// self-loop and unusual-input skip rules apply only to edges discovered
// during expansion.
func (b *builder) build(seq int, start Transition) Cluster {
	c := Cluster{Seq: seq}

	index := map[NodeKey]int{}
	nonsink := map[NodeKey]bool{}

	add := func(k NodeKey, label string) {
		if _, has := index[k]; has {
			return
		}
		index[k] = len(c.Nodes)
		c.Nodes = append(c.Nodes, Node{Key: k, Label: label})
	}

	emit := func(t Transition, origin bool) {
		from := NodeKey{State: t.From, Cluster: seq, Origin: origin}
		to := NodeKey{State: t.To, Cluster: seq}
		nonsink[from] = true
		add(from, t.From)
		add(to, t.To)
		c.Edges = append(c.Edges, Edge{From: from, To: to, Input: t.Input, Output: t.Output})
	}

	emit(start, true)

	// Worklist over a growing frontier: the node list may grow while being
	// scanned, so newly discovered states are visited in the same pass.
	// Index 0 is the origin node, which is never re-expanded.
	for cur := 1; cur < len(c.Nodes); cur++ {
		st := c.Nodes[cur].Key.State
		if b.starts[st] {
			continue
		}
		for _, t := range b.ts {
			if t.From != st {
				continue
			}
			if t.From == t.To && !b.opts.IncludeSelfLoops {
				continue
			}
			if b.unusual[t.Input] && !b.opts.IncludeUnusual {
				continue
			}
			emit(t, false)
		}
	}

	for i := range c.Nodes {
		c.Nodes[i].Sink = !nonsink[c.Nodes[i].Key]
	}
	return c
}

// syntheticStart builds the starting transition of an error-path cluster:
// the origins that converge on the same outcome become one combined From
// label, joined with newlines.
func syntheticStart(origins []string, input string, dst outcome) Transition {
	return Transition{
		From:   strings.Join(origins, "\n"),
		To:     dst.to,
		Input:  input,
		Output: dst.output,
	}
}
