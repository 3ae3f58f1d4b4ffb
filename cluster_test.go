package statevis // import "github.com/statevis/statevis"

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.StartMarkers = []string{"INIT"}
	opts.Unusual = []string{"PKT_ERROR"}
	return opts
}

func nodeStates(c Cluster) []string {
	var out []string
	for _, n := range c.Nodes {
		s := n.Key.State
		if n.Key.Origin {
			s += "!"
		}
		out = append(out, s)
	}
	return out
}

func TestExpandBasic(t *testing.T) {

	ts := TransitionSet{
		{From: "INIT_A", To: "B", Input: "INPUT_X"},
		{From: "B", To: "B", Input: "INPUT_Y"},
		{From: "B", To: "C", Input: "INPUT_Z"},
	}

	b := newBuilder(ts, testOptions())
	c := b.build(1, ts[0])

	require.Equal(t, []string{"INIT_A!", "B", "C"}, nodeStates(c))

	// self-loop excluded by default
	require.Equal(t, []Edge{
		{From: NodeKey{"INIT_A", 1, true}, To: NodeKey{"B", 1, false}, Input: "INPUT_X"},
		{From: NodeKey{"B", 1, false}, To: NodeKey{"C", 1, false}, Input: "INPUT_Z"},
	}, c.Edges)

	// sink iff no emitted outgoing edge
	require.False(t, c.Nodes[0].Sink)
	require.False(t, c.Nodes[1].Sink)
	require.True(t, c.Nodes[2].Sink)
}

func TestExpandSelfLoopsIncluded(t *testing.T) {

	ts := TransitionSet{
		{From: "INIT_A", To: "B", Input: "INPUT_X"},
		{From: "B", To: "B", Input: "INPUT_Y"},
	}

	opts := testOptions()
	opts.IncludeSelfLoops = true

	c := newBuilder(ts, opts).build(1, ts[0])
	require.Len(t, c.Edges, 2)
	require.Equal(t, NodeKey{"B", 1, false}, c.Edges[1].From)
	require.Equal(t, NodeKey{"B", 1, false}, c.Edges[1].To)

	// no node appears twice even with the loop rendered
	require.Equal(t, []string{"INIT_A!", "B"}, nodeStates(c))
}

func TestExpandUnusualExcluded(t *testing.T) {

	ts := TransitionSet{
		{From: "INIT_A", To: "B", Input: "INPUT_X"},
		{From: "B", To: "CLOSED", Input: "PKT_ERROR"},
		{From: "B", To: "C", Input: "INPUT_Z"},
	}

	c := newBuilder(ts, testOptions()).build(1, ts[0])
	for _, e := range c.Edges {
		require.NotEqual(t, "PKT_ERROR", e.Input)
	}

	opts := testOptions()
	opts.IncludeUnusual = true
	c = newBuilder(ts, opts).build(1, ts[0])
	require.Len(t, c.Edges, 3)
}

func TestInitialEdgeNeverSkipped(t *testing.T) {

	// the starting transition is exempt from the skip rules, even as a
	// self-loop on an unusual input
	ts := TransitionSet{
		{From: "B", To: "B", Input: "PKT_ERROR"},
	}

	c := newBuilder(ts, testOptions()).build(1, ts[0])

	require.Equal(t, []string{"B!", "B"}, nodeStates(c))
	require.Len(t, c.Edges, 1)
	require.Equal(t, NodeKey{"B", 1, true}, c.Edges[0].From)
	require.Equal(t, NodeKey{"B", 1, false}, c.Edges[0].To)

	// the plain B node has no rendered outgoing edge: its only transition is
	// a self-loop, skipped during expansion
	require.False(t, c.Nodes[0].Sink)
	require.True(t, c.Nodes[1].Sink)
}

func TestStartStateBoundary(t *testing.T) {

	ts := TransitionSet{
		{From: "A", To: "B", Input: "INPUT_X"},
		{From: "B", To: "INIT_C", Input: "INPUT_Y"},
		{From: "INIT_C", To: "D", Input: "INPUT_Z"},
	}

	c := newBuilder(ts, testOptions()).build(1, ts[0])

	// INIT_C is rendered but never expanded: D stays out of the cluster
	require.Equal(t, []string{"A!", "B", "INIT_C"}, nodeStates(c))
	require.Len(t, c.Edges, 2)
	require.True(t, c.Nodes[2].Sink)
}

func TestExpandVisitsGrowingFrontier(t *testing.T) {

	// a chain discovered while scanning: every hop must be followed in the
	// same pass
	ts := TransitionSet{
		{From: "A", To: "B", Input: "I_A"},
		{From: "B", To: "C", Input: "I_B"},
		{From: "C", To: "D", Input: "I_C"},
		{From: "D", To: "E", Input: "I_D"},
	}

	c := newBuilder(ts, testOptions()).build(1, ts[0])
	require.Equal(t, []string{"A!", "B", "C", "D", "E"}, nodeStates(c))
	require.Len(t, c.Edges, 4)
	require.True(t, c.Nodes[4].Sink)
}

func TestExpandDuplicateTransitions(t *testing.T) {

	// duplicate rules each emit their own edge; the node is still unique
	ts := TransitionSet{
		{From: "A", To: "B", Input: "INPUT_X"},
		{From: "B", To: "C", Input: "INPUT_Y"},
		{From: "B", To: "C", Input: "INPUT_Y"},
	}

	c := newBuilder(ts, testOptions()).build(1, ts[0])
	require.Equal(t, []string{"A!", "B", "C"}, nodeStates(c))
	require.Len(t, c.Edges, 3)
}

func TestExpandDeterminism(t *testing.T) {

	ts := TransitionSet{
		{From: "A", To: "B", Input: "I_A"},
		{From: "B", To: "C", Input: "I_B"},
		{From: "B", To: "D", Input: "I_C"},
		{From: "D", To: "B", Input: "I_D"},
	}

	b := newBuilder(ts, testOptions())
	require.Equal(t, b.build(7, ts[0]), b.build(7, ts[0]))
}

func TestClusterSequenceDisambiguates(t *testing.T) {

	ts := TransitionSet{
		{From: "A", To: "B", Input: "INPUT_X"},
	}

	b := newBuilder(ts, testOptions())
	c1 := b.build(1, ts[0])
	c2 := b.build(2, ts[0])

	// same state, different clusters, distinct node identity
	require.Equal(t, 1, c1.Nodes[1].Key.Cluster)
	require.Equal(t, 2, c2.Nodes[1].Key.Cluster)
	require.NotEqual(t, c1.Nodes[1].Key, c2.Nodes[1].Key)
}

func TestSyntheticStartLabel(t *testing.T) {

	start := syntheticStart([]string{"X", "Y"}, "PKT_ERROR", outcome{to: "CLOSED"})
	require.Equal(t, "X\nY", start.From)
	require.Equal(t, "CLOSED", start.To)

	c := newBuilder(TransitionSet{}, testOptions()).build(3, start)
	require.Equal(t, "X\nY", c.Nodes[0].Label)
	require.Equal(t, NodeKey{"X\nY", 3, true}, c.Nodes[0].Key)
	require.True(t, c.Nodes[1].Sink)
}
