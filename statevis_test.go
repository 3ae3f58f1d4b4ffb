package statevis // import "github.com/statevis/statevis"

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExampleStatesTable(t *testing.T) {

	opts := DefaultOptions()
	ts, errs, err := ParseFile("examples/STATES", opts)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Len(t, ts, 28)

	doc := Build(ts, opts)

	// six unusual inputs carry traffic in the example table, and there are
	// three start states
	require.Len(t, doc.Sections, 9)
	for i, sec := range doc.Sections {
		if i < 6 {
			require.True(t, strings.HasPrefix(sec.Label, "error path "), sec.Label)
			require.True(t, sec.RankTB)
		} else {
			require.False(t, sec.RankTB)
		}
	}
	require.Equal(t, "INIT_NOANCHOR", doc.Sections[6].Label)
	require.Equal(t, "INIT_WITHANCHOR", doc.Sections[7].Label)
	require.Equal(t, "NORMAL", doc.Sections[8].Label)

	// every state that errors out converges on CLOSED, so the PKT_ERROR
	// section is a single cluster with one combined origin
	var pktError Section
	for _, sec := range doc.Sections {
		if sec.Label == "error path PKT_ERROR" {
			pktError = sec
		}
	}
	require.Len(t, pktError.Clusters, 1)
	origin := pktError.Clusters[0].Nodes[0]
	require.True(t, origin.Key.Origin)
	require.Len(t, strings.Split(origin.Label, "\n"), 9)

	dot := doc.DOT()
	require.True(t, strings.HasPrefix(dot, "digraph states {\n rankdir=LR;\n"))
	require.True(t, strings.HasSuffix(dot, "}\n"))
	require.Contains(t, dot, ` subgraph cluster_9 {`)
	require.NotContains(t, dot, "cluster_10")
}
