package statevis // import "github.com/statevis/statevis"

import (
	"fmt"
	"io"
	"strings"
)

// DOT serializes the document in Graphviz DOT format: a single digraph with
// one subgraph per section, numbered in emission order.
func (d Document) DOT() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "digraph %s {\n", d.Name)
	sb.WriteString(" rankdir=LR;\n")

	for i, sec := range d.Sections {
		fmt.Fprintf(&sb, " subgraph cluster_%d {\n", i+1)
		fmt.Fprintf(&sb, "   label = \"%s\"\n", sec.Label)
		if sec.RankTB {
			sb.WriteString("   rankdir=TB;\n")
		}
		for _, c := range sec.Clusters {
			writeCluster(&sb, c)
		}
		sb.WriteString(" }\n")
	}

	sb.WriteString("}\n")
	return sb.String()
}

// WriteDOT writes the DOT serialization to w.
func (d Document) WriteDOT(w io.Writer) error {
	_, err := io.WriteString(w, d.DOT())
	return err
}

// writeCluster emits node declarations interleaved with edges in discovery
// order, then the sink styling pass.
func writeCluster(sb *strings.Builder, c Cluster) {
	labels := map[NodeKey]string{}
	for _, n := range c.Nodes {
		labels[n.Key] = n.Label
	}

	declared := map[NodeKey]bool{}
	declare := func(k NodeKey) {
		if declared[k] {
			return
		}
		declared[k] = true
		fmt.Fprintf(sb, " %s [label=\"%s\"];\n", nodeID(k), escapeLabel(labels[k]))
	}

	for _, e := range c.Edges {
		declare(e.From)
		declare(e.To)
		fmt.Fprintf(sb, "   %s -> %s [label=\"%s\"];\n", nodeID(e.From), nodeID(e.To), edgeLabel(e))
	}

	for _, n := range c.Nodes {
		if n.Sink {
			fmt.Fprintf(sb, " %s [color=coral, style=filled];\n", nodeID(n.Key))
		}
	}
}

// nodeID renders the unique identifier of a node: the state name suffixed
// with the cluster sequence, plus an origin marker for cluster entry points.
// A combined multi-line origin has no usable state name, so its identifier is
// the sequence and marker alone.
func nodeID(k NodeKey) string {
	if strings.Contains(k.State, "\n") {
		return fmt.Sprintf("_%d_O", k.Cluster)
	}
	id := fmt.Sprintf("%s_%d", k.State, k.Cluster)
	if k.Origin {
		id += "_O"
	}
	return id
}

// edgeLabel shows the input, plus the output on a second line when present.
func edgeLabel(e Edge) string {
	lbl := "<" + e.Input
	if e.Output != "" {
		lbl += `\n>` + e.Output
	}
	return lbl
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
