package statevis // import "github.com/statevis/statevis"

// Build assembles the graph document for a transition set: one error-path
// section per unusual input that has transitions, then one section per start
// state.  Cluster sequence numbers increase across the whole run so node
// identifiers never collide between clusters.
func Build(ts TransitionSet, opts Options) Document {
	return build(ts, opts)
}

func build(ts TransitionSet, opts Options) Document {
	b := newBuilder(ts, opts)
	doc := Document{Name: opts.Name}

	seq := 0

	for _, u := range opts.Unusual {
		keys, groups := groupByInput(ts, u)
		if len(keys) == 0 {
			continue
		}

		sec := Section{Label: "error path " + u, RankTB: true}
		for _, k := range keys {
			seq++
			sec.Clusters = append(sec.Clusters, b.build(seq, syntheticStart(groups[k], u, k)))
		}
		doc.Sections = append(doc.Sections, sec)
	}

	for _, s := range ts.StartStates(opts.StartMarkers) {
		sec := Section{Label: s}
		for _, t := range ts.From(s) {
			if b.unusual[t.Input] {
				continue
			}
			seq++
			sec.Clusters = append(sec.Clusters, b.build(seq, t))
		}
		doc.Sections = append(doc.Sections, sec)
	}

	opts.logger().Debug("built document", "sections", len(doc.Sections), "clusters", seq)
	return doc
}
