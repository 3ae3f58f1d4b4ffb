package statevis // import "github.com/statevis/statevis"

import (
	"sort"
)

// outcome is the destination of an unusual-input transition: the resulting
// state together with the emitted output, if any.
type outcome struct {
	to     string
	output string
}

// groupByInput groups the origins of every transition triggered by input,
// keyed by outcome.  Origin states that converge on the same outcome are
// rendered as one combined starting node, so each group's origins come back
// sorted, and the keys are returned in sorted (to, output) order for
// deterministic emission.
func groupByInput(ts TransitionSet, input string) ([]outcome, map[outcome][]string) {
	groups := map[outcome][]string{}
	for _, t := range ts {
		if t.Input != input {
			continue
		}
		k := outcome{to: t.To, output: t.Output}
		groups[k] = append(groups[k], t.From)
	}

	keys := make([]outcome, 0, len(groups))
	for k := range groups {
		sort.Strings(groups[k])
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].to != keys[j].to {
			return keys[i].to < keys[j].to
		}
		return keys[i].output < keys[j].output
	})

	return keys, groups
}
