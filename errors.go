package statevis // import "github.com/statevis/statevis"

import (
	"fmt"
)

// ErrMalformedLine is raised for a table line matching neither the
// state-declaration nor the transition pattern.  It is reported and skipped;
// parsing continues with the remaining lines.
type ErrMalformedLine struct {
	Line int
	Text string
}

func (e ErrMalformedLine) Error() string {
	return fmt.Sprintf("could not parse line %d: %q", e.Line, e.Text)
}

// ErrOrphanTransition is raised when a transition line appears before any
// base-state declaration, leaving it without a From state.
type ErrOrphanTransition struct {
	Line int
	Text string
}

func (e ErrOrphanTransition) Error() string {
	return fmt.Sprintf("transition before any state declaration at line %d: %q", e.Line, e.Text)
}
