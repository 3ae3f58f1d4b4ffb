package statevis // import "github.com/statevis/statevis"

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	// A base-state declaration: the state name followed by a colon.
	reState = regexp.MustCompile(`^([A-Z_]+):$`)

	// A transition rule: indented input, arrow, new state, optional
	// parenthesized output.
	reTrans = regexp.MustCompile(`^\s+([A-Z_]+)\s*->\s*([A-Z_]+)(\s+\(([A-Z_]+)\))?\s*$`)
)

// Parse reads a line-oriented transition table.  A line "STATE:" sets the
// base state for the rules that follow; an indented "INPUT -> STATE (OUTPUT)"
// line appends one transition.  Blank lines are skipped.  Malformed lines are
// reported through the options logger, collected, and skipped; parsing always
// continues, so the returned set holds every well-formed rule.
func Parse(r io.Reader, opts Options) (TransitionSet, []error) {
	log := opts.logger()

	var (
		ts   TransitionSet
		errs []error
		base string
		line int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := scanner.Text()

		if strings.TrimSpace(text) == "" {
			continue
		}

		if m := reState.FindStringSubmatch(text); m != nil {
			base = m[1]
			continue
		}

		if m := reTrans.FindStringSubmatch(text); m != nil {
			if base == "" {
				err := ErrOrphanTransition{Line: line, Text: text}
				log.Error("transition before any state declaration", "line", line, "text", text)
				errs = append(errs, err)
				continue
			}
			ts = append(ts, Transition{
				From:   base,
				To:     m[2],
				Input:  m[1],
				Output: m[4],
			})
			continue
		}

		err := ErrMalformedLine{Line: line, Text: text}
		log.Error("could not parse line", "line", line, "text", text)
		errs = append(errs, err)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}

	log.Debug("parsed transition table", "transitions", len(ts), "errors", len(errs))
	return ts, errs
}

// ParseFile parses the table at path.  The returned error is fatal (the file
// could not be opened); per-line parse errors come back in the slice as in
// Parse.
func ParseFile(path string, opts Options) (TransitionSet, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	ts, errs := Parse(f, opts)
	return ts, errs, nil
}
