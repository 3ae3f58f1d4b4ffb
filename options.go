package statevis // import "github.com/statevis/statevis"

// DefaultUnusual is the fixed set of input symbols routed to error-path
// clusters: external chain events, peer errors and close signals.  The order
// is the emission order of the error-path sections.
var DefaultUnusual = []string{
	"BITCOIN_ANCHOR_OTHERSPEND",
	"BITCOIN_ANCHOR_OURCOMMIT_DELAYPASSED",
	"BITCOIN_ANCHOR_THEIRSPEND",
	"BITCOIN_ANCHOR_TIMEOUT",
	"BITCOIN_ANCHOR_UNSPENT",
	"PKT_ERROR",
	"PKT_CLOSE",
	"CMD_CLOSE",
}

// DefaultStartMarkers are the substrings identifying start states.
var DefaultStartMarkers = []string{"INIT", "NORMAL"}

// DefaultOptions returns default values
func DefaultOptions() Options {
	return Options{
		Name:         "states",
		Unusual:      DefaultUnusual,
		StartMarkers: DefaultStartMarkers,
		Logger:       &nilLogger{},
	}
}

// Options contains options for parsing the table and building the document
type Options struct {

	// Name is the graph name of the emitted document.
	Name string

	// Unusual lists the input symbols treated as error/timeout/close
	// conditions, in error-path section emission order.
	Unusual []string

	// StartMarkers lists the substrings marking a state as a start state.
	StartMarkers []string

	// IncludeSelfLoops also emits self-loop transitions discovered during
	// expansion.  The starting transition of a cluster is always emitted.
	IncludeSelfLoops bool

	// IncludeUnusual also emits unusual-input transitions discovered during
	// expansion, instead of confining them to the error-path sections.
	IncludeUnusual bool

	// Logger is a logger that implements the logging interface
	Logger Logger
}

func (o Options) logger() Logger {
	if o.Logger == nil {
		return &nilLogger{}
	}
	return o.Logger
}

func (o Options) unusualSet() map[string]bool {
	set := make(map[string]bool, len(o.Unusual))
	for _, u := range o.Unusual {
		set[u] = true
	}
	return set
}
