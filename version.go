package statevis // import "github.com/statevis/statevis"

// Version is the release version of the module.
const Version = "0.1.0"
