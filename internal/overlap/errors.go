package overlap

import "errors"

// ErrUnknownAlgorithm is returned by Lookup for an unregistered name.
var ErrUnknownAlgorithm = errors.New("unknown overlap algorithm")
