// Package overlap decides whether two path patterns can match a common
// concrete path.
//
// Three implementations of the same recurrence are provided:
//   - Recursive: direct recursion, exponential on facing glob runs
//   - Table: full (|a|+1)x(|b|+1) dynamic programming table
//   - Rolling: the table recurrence keeping only two rows
//
// All three return identical results. Overlap uses Rolling.
package overlap

import (
	"fmt"
	"sort"

	"github.com/danieljhkim/pathoverlap/internal/pattern"
)

// Algorithm decides overlap of two patterns.
type Algorithm func(a, b pattern.Pattern) bool

// Algorithm names accepted by Lookup.
const (
	NameRecursive = "recursive"
	NameTable     = "table"
	NameRolling   = "rolling"

	// DefaultName is the algorithm used when none is configured.
	DefaultName = NameRolling
)

var algorithms = map[string]Algorithm{
	NameRecursive: Recursive,
	NameTable:     Table,
	NameRolling:   Rolling,
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	alg, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownAlgorithm, name, Names())
	}
	return alg, nil
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Overlap reports whether some concrete path matches both a and b.
func Overlap(a, b pattern.Pattern) bool {
	return Rolling(a, b)
}
