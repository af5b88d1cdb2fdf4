package overlap

import "github.com/danieljhkim/pathoverlap/internal/pattern"

// Recursive decides overlap by recursing on the tails of both patterns.
// It short-circuits quickly on disjoint literals but branches three ways
// at every step involving a glob, so facing glob runs are exponential.
// Use it as a reference, not in production.
func Recursive(a, b pattern.Pattern) bool {
	switch {
	case len(a) == 0 && len(b) == 0:
		return true
	case len(a) == 0:
		// only a glob can shrink to meet an exhausted side
		return b[0].IsGlob() && Recursive(a, b[1:])
	case len(b) == 0:
		return a[0].IsGlob() && Recursive(a[1:], b)
	}

	fa, fb := a[0], b[0]
	switch {
	case fa.IsGlob() || fb.IsGlob():
		// advance together, or let one side's glob keep matching while the
		// other advances; a glob that advances alone matches zero fragments
		return Recursive(a[1:], b[1:]) ||
			Recursive(a, b[1:]) ||
			Recursive(a[1:], b)
	case fa.Kind == pattern.Literal && fb.Kind == pattern.Literal:
		return fa.Text == fb.Text && Recursive(a[1:], b[1:])
	default:
		// a wildcard on either side consumes exactly one fragment
		return Recursive(a[1:], b[1:])
	}
}
