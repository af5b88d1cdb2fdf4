// Package planner drives the overlap engine over a whole pattern set.
//
// The planner compares every unordered pair of declared patterns once and
// collects the pairs that can match a common concrete path into a Report.
//
// Key responsibilities:
//   - Select the overlap algorithm by name
//   - Pairwise conflict detection in a deterministic order
//   - Checking a single candidate pattern against a declared set
package planner
