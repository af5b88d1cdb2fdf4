package planner

import (
	"github.com/danieljhkim/pathoverlap/internal/overlap"
	"github.com/danieljhkim/pathoverlap/internal/pattern"
	"github.com/danieljhkim/pathoverlap/internal/ruleset"
)

// ConflictChecker finds overlapping patterns in a pattern set.
type ConflictChecker struct {
	name     string
	overlaps overlap.Algorithm
}

// NewConflictChecker creates a ConflictChecker using the named overlap
// algorithm. An empty name selects overlap.DefaultName.
func NewConflictChecker(algorithm string) (*ConflictChecker, error) {
	if algorithm == "" {
		algorithm = overlap.DefaultName
	}
	alg, err := overlap.Lookup(algorithm)
	if err != nil {
		return nil, err
	}
	return &ConflictChecker{
		name:     algorithm,
		overlaps: alg,
	}, nil
}

// Algorithm returns the name of the algorithm in use.
func (c *ConflictChecker) Algorithm() string {
	return c.name
}

// Overlaps reports whether a and b can match a common path.
func (c *ConflictChecker) Overlaps(a, b pattern.Pattern) bool {
	return c.overlaps(a, b)
}

// Check compares every unordered pair of entries once. Pairs are visited
// with the later entry first: (1,0), (2,0), (2,1), (3,0), ...
func (c *ConflictChecker) Check(entries []ruleset.Entry) *Report {
	report := NewReport(c.name, len(entries))
	for i := 1; i < len(entries); i++ {
		for j := 0; j < i; j++ {
			report.Comparisons++
			if !c.overlaps(entries[i].Pattern, entries[j].Pattern) {
				continue
			}
			report.AddConflict(Conflict{
				Left:       entries[i],
				Right:      entries[j],
				LeftIndex:  i,
				RightIndex: j,
			})
		}
	}
	return report
}

// CheckAgainst returns the entries that candidate overlaps, in input order.
func (c *ConflictChecker) CheckAgainst(entries []ruleset.Entry, candidate pattern.Pattern) []ruleset.Entry {
	matches := []ruleset.Entry{}
	for _, e := range entries {
		if c.overlaps(candidate, e.Pattern) {
			matches = append(matches, e)
		}
	}
	return matches
}
