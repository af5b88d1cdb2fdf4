package planner

import (
	"fmt"

	"github.com/danieljhkim/pathoverlap/internal/ruleset"
)

// Report is the result of checking a pattern set for overlaps.
type Report struct {
	// Algorithm is the name of the overlap algorithm used
	Algorithm string `json:"algorithm"`

	// Patterns is the number of patterns checked
	Patterns int `json:"patterns"`

	// Comparisons is the number of pairs compared
	Comparisons int `json:"comparisons"`

	// Conflicts is the list of overlapping pairs (empty if none)
	Conflicts []Conflict `json:"conflicts"`
}

// Conflict is a pair of declared patterns that can match a common path.
type Conflict struct {
	// Left is the later of the two entries in input order
	Left ruleset.Entry `json:"left"`

	// Right is the earlier of the two entries in input order
	Right ruleset.Entry `json:"right"`

	// LeftIndex and RightIndex are the positions of the entries in the
	// checked slice
	LeftIndex  int `json:"leftIndex"`
	RightIndex int `json:"rightIndex"`
}

// String renders the conflict as "<left> overlaps with <right>".
func (c Conflict) String() string {
	return fmt.Sprintf("%s overlaps with %s", c.Left.Pattern, c.Right.Pattern)
}

// NewReport creates a new empty Report.
func NewReport(algorithm string, patterns int) *Report {
	return &Report{
		Algorithm: algorithm,
		Patterns:  patterns,
		Conflicts: []Conflict{},
	}
}

// HasConflicts returns true if the report has any conflicts.
func (r *Report) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// AddConflict adds a conflict to the report.
func (r *Report) AddConflict(conflict Conflict) {
	r.Conflicts = append(r.Conflicts, conflict)
}

// Pairs returns the conflicts as [left, right] indexes into the checked
// entries, in report order.
func (r *Report) Pairs() [][2]int {
	pairs := make([][2]int, 0, len(r.Conflicts))
	for _, c := range r.Conflicts {
		pairs = append(pairs, [2]int{c.LeftIndex, c.RightIndex})
	}
	return pairs
}
