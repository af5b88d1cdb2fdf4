package overlap

import "github.com/danieljhkim/pathoverlap/internal/pattern"

// Rolling decides overlap with the same recurrence as Table but keeps only
// the previous and current rows. Rows are indexed by the shorter pattern,
// so space is O(min(|a|,|b|)).
func Rolling(a, b pattern.Pattern) bool {
	// the recurrence is symmetric, so the shorter pattern can be the columns
	if len(b) > len(a) {
		a, b = b, a
	}
	n := len(b) + 1

	prev := make([]bool, n)
	cur := make([]bool, n)
	cur[0] = true
	for j := 1; j < n; j++ {
		cur[j] = cur[j-1] && b[j-1].IsGlob()
	}

	for i := 1; i <= len(a); i++ {
		prev, cur = cur, prev
		cur[0] = prev[0] && a[i-1].IsGlob()
		for j := 1; j < n; j++ {
			cur[j] = cell(a[i-1], b[j-1], prev[j-1], prev[j], cur[j-1])
		}
	}
	return cur[n-1]
}
