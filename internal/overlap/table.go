package overlap

import "github.com/danieljhkim/pathoverlap/internal/pattern"

// cell computes whether the prefixes ending in fa and fb overlap, given the
// results for the neighboring prefixes:
//
//	diag: both prefixes one shorter
//	up:   the a prefix one shorter
//	left: the b prefix one shorter
//
// A glob on either side may reach up or left: it either matches nothing or
// keeps absorbing fragments of the other side.
func cell(fa, fb pattern.Fragment, diag, up, left bool) bool {
	switch {
	case fa.IsGlob() || fb.IsGlob():
		return diag || up || left
	case fa.Kind == pattern.Literal && fb.Kind == pattern.Literal:
		return diag && fa.Text == fb.Text
	default:
		return diag
	}
}

// Table decides overlap with a full dynamic programming table.
// memo[i][j] reports whether a[:i] and b[:j] overlap. Time and space are
// O(|a|*|b|).
func Table(a, b pattern.Pattern) bool {
	m, n := len(a)+1, len(b)+1

	memo := make([][]bool, m)
	backing := make([]bool, m*n)
	for i := range memo {
		memo[i] = backing[i*n : (i+1)*n]
	}

	memo[0][0] = true
	for i := 1; i < m; i++ {
		memo[i][0] = memo[i-1][0] && a[i-1].IsGlob()
	}
	for j := 1; j < n; j++ {
		memo[0][j] = memo[0][j-1] && b[j-1].IsGlob()
	}

	for i := 1; i < m; i++ {
		for j := 1; j < n; j++ {
			memo[i][j] = cell(a[i-1], b[j-1], memo[i-1][j-1], memo[i-1][j], memo[i][j-1])
		}
	}
	return memo[m-1][n-1]
}
