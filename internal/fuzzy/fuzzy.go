// Package fuzzy provides edit-distance matching for option name suggestions.
// Used by getopt.SuggestLong to propose the closest known long option inside
// caller error callbacks. Matching is purely advisory and never consulted by
// dispatch itself.
package fuzzy

import "strings"

// Matcher finds the closest candidate within a maximum edit distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for very short inputs
	}
}

// FindBest returns the candidate closest to input, or "" when nothing is
// within the maximum distance. Exact matches are skipped; the caller already
// knows the input was not found.
func (m *Matcher) FindBest(input string, candidates []string) string {
	if len(input) < m.minLength {
		return ""
	}

	input = strings.ToLower(input)
	best := ""
	bestDist := m.maxDistance + 1

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		if d := m.distance(input, lower); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// distance computes the Levenshtein distance between a and b, terminating
// early once it provably exceeds the maximum. Uses two rows instead of a
// full matrix.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		minInRow := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			curr[j] = minThree(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution
			)
			if curr[j] < minInRow {
				minInRow = curr[j]
			}
		}

		if minInRow > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func minThree(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
