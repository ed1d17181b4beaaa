package getopt

import "github.com/dzonerzy/go-getopt/internal/fuzzy"

// SuggestLong returns the long option name from opts closest to name within
// maxDistance edits, or "" when nothing is close enough. Intended for use
// inside an ErrorFunc to build a "did you mean" message; dispatch itself
// never performs fuzzy matching.
func SuggestLong(name string, opts []Option, maxDistance int) string {
	names := make([]string, 0, len(opts))
	for i := range opts {
		if opts[i].Long != "" {
			names = append(names, opts[i].Long)
		}
	}
	return fuzzy.NewMatcher(maxDistance).FindBest(name, names)
}
