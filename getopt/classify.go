package getopt

// argKind is the classification of a single argument token.
type argKind uint8

const (
	kindPlain argKind = iota // not an option
	kindEnd                  // "--", ends option scanning
	kindShort                // "-x" or a cluster "-xyz"
	kindLong                 // "--name"
)

// classify categorizes a token by its first three bytes. A bare "-" is
// plain, matching the usual convention of "-" meaning stdin.
func classify(tok string) argKind {
	if len(tok) < 2 || tok[0] != '-' {
		return kindPlain
	}
	if tok[1] == '-' {
		if len(tok) > 2 {
			return kindLong
		}
		return kindEnd
	}
	return kindShort
}

// acceptable reports whether a token may be consumed as a positional
// argument for an option. Plain tokens always qualify. A short-looking token
// qualifies only when the byte after the dash is a decimal digit, so that
// negative numbers such as "-5" pass through without being mistaken for an
// option. Long options and the end marker never qualify.
func acceptable(tok string) bool {
	switch classify(tok) {
	case kindPlain:
		return true
	case kindShort:
		return tok[1] >= '0' && tok[1] <= '9'
	default:
		return false
	}
}
