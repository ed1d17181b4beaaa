package getopt

// cursor is a consuming view over the argument vector. It supports a single
// step of pushback: unget may only rewind the most recent next, never
// deeper. The underlying slice is never modified or copied.
type cursor struct {
	args  []string
	pos   int
	ungot bool // set by unget, cleared by next
}

// next consumes and returns the next token. ok is false once the vector is
// exhausted.
func (c *cursor) next() (tok string, ok bool) {
	if c.pos >= len(c.args) {
		return "", false
	}
	tok = c.args[c.pos]
	c.pos++
	c.ungot = false
	return tok, true
}

// unget rewinds the cursor by exactly one token. Pushback depth is capped at
// one by contract; a second unget without an intervening next, or an unget
// at the start of the vector, is a bug in the scanner and panics.
func (c *cursor) unget() {
	if c.pos == 0 || c.ungot {
		panic("getopt: cursor pushback depth exceeded")
	}
	c.pos--
	c.ungot = true
}

// rest returns the unconsumed remainder of the vector as a subslice.
func (c *cursor) rest() []string {
	return c.args[c.pos:]
}
