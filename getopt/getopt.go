// Package getopt implements a zero-allocation, callback-driven command-line
// option scanner.
//
// The caller supplies an immutable table of Option specifications and a
// Config bundling the argument vector and callbacks. Parse walks the vector
// left to right, dispatching matched options to their handlers together with
// any space-separated positional arguments they collect, and hands everything
// from the first non-option token onward to the positional callback.
//
// Control flow is driven entirely by integer results: every callback returns
// 0 to continue scanning or a nonzero value to terminate the whole scan
// immediately, and Parse returns exactly the value of the callback that
// terminated it (or 0 on a complete scan). Callbacks may recursively call
// Parse on an advanced vector, which is the supported way to accept options
// after positional arguments.
//
// The hot path performs no heap allocations: argument spans handed to
// callbacks are subslices of the caller's vector, and the per-parse lookup
// index is built in pooled scratch.
package getopt

// HandlerFunc is invoked when an option matches, or as the positional
// callback once scanning ends.
//
// For an option handler, args holds the positional arguments collected for
// the option, up to its MaxArgs cap. A short option that is a non-final
// member of a cluster such as "-abc" is always invoked with no arguments
// regardless of its cap. For the positional callback, args is the entire
// unconsumed remainder of the vector.
//
// args aliases the vector passed to Parse and is only valid for the duration
// of the call. A nonzero return terminates the scan and becomes the result
// of Parse.
type HandlerFunc func(args []string, data any) int

// ErrorFunc is invoked for an unrecognized option. kind selects which of
// short and long carries the offending key. Returning 0 resumes scanning at
// the next cluster character or token; a nonzero return terminates the scan
// with that value.
type ErrorFunc func(kind ErrorKind, short byte, long string, data any) int

// Option specifies a single recognized option. At least one of Short and
// Long should be set; an Option with neither is inert and never matched.
// The table passed to Parse must not be modified during the call.
type Option struct {
	Short byte   // short option character, 0 for none
	Long  string // long option name, "" for none

	// MaxArgs caps the positional arguments collected after the option.
	// -1 collects until the next option token or end of input.
	MaxArgs int

	// Handle is invoked after collection. A nil Handle consumes the
	// option and its arguments silently.
	Handle HandlerFunc
}

// FirstAction selects what Parse does with the first element of the vector.
type FirstAction uint8

const (
	// FirstSkip consumes the first element without classifying it. This
	// is the conventional disposition when the vector is os.Args, whose
	// first element is the program name.
	FirstSkip FirstAction = iota
	// FirstParse scans the first element like any other token.
	FirstParse
)

// EndAction selects how the "--" end-of-options marker is treated.
type EndAction uint8

const (
	// EndAllow consumes "--" and hands every token after it to the
	// positional callback.
	EndAllow EndAction = iota
	// EndDisallow reclassifies "--" as an ordinary non-option token, so
	// the positional callback receives the remainder starting with the
	// literal "--".
	EndDisallow
)

// Config bundles the argument vector, dispositions, and callbacks for a
// single Parse call. Data is passed unchanged to every callback.
type Config struct {
	Args []string

	First FirstAction
	End   EndAction

	// OnError is invoked for unrecognized options. Nil means unrecognized
	// options are skipped and scanning continues.
	OnError ErrorFunc

	// OnArgs receives the unconsumed remainder once the first non-option
	// token (or the end-of-options marker) is reached. Nil discards the
	// remainder.
	OnArgs HandlerFunc

	Data any
}

// Parse scans cfg.Args against the option table and returns 0 on a complete
// scan, or the exact nonzero value of whichever callback terminated it.
//
// The table is validated before any dispatch; Parse panics with a
// *TableError if two options declare the same Short or the same Long key.
// Use Validate to check a table without parsing.
func Parse(cfg *Config, opts []Option) int {
	lx, err := buildLookup(opts)
	if err != nil {
		panic(err)
	}
	defer lx.release()

	cur := cursor{args: cfg.Args}
	if cfg.First == FirstSkip {
		cur.next()
	}
	return scan(cfg, &lx, &cur)
}

// Validate checks an option table for duplicate Short or Long keys and
// returns a *TableError describing the first duplicate found, or nil.
func Validate(opts []Option) error {
	lx, err := buildLookup(opts)
	if err != nil {
		return err
	}
	lx.release()
	return nil
}
