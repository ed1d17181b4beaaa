//nolint:testpackage // using package name 'getopt' to access unexported internals for testing
package getopt

import (
	"strings"
	"testing"
)

// TestProgramStyleScan runs the canonical "prog -v -o file.txt extra" shape
// a real main function would use.
func TestProgramStyleScan(t *testing.T) {
	tr := &trace{}
	opts := []Option{
		{Short: 'v', Long: "verbose", Handle: tr.opt("verbose")},
		{Short: 'o', Long: "output", MaxArgs: 1, Handle: tr.opt("output")},
	}

	cfg := &Config{
		Args:    []string{"prog", "-v", "-o", "file.txt", "extra"},
		First:   FirstSkip,
		OnError: tr.err,
		OnArgs:  tr.args,
	}

	if res := Parse(cfg, opts); res != 0 {
		t.Fatalf("Expected result 0, got %d", res)
	}
	tr.expect(t, "verbose()", "output(file.txt)", "args(extra)")
}

// TestReentrantParse drives the documented pattern for accepting options
// after positional arguments: the positional callback consumes one token and
// recursively parses the rest.
func TestReentrantParse(t *testing.T) {
	var seen []string
	var opts []Option

	cfg := &Config{First: FirstParse}
	cfg.OnArgs = func(rest []string, _ any) int {
		seen = append(seen, "pos:"+rest[0])
		if len(rest) > 1 {
			inner := *cfg
			inner.Args = rest[1:]
			return Parse(&inner, opts)
		}
		return 0
	}
	opts = []Option{{Short: 'v', Handle: func(_ []string, _ any) int {
		seen = append(seen, "v")
		return 0
	}}}

	cfg.Args = []string{"-v", "first", "-v", "second", "-v"}
	if res := Parse(cfg, opts); res != 0 {
		t.Fatalf("Expected result 0, got %d", res)
	}

	got := strings.Join(seen, ",")
	want := "v,pos:first,v,pos:second,v"
	if got != want {
		t.Fatalf("Expected %q, got %q", want, got)
	}
}

// TestReentrantAbortPropagation checks that a nonzero result from a nested
// Parse unwinds only through callbacks that forward it.
func TestReentrantAbortPropagation(t *testing.T) {
	var opts []Option
	cfg := &Config{First: FirstParse}
	cfg.OnArgs = func(rest []string, _ any) int {
		inner := *cfg
		inner.Args = rest[1:]
		return Parse(&inner, opts)
	}
	opts = []Option{{Short: 'x', Handle: func(_ []string, _ any) int { return 9 }}}

	cfg.Args = []string{"stop-here", "-x"}
	if res := Parse(cfg, opts); res != 9 {
		t.Fatalf("Expected nested abort code 9 to propagate, got %d", res)
	}
}

func TestSuggestLong(t *testing.T) {
	opts := []Option{
		{Short: 'v', Long: "verbose"},
		{Short: 'o', Long: "output"},
		{Short: 'q'},
	}

	if got := SuggestLong("verbos", opts, 2); got != "verbose" {
		t.Errorf("Expected suggestion 'verbose', got %q", got)
	}
	if got := SuggestLong("outptu", opts, 2); got != "output" {
		t.Errorf("Expected suggestion 'output', got %q", got)
	}
	if got := SuggestLong("zzzzzz", opts, 2); got != "" {
		t.Errorf("Expected no suggestion, got %q", got)
	}
}

func TestErrorKindString(t *testing.T) {
	if KindShort.String() != "short" || KindLong.String() != "long" {
		t.Error("Unexpected ErrorKind strings")
	}
}

func TestTableErrorMessages(t *testing.T) {
	short := &TableError{Short: 'v'}
	if !strings.Contains(short.Error(), "'v'") {
		t.Errorf("Expected short key in message, got %q", short.Error())
	}
	long := &TableError{Long: "verbose"}
	if !strings.Contains(long.Error(), `"verbose"`) {
		t.Errorf("Expected long key in message, got %q", long.Error())
	}
}
