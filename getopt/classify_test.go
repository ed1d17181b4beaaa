//nolint:testpackage // using package name 'getopt' to access unexported internals for testing
package getopt

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		tok  string
		want argKind
	}{
		{"file.txt", kindPlain},
		{"", kindPlain},
		{"-", kindPlain}, // bare dash is conventionally stdin
		{"--", kindEnd},
		{"-v", kindShort},
		{"-abc", kindShort},
		{"-5", kindShort},
		{"--verbose", kindLong},
		{"--v", kindLong},
		{"---", kindLong}, // long option named "-"
		{"a-b", kindPlain},
	}

	for _, tc := range cases {
		if got := classify(tc.tok); got != tc.want {
			t.Errorf("classify(%q) = %v, want %v", tc.tok, got, tc.want)
		}
	}
}

func TestAcceptableOptionArguments(t *testing.T) {
	cases := []struct {
		tok  string
		want bool
	}{
		{"value", true},
		{"-", true},
		{"", true},
		{"-5", true},   // negative number passes through
		{"-123", true}, // any digit after the dash qualifies
		{"-a", false},  // looks like an option
		{"--out", false},
		{"--", false}, // end marker never consumed as an argument
	}

	for _, tc := range cases {
		if got := acceptable(tc.tok); got != tc.want {
			t.Errorf("acceptable(%q) = %v, want %v", tc.tok, got, tc.want)
		}
	}
}
