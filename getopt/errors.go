package getopt

// ErrorKind tells an ErrorFunc which key space an unrecognized option came
// from.
type ErrorKind uint8

const (
	// KindShort marks an unknown character inside a short option cluster.
	KindShort ErrorKind = iota
	// KindLong marks an unknown long option name.
	KindLong
)

func (k ErrorKind) String() string {
	switch k {
	case KindShort:
		return "short"
	case KindLong:
		return "long"
	default:
		return "unknown"
	}
}

// TableError reports an invalid option table. Exactly one of Short and Long
// identifies the duplicated key. Validate returns it; Parse panics with it.
type TableError struct {
	Short byte   // duplicated short character, 0 when the duplicate is long
	Long  string // duplicated long name, "" when the duplicate is short
}

func (e *TableError) Error() string {
	if e.Short != 0 {
		return "getopt: duplicate short option '" + string(e.Short) + "'"
	}
	return "getopt: duplicate long option \"" + e.Long + "\""
}
