package obj

import "fmt"

// DiagnosticKind classifies a record the parser could not use
type DiagnosticKind int

const (
	MalformedVertex DiagnosticKind = iota
	MalformedFace
	IndexOutOfRange
)

func (k DiagnosticKind) String() string {
	switch k {
	case MalformedVertex:
		return "malformed-vertex"
	case MalformedFace:
		return "malformed-face"
	case IndexOutOfRange:
		return "index-out-of-range"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic describes a skipped v record or a dropped f record.
// In strict mode it is returned as the parse error.
type Diagnostic struct {
	Line int
	Kind DiagnosticKind
	Err  error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %s: %v", d.Line, d.Kind, d.Err)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}
