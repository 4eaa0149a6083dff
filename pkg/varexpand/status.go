package varexpand

import (
	"errors"
	"fmt"
	"strconv"
)

// Status is the outcome of a directive or of a whole expansion. Lower is
// more severe.
type Status int

const (
	StatusFatal       Status = -1
	StatusUnsupported Status = 0
	StatusOK          Status = 1
)

func (s Status) String() string {
	switch s {
	case StatusFatal:
		return "fatal"
	case StatusUnsupported:
		return "unsupported"
	case StatusOK:
		return "ok"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}

// Worse returns the more severe of s and o.
func (s Status) Worse(o Status) Status {
	if o < s {
		return o
	}
	return s
}

// normalize folds arbitrary callback return values onto the three states.
func (s Status) normalize() Status {
	switch {
	case s > 0:
		return StatusOK
	case s < 0:
		return StatusFatal
	default:
		return StatusUnsupported
	}
}

var (
	// ErrParse reports a malformed directive.
	ErrParse = errors.New("malformed directive")

	// ErrMaxDepth reports nested expansion deeper than Config.MaxDepth.
	ErrMaxDepth = errors.New("maximum expansion depth exceeded")

	// ErrUnknownVariable reports a key nothing could resolve.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrFuncDeclined wraps the error of a function returning StatusUnsupported.
	ErrFuncDeclined = errors.New("function declined")

	// ErrFuncFailed wraps the error of a function returning StatusFatal.
	ErrFuncFailed = errors.New("function failed")

	// ErrUnknownAlgorithm reports a hash directive naming no known algorithm.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

	// ErrHashOptions reports invalid hash options.
	ErrHashOptions = errors.New("cannot parse hash arguments")
)

// DirectiveError locates a failed directive in its template.
type DirectiveError struct {
	// Pos is the byte offset of the '%' in the template.
	Pos int
	// Directive is the directive text, '%' included.
	Directive string
	Err       error
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("%q at offset %d: %v", e.Directive, e.Pos, e.Err)
}

func (e *DirectiveError) Unwrap() error {
	return e.Err
}

// wrapf wraps sentinel with a message and, when cause is non-nil, cause.
func wrapf(sentinel, cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	return fmt.Errorf("%w: %s: %w", sentinel, msg, cause)
}
