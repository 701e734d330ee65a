package scclust

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/hashicorp/go-multierror"
)

// ErrorCode classifies the error taxonomy of §4.F / §7.
type ErrorCode int

const (
	ErrUnknown ErrorCode = iota + 1
	ErrInvalidInput
	ErrNoMemory
	ErrNoSolution
	ErrTooLargeProblem
	ErrTooLargeDigraph
	ErrDistSearch
	ErrNotImplemented
)

func (c ErrorCode) String() string {
	switch c {
	case ErrUnknown:
		return "UNKNOWN_ERROR"
	case ErrInvalidInput:
		return "INVALID_INPUT"
	case ErrNoMemory:
		return "NO_MEMORY"
	case ErrNoSolution:
		return "NO_SOLUTION"
	case ErrTooLargeProblem:
		return "TOO_LARGE_PROBLEM"
	case ErrTooLargeDigraph:
		return "TOO_LARGE_DIGRAPH"
	case ErrDistSearch:
		return "DIST_SEARCH_ERROR"
	case ErrNotImplemented:
		return "NOT_IMPLEMENTED"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Error is the value every fallible operation in this package returns
// instead of the C core's global last-error record (see Design Note 9).
// It carries the same three pieces of information §6's retrieval operation
// formats into a buffer: a tag, a source location, and a message.
type Error struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("(scclust:%s:%d) %s", e.File, e.Line, e.Code)
	}
	return fmt.Sprintf("(scclust:%s:%d) %s", e.File, e.Line, e.Message)
}

// newError builds an *Error carrying the caller's source location, mirroring
// iscc_make_error__'s use of __FILE__/__LINE__.
func newError(code ErrorCode, msg string) *Error {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "unknown file", -1
	}
	return &Error{Code: code, Message: msg, File: file, Line: line}
}

func errTooLargeDigraph() error {
	return newError(ErrTooLargeDigraph, "digraph exceeds the maximum supported arc count")
}

func errInvalidInput(msg string) error {
	return newError(ErrInvalidInput, msg)
}

func errNoSolution(msg string) error {
	return newError(ErrNoSolution, msg)
}

func errTooLargeProblem(msg string) error {
	return newError(ErrTooLargeProblem, msg)
}

func errDistSearch(msg string) error {
	return newError(ErrDistSearch, msg)
}

// Code extracts the ErrorCode from err, or ErrUnknown if err was not
// produced by this package.
func Code(err error) ErrorCode {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// FormatLastError copies err's formatted message into buf and reports
// whether buf was large enough, mirroring scc_get_latest_error's contract
// for callers porting from the C retrieval model. Unlike the C core, no
// process-global state is consulted: the error to format is passed in
// explicitly.
func FormatLastError(err error, buf []byte) (int, bool) {
	if err == nil {
		n := copy(buf, "(scclust) No error.")
		return n, n == len("(scclust) No error.")
	}
	s := err.Error()
	n := copy(buf, s)
	return n, n == len(s)
}

// validationErrors collects every violated precondition instead of
// failing on the first, per hashicorp-terraform's use of go-multierror for
// config diagnostics.
type validationErrors struct {
	merr *multierror.Error
}

func (v *validationErrors) add(format string, args ...interface{}) {
	v.merr = multierror.Append(v.merr, fmt.Errorf(format, args...))
}

func (v *validationErrors) err() error {
	if v.merr == nil || len(v.merr.Errors) == 0 {
		return nil
	}
	return newError(ErrInvalidInput, v.merr.Error())
}
