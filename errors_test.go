package scclust

import (
	"strings"
	"testing"
)

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrInvalidInput, "INVALID_INPUT"},
		{ErrNoSolution, "NO_SOLUTION"},
		{ErrTooLargeProblem, "TOO_LARGE_PROBLEM"},
		{ErrTooLargeDigraph, "TOO_LARGE_DIGRAPH"},
		{ErrDistSearch, "DIST_SEARCH_ERROR"},
		{ErrNotImplemented, "NOT_IMPLEMENTED"},
		{ErrorCode(999), "UNKNOWN_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeExtractsFromWrappedError(t *testing.T) {
	err := errInvalidInput("bad input")
	if got := Code(err); got != ErrInvalidInput {
		t.Errorf("Code(err) = %v, want ErrInvalidInput", got)
	}
}

func TestCodeOnNilIsZero(t *testing.T) {
	if got := Code(nil); got != 0 {
		t.Errorf("Code(nil) = %v, want 0", got)
	}
}

func TestCodeOnForeignErrorIsUnknown(t *testing.T) {
	foreign := errUnrelated{}
	if got := Code(foreign); got != ErrUnknown {
		t.Errorf("Code(foreign) = %v, want ErrUnknown", got)
	}
}

type errUnrelated struct{}

func (errUnrelated) Error() string { return "unrelated" }

func TestErrorMessageIncludesLocation(t *testing.T) {
	err := errInvalidInput("something went wrong")
	msg := err.Error()
	if !strings.Contains(msg, "something went wrong") {
		t.Errorf("Error() = %q, missing message", msg)
	}
	if !strings.Contains(msg, "scclust:") {
		t.Errorf("Error() = %q, missing source location tag", msg)
	}
}

func TestFormatLastErrorNilIsNoError(t *testing.T) {
	buf := make([]byte, 64)
	n, fit := FormatLastError(nil, buf)
	if !fit {
		t.Error("buffer of 64 bytes should fit the no-error message")
	}
	if !strings.Contains(string(buf[:n]), "No error") {
		t.Errorf("FormatLastError(nil) = %q, want mention of no error", string(buf[:n]))
	}
}

func TestFormatLastErrorReportsBufferTooSmall(t *testing.T) {
	err := errInvalidInput("a reasonably long message describing the problem")
	buf := make([]byte, 4)
	_, fit := FormatLastError(err, buf)
	if fit {
		t.Error("a 4-byte buffer should not fit a long error message")
	}
}

func TestValidationErrorsAggregates(t *testing.T) {
	var verrs validationErrors
	verrs.add("first problem")
	verrs.add("second problem: %d", 42)
	err := verrs.err()
	if Code(err) != ErrInvalidInput {
		t.Fatalf("Code(err) = %v, want ErrInvalidInput", Code(err))
	}
	msg := err.Error()
	if !strings.Contains(msg, "first problem") || !strings.Contains(msg, "second problem: 42") {
		t.Errorf("aggregated error missing a sub-message: %s", msg)
	}
}

func TestValidationErrorsEmptyIsNil(t *testing.T) {
	var verrs validationErrors
	if err := verrs.err(); err != nil {
		t.Errorf("err() = %v, want nil for no added problems", err)
	}
}
