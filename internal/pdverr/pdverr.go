// Package pdverr defines the error-kind taxonomy used across the polyglot
// assembler: Usage, Io, BadImage, BadArchive, ScriptOversize, BadArguments,
// and Invariant (internal bugs or corrupt input that should never surface
// for well-formed files).
package pdverr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is one of the seven error categories the pipeline reports.
type Kind int

const (
	Usage Kind = iota
	Io
	BadImage
	BadArchive
	ScriptOversize
	BadArguments
	Invariant
)

func (k Kind) String() string {
	switch k {
	case Usage:
		return "Usage"
	case Io:
		return "Io"
	case BadImage:
		return "BadImage"
	case BadArchive:
		return "BadArchive"
	case ScriptOversize:
		return "ScriptOversize"
	case BadArguments:
		return "BadArguments"
	case Invariant:
		return "Invariant"
	default:
		return "Unknown"
	}
}

// Error carries a Kind alongside the wrapped cause so callers can branch on
// the kind (for exit codes) while still printing a full cause chain with
// "%+v" when -v is given.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error { return e.err }

// Format prints the cause chain with its stack trace for "%+v"; every other
// verb prints Error().
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') && e.err != nil {
		fmt.Fprintf(s, "%s: %+v", e.Kind, e.err)
		return
	}
	if verb == 'q' {
		fmt.Fprintf(s, "%q", e.Error())
		return
	}
	fmt.Fprint(s, e.Error())
}

// New creates a Kind error with no underlying cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, msg: msg, err: errors.New(msg)}
}

// Newf creates a Kind error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap attaches a Kind to an existing error, preserving it as the cause.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, msg: msg, err: errors.Wrap(err, msg)}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(kind Kind, err error, format string, args ...interface{}) error {
	return Wrap(kind, err, fmt.Sprintf(format, args...))
}

// KindOf extracts the Kind from err, defaulting to Invariant for errors that
// never passed through this package (a bug, since every pipeline stage is
// expected to wrap its own failures).
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return Invariant
}

// ExitCode maps a Kind to a CLI process exit status.
func ExitCode(kind Kind) int {
	switch kind {
	case Usage:
		return 64
	case Io:
		return 74
	case BadImage, BadArchive, ScriptOversize, BadArguments:
		return 65
	case Invariant:
		return 70
	default:
		return 1
	}
}
