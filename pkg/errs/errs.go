// Package errs defines the error taxonomy shared by every pipeline stage.
//
// Leaf errors carry a kind, a description and an optional source line.
// Tracebacks wrap exactly one child error and record the line that was being
// processed when the child propagated through a stage.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	IllegalChar Kind = iota
	Runtime
	IllegalArgument
	Syntax
	IllegalCast
	IndexOutOfBounds
	File
	Name
	StackOverflow
	Traceback
)

// String returns the display name of the kind
func (k Kind) String() string {
	switch k {
	case IllegalChar:
		return "Illegal Character"
	case Runtime:
		return "Runtime Error"
	case IllegalArgument:
		return "Illegal Argument"
	case Syntax:
		return "Syntax Error"
	case IllegalCast:
		return "Illegal Cast"
	case IndexOutOfBounds:
		return "Index Out of Bounds"
	case File:
		return "File Error"
	case Name:
		return "Name Error"
	case StackOverflow:
		return "Stack Overflow"
	case Traceback:
		return "Traceback"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
}

// NoLine marks an error without source line information
const NoLine = 0

type Error struct {
	Kind  Kind   // error kind
	Desc  string // description, empty for tracebacks
	Line  int    // 1-based source line, NoLine if unknown
	Child *Error // wrapped error, set only for tracebacks
}

// New creates a leaf error. Tracebacks must be built with Wrap.
func New(kind Kind, desc string, line int) *Error {
	if kind == Traceback {
		panic("errs.New cannot create tracebacks")
	}

	return &Error{Kind: kind, Desc: desc, Line: line}
}

// Newf creates a leaf error with a formatted description
func Newf(kind Kind, line int, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...), line)
}

// Wrap wraps err in a traceback carrying line. A nil err stays nil and
// foreign errors are converted into runtime errors first.
func Wrap(err error, line int) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: Traceback, Line: line, Child: From(err)}
}

// From converts any error into an *Error
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return New(Runtime, err.Error(), NoLine)
}

// KindOf returns the kind of the innermost error in the chain
func KindOf(err error) (Kind, bool) {
	e := From(err)
	if e == nil {
		return 0, false
	}

	return e.Leaf().Kind, true
}

// Leaf returns the innermost non-traceback error
func (e *Error) Leaf() *Error {
	cur := e
	for cur.Child != nil {
		cur = cur.Child
	}

	return cur
}

// Depth returns the number of tracebacks wrapping the leaf
func (e *Error) Depth() int {
	n := 0
	for cur := e; cur.Child != nil; cur = cur.Child {
		n++
	}

	return n
}

// Error renders the chain outermost first, one line per link
func (e *Error) Error() string {
	var sb strings.Builder
	for cur := e; cur != nil; cur = cur.Child {
		if cur != e {
			sb.WriteByte('\n')
		}

		sb.WriteString(cur.Kind.String())
		if cur.Line != NoLine {
			fmt.Fprintf(&sb, " on line %d", cur.Line)
		}

		if cur.Child == nil {
			sb.WriteString(": ")
			sb.WriteString(cur.Desc)
		}
	}

	return sb.String()
}

// Unwrap exposes the wrapped child to the errors package
func (e *Error) Unwrap() error {
	if e.Child == nil {
		return nil
	}

	return e.Child
}
