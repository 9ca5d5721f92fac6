package mini

import (
	"errors"
	"fmt"

	"github.com/cznic/mathutil"
)

type ErrorKind int

const (
	MalformedStatement ErrorKind = iota
	ArityError
	UndefinedVariable
	IntegerParseError
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedStatement:
		return "malformed statement"
	case ArityError:
		return "arity error"
	case UndefinedVariable:
		return "undefined variable"
	case IntegerParseError:
		return "integer parse error"
	}
	panic("unreachable")
}

var (
	ErrMalformedStatement = errors.New("malformed statement")
	ErrArity              = errors.New("wrong number of operands")
	ErrUndefinedVariable  = errors.New("undefined variable")
	ErrIntegerParse       = errors.New("invalid integer literal")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case MalformedStatement:
		return ErrMalformedStatement
	case ArityError:
		return ErrArity
	case UndefinedVariable:
		return ErrUndefinedVariable
	case IntegerParseError:
		return ErrIntegerParse
	}
	panic("unreachable")
}

// Error is returned for every failure while parsing or executing a line.
// It matches its kind's sentinel with errors.Is.
type Error struct {
	Pos   Pos
	Kind  ErrorKind
	Line  string
	msg   string
	cause error
}

func NewError(pos Pos, kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Pos:  pos,
		Kind: kind,
		msg:  fmt.Sprintf(format, args...),
	}
}

func (e *Error) withLine(line string) *Error {
	e.Line = line
	return e
}

func (e *Error) withCause(err error) *Error {
	e.cause = err
	return e
}

const maxSnippet = 40

func (e *Error) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("%s: error: %s: %s", e.Pos, e.Kind, e.msg)
	}
	snippet := e.Line[:mathutil.Clamp(maxSnippet, 0, len(e.Line))]
	if len(snippet) < len(e.Line) {
		snippet += "..."
	}
	return fmt.Sprintf("%s: error: %s: %s (in %q)", e.Pos, e.Kind, e.msg, snippet)
}

func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.cause}
}
