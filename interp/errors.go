package interp

import (
	"fmt"

	"github.com/RobinBoers/signo/token"
)

// ErrorKind identifies which of the five error categories an error
// value belongs to.
type ErrorKind string

const (
	LexErrorKind       ErrorKind = "LexError"
	ParseErrorKind     ErrorKind = "ParseError"
	ReferenceErrorKind ErrorKind = "ReferenceError"
	TypeErrorKind      ErrorKind = "TypeError"
	RuntimeErrorKind   ErrorKind = "RuntimeError"
)

// Error is the concrete error type shared by every Signo error. Kind
// distinguishes the error's category so the REPL and CLI can format
// errors uniformly and, if ever needed, branch on category — something
// a single untyped error.Error() string cannot offer without a
// parallel tag.
type Error struct {
	Kind     ErrorKind
	Message  string
	Position token.Position
}

// Error implements the error interface, rendering as
// "[<Kind>] <message> at <path>:<row>:<col>".
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s at %s", e.Kind, e.Message, e.Position)
}

func newErrorf(kind ErrorKind, pos token.Position, format string, v ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, v...), Position: pos}
}

// LexErrorf builds a LexError.
func LexErrorf(pos token.Position, format string, v ...interface{}) *Error {
	return newErrorf(LexErrorKind, pos, format, v...)
}

// ParseErrorf builds a ParseError.
func ParseErrorf(pos token.Position, format string, v ...interface{}) *Error {
	return newErrorf(ParseErrorKind, pos, format, v...)
}

// ReferenceErrorf builds a ReferenceError.
func ReferenceErrorf(pos token.Position, format string, v ...interface{}) *Error {
	return newErrorf(ReferenceErrorKind, pos, format, v...)
}

// TypeErrorf builds a TypeError.
func TypeErrorf(pos token.Position, format string, v ...interface{}) *Error {
	return newErrorf(TypeErrorKind, pos, format, v...)
}

// RuntimeErrorf builds a RuntimeError.
func RuntimeErrorf(pos token.Position, format string, v ...interface{}) *Error {
	return newErrorf(RuntimeErrorKind, pos, format, v...)
}
