package chira

import (
	"errors"
	"fmt"
)

// ErrorKind names a category of statement errors.
type ErrorKind string

// Error kinds. The taxonomy is flat; an error is a kind plus a message.
const (
	SyntaxError            ErrorKind = "SyntaxError"
	NoVariableFoundError   ErrorKind = "NoVariableFoundError"
	InvalidOperatorError   ErrorKind = "InvalidOperatorError"
	InvalidAssignmentError ErrorKind = "InvalidAssignmentError"
	InvalidTypeError       ErrorKind = "InvalidTypeError"
	InvalidValueError      ErrorKind = "InvalidValueError"
	ZeroDivisionError      ErrorKind = "ZeroDivisionError"
)

// Error is the error type for everything that can go wrong while evaluating
// a statement. Errors are returned, never panicked.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// Is lets errors.Is match on the kind of an error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Kind returns a sentinel for kind, to be used with errors.Is.
func Kind(kind ErrorKind) error {
	return &Error{Kind: kind}
}

// IsKind is a predicate: is err (or an error it wraps) of kind k?
func IsKind(err error, k ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

// Syntax creates a SyntaxError. Without a message, a generic one is used.
func Syntax(msg ...string) *Error {
	m := "Statement is invalid"
	if len(msg) > 0 && msg[0] != "" {
		m = msg[0]
	}
	return &Error{Kind: SyntaxError, Message: m}
}

// NoVariableFound creates a NoVariableFoundError for variable name.
func NoVariableFound(name string) *Error {
	return &Error{
		Kind:    NoVariableFoundError,
		Message: fmt.Sprintf("Could not find variable named %q", name),
	}
}

// InvalidOperator creates an InvalidOperatorError for op.
func InvalidOperator(op string) *Error {
	return &Error{
		Kind:    InvalidOperatorError,
		Message: fmt.Sprintf("Invalid operator %q", op),
	}
}

// InvalidAssignment creates an InvalidAssignmentError.
func InvalidAssignment() *Error {
	return &Error{Kind: InvalidAssignmentError, Message: "Invalid assignment type"}
}

// InvalidType creates an InvalidTypeError for a type name.
func InvalidType(typename string) *Error {
	return &Error{
		Kind:    InvalidTypeError,
		Message: fmt.Sprintf("Invalid type %q", typename),
	}
}

// InvalidValue creates an InvalidValueError for a value which cannot be
// converted to type typename.
func InvalidValue(value string, typename string) *Error {
	return &Error{
		Kind:    InvalidValueError,
		Message: fmt.Sprintf("Cannot convert %q to %s", value, typename),
	}
}

// ZeroDivision creates a ZeroDivisionError.
func ZeroDivision() *Error {
	return &Error{Kind: ZeroDivisionError, Message: "Division by zero"}
}
