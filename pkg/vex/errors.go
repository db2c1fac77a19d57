package vex

import (
	"runtime/debug"
)

// Code classifies a failure.
type Code int

const (
	// CodeValue marks an input value that does not satisfy the schema:
	// a wrong type or a violated constraint.
	CodeValue Code = 1
	// CodeSchema marks a schema built with contradictory chained
	// constraints. Raised during schema construction, never while
	// parsing a value.
	CodeSchema Code = 2
)

// Error is the structured failure carried through all parsing. Its
// JSON shape is stable: {code, message, path?, stack?}.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Path    Path   `json:"path,omitempty"`
	Trace   string `json:"stack,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Path) > 0 {
		return e.Message + " at " + e.Path.String()
	}
	return e.Message
}

func newValueError(message string, path Path) *Error {
	return &Error{
		Code:    CodeValue,
		Message: message,
		Path:    path,
		Trace:   string(debug.Stack()),
	}
}

func newSchemaError(message string) *Error {
	return &Error{
		Code:    CodeSchema,
		Message: message,
		Trace:   string(debug.Stack()),
	}
}
