package vex

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MaxNestingDepth bounds the recursion depth of a single parse. Object
// and array payloads are attacker-controlled; a schema deeper than this
// (typically one built programmatically in a loop) fails validation
// rather than exhausting the stack.
const MaxNestingDepth = 1024

// Schema is a composable validation rule for one data shape. All
// schema kinds in this package implement it; the unexported recursive
// method keeps the set closed.
type Schema interface {
	// Parse validates v against the schema's type and constraints. On
	// success it returns the validated value; on failure it returns a
	// *Error with CodeValue and the path to the failing field.
	Parse(v any) (any, error)

	// SafeParse runs the same validation but never returns a Go error:
	// any failure is folded into the Result.
	SafeParse(v any) Result

	// Optional returns a view of this schema that accepts nil input,
	// short-circuiting to a successful nil without running the
	// underlying validation. The receiver is not modified.
	Optional() Schema

	parseAt(v any, path Path) (any, error)
}

// Result is the tagged outcome of SafeParse. Exactly one of Data and
// Error is meaningful, discriminated by Success.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// safeParse folds a parse into a Result. It is the sole boundary that
// recovers failures into a normal return value.
func safeParse(s Schema, v any) Result {
	data, err := s.parseAt(v, nil)
	if err != nil {
		return Result{Error: asError(err)}
	}
	return Result{Success: true, Data: data}
}

// asError coerces any failure into a *Error, normalizing a missing
// code to CodeValue and preserving path and trace when present.
func asError(err error) *Error {
	var ve *Error
	if errors.As(err, &ve) {
		if ve.Code == 0 {
			ve.Code = CodeValue
		}
		return ve
	}
	return &Error{Code: CodeValue, Message: err.Error(), Path: rootPath}
}

// attachPath fills in path context on a propagating failure. The
// innermost attacher wins: a path already set is never overwritten.
func attachPath(err error, path Path) error {
	var ve *Error
	if errors.As(err, &ve) && ve.Path == nil {
		ve.Path = path
	}
	return err
}

// optionalSchema is a shallow immutable view over an inner schema. It
// shares the inner configuration rather than copying it.
type optionalSchema struct {
	inner Schema
}

func (s optionalSchema) Parse(v any) (any, error) { return s.parseAt(v, nil) }
func (s optionalSchema) SafeParse(v any) Result   { return safeParse(s, v) }
func (s optionalSchema) Optional() Schema         { return s }

func (s optionalSchema) parseAt(v any, path Path) (any, error) {
	if v == nil {
		return nil, nil
	}
	return s.inner.parseAt(v, path)
}

// ParseJSON unmarshals raw JSON and validates the resulting value.
func ParseJSON(s Schema, data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return s.Parse(v)
}

// SafeParseJSON is the never-failing variant of ParseJSON. Malformed
// JSON is reported as a validation failure at the root.
func SafeParseJSON(s Schema, data []byte) Result {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Result{Error: newValueError("invalid JSON: "+err.Error(), rootPath)}
	}
	return s.SafeParse(v)
}

// override picks the user-supplied message when one was given.
func override(message []string, fallback string) string {
	if len(message) > 0 && message[0] != "" {
		return message[0]
	}
	return fallback
}
