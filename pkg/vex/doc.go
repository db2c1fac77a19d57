// Package vex validates untrusted in-memory values against
// declaratively-built schemas.
//
// A schema is a composable validation rule for one data shape. Schemas
// are built with the package-level factories and refined with chainable
// constraint methods:
//
//	user := vex.Object(
//	    vex.F("name", vex.String().Min(3)),
//	    vex.F("age", vex.Number().Positive()),
//	    vex.F("email", vex.Email().Optional()),
//	)
//
//	result := user.SafeParse(input)
//	if !result.Success {
//	    fmt.Println(result.Error.Path, result.Error.Message)
//	}
//
// Parse returns the validated value or a *Error describing the first
// failure found, qualified with the exact path to the failing field.
// SafeParse wraps the same walk into a Result and never returns a Go
// error. Validation is fail-fast: the first failure anywhere stops the
// entire tree walk.
//
// Values are expected in the shapes encoding/json produces for untyped
// unmarshaling: string, float64 (any Go numeric kind is accepted),
// bool, map[string]any, []any and nil. The engine validates; it never
// converts between types.
//
// Schemas are safe to share across goroutines once the configuration
// (chaining) phase is done: Parse and SafeParse touch no shared mutable
// state. Chaining a constraint that conflicts with one already attached
// (Length after Min, Positive after Negative) panics immediately with a
// CodeSchema *Error; this is a programmer error, never input-dependent.
package vex
