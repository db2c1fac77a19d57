package vex

import (
	"encoding/json"
	"fmt"
)

// signMode tracks the mutually exclusive Positive/Negative pair.
type signMode int

const (
	signUnset signMode = iota
	signPositive
	signNegative
)

type numberCheck struct {
	name    string
	message string
	ok      func(f float64) bool
}

// NumberSchema validates numeric values. Any Go numeric kind is
// accepted and returned unchanged; comparisons use the float64 view.
type NumberSchema struct {
	checks []numberCheck
	sign   signMode
}

// Number returns a schema accepting any numeric value.
func Number() *NumberSchema {
	return &NumberSchema{}
}

// Min requires the value to be at least n.
func (s *NumberSchema) Min(n float64, message ...string) *NumberSchema {
	s.add("min", override(message, fmt.Sprintf("Number must be at least %v", n)), func(f float64) bool {
		return f >= n
	})
	return s
}

// Max requires the value to be at most n.
func (s *NumberSchema) Max(n float64, message ...string) *NumberSchema {
	s.add("max", override(message, fmt.Sprintf("Number must be at most %v", n)), func(f float64) bool {
		return f <= n
	})
	return s
}

// Positive requires the value to be strictly greater than zero; zero
// fails. Conflicts with Negative.
func (s *NumberSchema) Positive(message ...string) *NumberSchema {
	if s.sign == signNegative {
		panic(newSchemaError("positive() cannot be combined with negative()"))
	}
	s.sign = signPositive
	s.add("positive", override(message, "Number must be positive"), func(f float64) bool {
		return f > 0
	})
	return s
}

// Negative requires the value to be strictly less than zero; zero
// fails. Conflicts with Positive.
func (s *NumberSchema) Negative(message ...string) *NumberSchema {
	if s.sign == signPositive {
		panic(newSchemaError("negative() cannot be combined with positive()"))
	}
	s.sign = signNegative
	s.add("negative", override(message, "Number must be negative"), func(f float64) bool {
		return f < 0
	})
	return s
}

// Parse implements Schema.
func (s *NumberSchema) Parse(v any) (any, error) { return s.parseAt(v, nil) }

// SafeParse implements Schema.
func (s *NumberSchema) SafeParse(v any) Result { return safeParse(s, v) }

// Optional implements Schema.
func (s *NumberSchema) Optional() Schema { return optionalSchema{inner: s} }

func (s *NumberSchema) parseAt(v any, path Path) (any, error) {
	f, ok := numericValue(v)
	if !ok {
		return nil, newValueError("Expected number", orRoot(path))
	}
	for _, c := range s.checks {
		if !c.ok(f) {
			return nil, newValueError(c.message, orRoot(path))
		}
	}
	return v, nil
}

func (s *NumberSchema) add(name, message string, ok func(float64) bool) {
	s.checks = append(s.checks, numberCheck{name: name, message: message, ok: ok})
}

// numericValue reports whether v is a numeric value and its float64
// view. bool is not a number.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
