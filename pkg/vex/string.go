package vex

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// lengthMode tracks which of the two mutually exclusive length
// constraint families is active on a StringSchema. The first chain
// call fixes the mode; attaching the other family afterwards is a
// configuration conflict.
type lengthMode int

const (
	lengthUnset lengthMode = iota
	lengthRange            // Min or Max attached
	lengthExact            // Length attached
)

// RFC-light patterns: local-part @ domain-labels . 2+-letter TLD, and
// optional-scheme dot-separated host with optional path/query.
var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)
	urlPattern   = regexp.MustCompile(`^(https?://)?[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+(/[^\s?]*)?(\?\S*)?$`)
)

// stringCheck is one named constraint in the ordered validation
// sequence of a StringSchema.
type stringCheck struct {
	name    string
	message string
	ok      func(s string) bool
}

// StringSchema validates string values. Constraints run in the order
// they were attached, after the type check.
type StringSchema struct {
	checks []stringCheck
	mode   lengthMode
	modeBy string // chain method that fixed the mode
}

// String returns a schema accepting any string.
func String() *StringSchema {
	return &StringSchema{}
}

// Email returns a StringSchema preconfigured with the email constraint.
func Email(message ...string) *StringSchema {
	return String().Email(message...)
}

// URL returns a StringSchema preconfigured with the URL constraint.
func URL(message ...string) *StringSchema {
	return String().URL(message...)
}

// Min requires at least n characters (runes). Conflicts with Length.
func (s *StringSchema) Min(n int, message ...string) *StringSchema {
	s.setRangeMode("min()")
	s.add("min", override(message, fmt.Sprintf("String must have %d characters", n)), func(v string) bool {
		return utf8.RuneCountInString(v) >= n
	})
	return s
}

// Max requires at most n characters (runes). Conflicts with Length.
func (s *StringSchema) Max(n int, message ...string) *StringSchema {
	s.setRangeMode("max()")
	s.add("max", override(message, fmt.Sprintf("String must have at most %d characters", n)), func(v string) bool {
		return utf8.RuneCountInString(v) <= n
	})
	return s
}

// Length requires exactly n characters (runes). Conflicts with Min and
// Max.
func (s *StringSchema) Length(n int, message ...string) *StringSchema {
	s.setExactMode()
	s.add("length", override(message, fmt.Sprintf("String must have exactly %d characters", n)), func(v string) bool {
		return utf8.RuneCountInString(v) == n
	})
	return s
}

// Includes requires the string to contain sub.
func (s *StringSchema) Includes(sub string, message ...string) *StringSchema {
	s.add("includes", override(message, fmt.Sprintf("String must include %q", sub)), func(v string) bool {
		return strings.Contains(v, sub)
	})
	return s
}

// StartsWith requires the string to begin with prefix.
func (s *StringSchema) StartsWith(prefix string, message ...string) *StringSchema {
	s.add("startsWith", override(message, fmt.Sprintf("String must start with %q", prefix)), func(v string) bool {
		return strings.HasPrefix(v, prefix)
	})
	return s
}

// EndsWith requires the string to end with suffix.
func (s *StringSchema) EndsWith(suffix string, message ...string) *StringSchema {
	s.add("endsWith", override(message, fmt.Sprintf("String must end with %q", suffix)), func(v string) bool {
		return strings.HasSuffix(v, suffix)
	})
	return s
}

// Email requires the string to look like an email address.
func (s *StringSchema) Email(message ...string) *StringSchema {
	s.add("email", override(message, "Invalid email"), emailPattern.MatchString)
	return s
}

// URL requires the string to look like a URL.
func (s *StringSchema) URL(message ...string) *StringSchema {
	s.add("url", override(message, "Invalid URL"), urlPattern.MatchString)
	return s
}

// Parse implements Schema.
func (s *StringSchema) Parse(v any) (any, error) { return s.parseAt(v, nil) }

// SafeParse implements Schema.
func (s *StringSchema) SafeParse(v any) Result { return safeParse(s, v) }

// Optional implements Schema.
func (s *StringSchema) Optional() Schema { return optionalSchema{inner: s} }

func (s *StringSchema) parseAt(v any, path Path) (any, error) {
	str, ok := v.(string)
	if !ok {
		return nil, newValueError("Expected string", orRoot(path))
	}
	for _, c := range s.checks {
		if !c.ok(str) {
			return nil, newValueError(c.message, orRoot(path))
		}
	}
	return str, nil
}

func (s *StringSchema) add(name, message string, ok func(string) bool) {
	s.checks = append(s.checks, stringCheck{name: name, message: message, ok: ok})
}

func (s *StringSchema) setRangeMode(method string) {
	if s.mode == lengthExact {
		panic(newSchemaError(fmt.Sprintf("%s cannot be combined with %s", method, s.modeBy)))
	}
	if s.mode == lengthUnset {
		s.mode = lengthRange
		s.modeBy = method
	}
}

func (s *StringSchema) setExactMode() {
	if s.mode == lengthRange {
		panic(newSchemaError(fmt.Sprintf("length() cannot be combined with %s", s.modeBy)))
	}
	s.mode = lengthExact
	s.modeBy = "length()"
}
