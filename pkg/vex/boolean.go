package vex

// truthMode tracks the mutually exclusive True/False pair.
type truthMode int

const (
	truthUnset truthMode = iota
	truthTrue
	truthFalse
)

// BooleanSchema validates boolean values.
type BooleanSchema struct {
	mode    truthMode
	message string
}

// Boolean returns a schema accepting any boolean.
func Boolean() *BooleanSchema {
	return &BooleanSchema{}
}

// True requires the value to be true. Conflicts with False.
func (s *BooleanSchema) True(message ...string) *BooleanSchema {
	if s.mode == truthFalse {
		panic(newSchemaError("true() cannot be combined with false()"))
	}
	s.mode = truthTrue
	s.message = override(message, "Value must be true")
	return s
}

// False requires the value to be false. Conflicts with True.
func (s *BooleanSchema) False(message ...string) *BooleanSchema {
	if s.mode == truthTrue {
		panic(newSchemaError("false() cannot be combined with true()"))
	}
	s.mode = truthFalse
	s.message = override(message, "Value must be false")
	return s
}

// Parse implements Schema.
func (s *BooleanSchema) Parse(v any) (any, error) { return s.parseAt(v, nil) }

// SafeParse implements Schema.
func (s *BooleanSchema) SafeParse(v any) Result { return safeParse(s, v) }

// Optional implements Schema.
func (s *BooleanSchema) Optional() Schema { return optionalSchema{inner: s} }

func (s *BooleanSchema) parseAt(v any, path Path) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, newValueError("Expected boolean", orRoot(path))
	}
	switch s.mode {
	case truthTrue:
		if !b {
			return nil, newValueError(s.message, orRoot(path))
		}
	case truthFalse:
		if b {
			return nil, newValueError(s.message, orRoot(path))
		}
	}
	return b, nil
}
