package vex

// ArraySchema validates []any sequences, parsing every element against
// a single element schema. The result is a fresh slice of validated
// elements in original order.
type ArraySchema struct {
	element Schema
	message string
}

// Array returns a schema for a sequence whose elements satisfy
// element. A nil element schema accepts any elements. The optional
// message overrides the default "Expected array" failure.
func Array(element Schema, message ...string) *ArraySchema {
	return &ArraySchema{
		element: element,
		message: override(message, "Expected array"),
	}
}

// Element returns the element schema, or nil when elements are not
// validated.
func (s *ArraySchema) Element() Schema {
	return s.element
}

// Parse implements Schema.
func (s *ArraySchema) Parse(v any) (any, error) { return s.parseAt(v, nil) }

// SafeParse implements Schema.
func (s *ArraySchema) SafeParse(v any) Result { return safeParse(s, v) }

// Optional implements Schema.
func (s *ArraySchema) Optional() Schema { return optionalSchema{inner: s} }

func (s *ArraySchema) parseAt(v any, path Path) (any, error) {
	if len(path) >= MaxNestingDepth {
		return nil, newValueError("maximum nesting depth exceeded", path)
	}

	items, ok := v.([]any)
	if !ok {
		return nil, newValueError(s.message, orRoot(path))
	}

	out := make([]any, len(items))
	for i, item := range items {
		if s.element == nil {
			out[i] = item
			continue
		}
		val, err := s.element.parseAt(item, path.push(i))
		if err != nil {
			return nil, attachPath(err, path.push(i))
		}
		out[i] = val
	}

	return out, nil
}
