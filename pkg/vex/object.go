package vex

// Field pairs a name with the schema validating it. Go maps have no
// iteration order, so object shapes are declared as an ordered field
// list; fields are validated in declaration order, which makes the
// first-failure deterministic.
type Field struct {
	Name   string
	Schema Schema
}

// F is shorthand for declaring an object field.
func F(name string, s Schema) Field {
	return Field{Name: name, Schema: s}
}

// ObjectSchema validates map[string]any records against a declared
// shape. Keys not declared in the shape are ignored and passed through
// unchanged; there is no unknown-key rejection.
type ObjectSchema struct {
	fields []Field
}

// Object returns a schema for a record with the given fields.
func Object(fields ...Field) *ObjectSchema {
	return &ObjectSchema{fields: fields}
}

// Fields returns the declared shape, in declaration order. It exposes
// the structural metadata external tools need to derive types from a
// schema.
func (s *ObjectSchema) Fields() []Field {
	return s.fields
}

// Parse implements Schema.
func (s *ObjectSchema) Parse(v any) (any, error) { return s.parseAt(v, nil) }

// SafeParse implements Schema.
func (s *ObjectSchema) SafeParse(v any) Result { return safeParse(s, v) }

// Optional implements Schema.
func (s *ObjectSchema) Optional() Schema { return optionalSchema{inner: s} }

func (s *ObjectSchema) parseAt(v any, path Path) (any, error) {
	if len(path) >= MaxNestingDepth {
		return nil, newValueError("maximum nesting depth exceeded", path)
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, newValueError("Expected object", orRoot(path))
	}

	out := make(map[string]any, len(m))
	for k, val := range m {
		out[k] = val
	}

	for _, f := range s.fields {
		child, present := m[f.Name]
		// A missing field is parsed as nil against the child schema;
		// that fails unless the child is Optional.
		val, err := f.Schema.parseAt(child, path.push(f.Name))
		if err != nil {
			return nil, attachPath(err, path.push(f.Name))
		}
		if present {
			out[f.Name] = val
		}
	}

	return out, nil
}
