// Package infer derives vex schemas from sample JSON documents.
//
// Given one or more documents known to be well-formed, Infer produces
// a schema that all of them satisfy: objects merge their field sets,
// fields absent (or null) in some samples become optional, and array
// element shapes merge across every element seen. Conflicting
// primitive types across samples are an error; vex has no union type.
package infer

import (
	"encoding/json"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/usestring/vex/pkg/vex"
)

type kind int

const (
	kindNull kind = iota
	kindString
	kindNumber
	kindBool
	kindObject
	kindArray
)

func (k kind) String() string {
	switch k {
	case kindNull:
		return "null"
	case kindString:
		return "string"
	case kindNumber:
		return "number"
	case kindBool:
		return "boolean"
	case kindObject:
		return "object"
	case kindArray:
		return "array"
	}
	return "unknown"
}

// node is the merge-friendly intermediate shape representation.
// Merging happens here; vex schemas are materialized once at the end
// because their configuration is fixed after construction.
type node struct {
	kind     kind
	nullable bool
	fields   map[string]*node
	order    []string // field order of first appearance
	optional map[string]bool
	elem     *node // merged element shape, nil when no elements seen
}

// memoSize bounds the shape-memo cache.
const memoSize = 256

// Inferrer infers schemas, memoizing repeated array-element shapes so
// large arrays of uniform records are walked once per distinct shape.
type Inferrer struct {
	memo *lru.Cache[string, *node]
}

// New creates an Inferrer with an empty shape memo.
func New() (*Inferrer, error) {
	c, err := lru.New[string, *node](memoSize)
	if err != nil {
		return nil, err
	}
	return &Inferrer{memo: c}, nil
}

// Infer derives a schema matching every sample document.
func Infer(samples ...[]byte) (vex.Schema, error) {
	in, err := New()
	if err != nil {
		return nil, err
	}
	return in.Infer(samples...)
}

// Infer derives a schema matching every sample document.
func (in *Inferrer) Infer(samples ...[]byte) (vex.Schema, error) {
	values := make([]any, 0, len(samples))
	for i, data := range samples {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("sample %d: invalid JSON: %w", i, err)
		}
		values = append(values, v)
	}
	return in.InferValues(values...)
}

// InferValues derives a schema from already-unmarshaled values.
func (in *Inferrer) InferValues(values ...any) (vex.Schema, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one sample is required")
	}

	var merged *node
	for i, v := range values {
		n, err := in.inferValue(v)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		merged, err = merge(merged, n)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
	}

	return materialize(merged)
}

func (in *Inferrer) inferValue(v any) (*node, error) {
	switch val := v.(type) {
	case nil:
		return &node{kind: kindNull, nullable: true}, nil
	case string:
		return &node{kind: kindString}, nil
	case bool:
		return &node{kind: kindBool}, nil
	case map[string]any:
		n := &node{
			kind:     kindObject,
			fields:   make(map[string]*node, len(val)),
			optional: make(map[string]bool),
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child, err := in.inferValue(val[k])
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			if child.kind == kindNull {
				// A null value says nothing about the field's type; it
				// only marks the field optional.
				n.optional[k] = true
			}
			n.fields[k] = child
			n.order = append(n.order, k)
		}
		return n, nil
	case []any:
		n := &node{kind: kindArray}
		for i, item := range val {
			elem, err := in.elemNode(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			n.elem, err = merge(n.elem, elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
		}
		return n, nil
	default:
		if isNumeric(v) {
			return &node{kind: kindNumber}, nil
		}
		return nil, fmt.Errorf("cannot infer a schema for %T", v)
	}
}

// elemNode infers an array element's shape through the memo.
func (in *Inferrer) elemNode(v any) (*node, error) {
	fp := Fingerprint(v)
	if n, ok := in.memo.Get(fp); ok {
		return n, nil
	}
	n, err := in.inferValue(v)
	if err != nil {
		return nil, err
	}
	in.memo.Add(fp, n)
	return n, nil
}

// merge combines two inferred shapes into one accepting both. It never
// mutates its inputs; memoized nodes are shared between results.
func merge(a, b *node) (*node, error) {
	switch {
	case a == nil:
		return b, nil
	case b == nil:
		return a, nil
	case a.kind == kindNull:
		return markNullable(b), nil
	case b.kind == kindNull:
		return markNullable(a), nil
	case a.kind != b.kind:
		return nil, fmt.Errorf("conflicting types: %s vs %s", a.kind, b.kind)
	}

	switch a.kind {
	case kindObject:
		out := &node{
			kind:     kindObject,
			nullable: a.nullable || b.nullable,
			fields:   make(map[string]*node, len(a.fields)),
			optional: make(map[string]bool),
		}
		for _, k := range a.order {
			out.order = append(out.order, k)
			bf, ok := b.fields[k]
			if !ok {
				out.fields[k] = a.fields[k]
				out.optional[k] = true
				continue
			}
			m, err := merge(a.fields[k], bf)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			out.fields[k] = m
			out.optional[k] = a.optional[k] || b.optional[k]
		}
		for _, k := range b.order {
			if _, ok := a.fields[k]; ok {
				continue
			}
			out.order = append(out.order, k)
			out.fields[k] = b.fields[k]
			out.optional[k] = true
		}
		return out, nil

	case kindArray:
		elem, err := merge(a.elem, b.elem)
		if err != nil {
			return nil, err
		}
		return &node{kind: kindArray, nullable: a.nullable || b.nullable, elem: elem}, nil

	default:
		return &node{kind: a.kind, nullable: a.nullable || b.nullable}, nil
	}
}

func markNullable(n *node) *node {
	if n.nullable {
		return n
	}
	c := *n
	c.nullable = true
	return &c
}

// materialize builds the vex schema for a merged shape.
func materialize(n *node) (vex.Schema, error) {
	var s vex.Schema
	switch n.kind {
	case kindNull:
		return nil, fmt.Errorf("cannot infer a schema from null-only samples")
	case kindString:
		s = vex.String()
	case kindNumber:
		s = vex.Number()
	case kindBool:
		s = vex.Boolean()
	case kindObject:
		fields := make([]vex.Field, 0, len(n.order))
		for _, k := range n.order {
			child := n.fields[k]
			if child.kind == kindNull {
				// Every sample had null here; there is no type to pin
				// down, and undeclared keys pass through anyway.
				continue
			}
			cs, err := materialize(child)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			if n.optional[k] {
				cs = cs.Optional()
			}
			fields = append(fields, vex.F(k, cs))
		}
		s = vex.Object(fields...)
	case kindArray:
		if n.elem == nil || n.elem.kind == kindNull {
			s = vex.Array(nil)
		} else {
			elem, err := materialize(n.elem)
			if err != nil {
				return nil, err
			}
			s = vex.Array(elem)
		}
	default:
		return nil, fmt.Errorf("cannot materialize shape %s", n.kind)
	}

	if n.nullable {
		s = s.Optional()
	}
	return s, nil
}

func isNumeric(v any) bool {
	switch v.(type) {
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return true
	}
	return false
}
