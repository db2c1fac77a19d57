package vex

import (
	"fmt"
	"strings"
)

// Path is the ordered sequence of field-name (string) and array-index
// (int) segments locating a value inside a nested input. It is built
// incrementally during the recursive walk; a failure on a bare
// top-level value carries the synthetic root segment "value" so even
// scalar errors are path-qualified.
type Path []any

// rootPath is the synthetic path attached to failures on values that
// are not nested inside an object or array.
var rootPath = Path{"value"}

// String renders the path in dotted form, e.g. "user.items[2]".
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		switch s := seg.(type) {
		case int:
			fmt.Fprintf(&b, "[%d]", s)
		default:
			if i > 0 {
				b.WriteByte('.')
			}
			fmt.Fprintf(&b, "%v", s)
		}
	}
	return b.String()
}

// push returns a new path extended by one segment. The receiver is
// never mutated; sibling fields share the parent prefix.
func (p Path) push(seg any) Path {
	q := make(Path, len(p)+1)
	copy(q, p)
	q[len(p)] = seg
	return q
}

// orRoot substitutes the synthetic root path for an empty one.
func orRoot(p Path) Path {
	if len(p) == 0 {
		return rootPath
	}
	return p
}
