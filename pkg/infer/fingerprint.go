package infer

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Fingerprint returns a stable hash of a value's structural shape:
// value kinds, object key sets and nesting, ignoring concrete values.
// Two values with the same fingerprint infer the same shape.
func Fingerprint(v any) string {
	var b strings.Builder
	writeShape(&b, v)
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func writeShape(b *strings.Builder, v any) {
	switch val := v.(type) {
	case nil:
		b.WriteByte('z')
	case string:
		b.WriteByte('s')
	case bool:
		b.WriteByte('t')
	case map[string]any:
		b.WriteByte('{')
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		// Sorted, quoted keys keep the signature canonical and
		// collision-free for keys containing separators.
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			writeShape(b, val[k])
			b.WriteByte(',')
		}
		b.WriteByte('}')
	case []any:
		b.WriteByte('[')
		for _, item := range val {
			writeShape(b, item)
			b.WriteByte(',')
		}
		b.WriteByte(']')
	default:
		if isNumeric(v) {
			b.WriteByte('n')
		} else {
			b.WriteByte('?')
		}
	}
}
