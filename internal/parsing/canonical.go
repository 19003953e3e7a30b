package parsing

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Canonical serialises a parsed JSON value so that equal structures give
// equal strings however they were written. 100, 100.0 and 1e2 share a key,
// as do "A" and "\u0041". Array and object member order is kept.
func Canonical(r gjson.Result) string {
	var b strings.Builder
	writeCanonical(&b, r)
	return b.String()
}

func writeCanonical(b *strings.Builder, r gjson.Result) {
	switch r.Type {
	case gjson.Null:
		b.WriteString("null")
	case gjson.False:
		b.WriteString("false")
	case gjson.True:
		b.WriteString("true")
	case gjson.Number:
		b.WriteString(FormatNumber(r.Num))
	case gjson.String:
		b.WriteString(strconv.Quote(r.Str))
	default:
		switch {
		case r.IsArray():
			b.WriteByte('[')
			first := true
			r.ForEach(func(_, v gjson.Result) bool {
				if !first {
					b.WriteByte(',')
				}
				first = false
				writeCanonical(b, v)
				return true
			})
			b.WriteByte(']')
		case r.IsObject():
			b.WriteByte('{')
			first := true
			r.ForEach(func(k, v gjson.Result) bool {
				if !first {
					b.WriteByte(',')
				}
				first = false
				b.WriteString(strconv.Quote(k.Str))
				b.WriteByte(':')
				writeCanonical(b, v)
				return true
			})
			b.WriteByte('}')
		default:
			b.WriteString("null")
		}
	}
}
