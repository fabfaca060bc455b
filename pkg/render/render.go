// Package render formats argument lists as quoted list literals, e.g. ['a', 'b c'].
package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// List renders args as a bracketed, comma separated list of quoted strings.
// An empty or nil slice renders as [].
func List(args []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Quote(arg))
	}
	b.WriteByte(']')
	return b.String()
}

// Quote wraps s in single quotes, or in double quotes when s contains a
// single quote and no double quote. Backslashes, the chosen quote and
// non-printable runes are escaped. Bytes that are not valid UTF-8 are
// rendered as \udcXX.
func Quote(s string) string {
	quote := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		quote = '"'
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&b, `\u%04x`, 0xdc00+int(s[i]))
			i++
			continue
		}
		i += size
		writeRune(&b, r, rune(quote))
	}
	b.WriteByte(quote)
	return b.String()
}

func writeRune(b *strings.Builder, r, quote rune) {
	switch {
	case r == quote || r == '\\':
		b.WriteByte('\\')
		b.WriteRune(r)
	case r == '\t':
		b.WriteString(`\t`)
	case r == '\n':
		b.WriteString(`\n`)
	case r == '\r':
		b.WriteString(`\r`)
	case unicode.IsPrint(r):
		b.WriteRune(r)
	case r < 0x100:
		fmt.Fprintf(b, `\x%02x`, r)
	case r < 0x10000:
		fmt.Fprintf(b, `\u%04x`, r)
	default:
		fmt.Fprintf(b, `\U%08x`, r)
	}
}
