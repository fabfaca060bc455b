package render_test

import (
	"testing"

	"github.com/akim-muto/shutdown-task/pkg/render"
	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "[]", render.List(nil))
		assert.Equal(t, "[]", render.List([]string{}))
	})

	t.Run("PreservesOrderAndSpaces", func(t *testing.T) {
		got := render.List([]string{"--x", "1", "hello world"})
		assert.Equal(t, "['--x', '1', 'hello world']", got)
	})

	t.Run("EmptyString", func(t *testing.T) {
		assert.Equal(t, "['', 'a']", render.List([]string{"", "a"}))
	})
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Plain", "abc", `'abc'`},
		{"SingleQuoteSwitchesToDouble", "it's", `"it's"`},
		{"DoubleQuoteStaysSingle", `say "hi"`, `'say "hi"'`},
		{"BothQuotes", `it's "x"`, `'it\'s "x"'`},
		{"Backslash", `C:\tmp`, `'C:\\tmp'`},
		{"Whitespace", "a\tb\nc\rd", `'a\tb\nc\rd'`},
		{"ControlByte", "\x00\x1b", `'\x00\x1b'`},
		{"Delete", "\x7f", `'\x7f'`},
		{"NoBreakSpace", "\u00a0", `'\xa0'`},
		{"LineSeparator", "\u2028", `'\u2028'`},
		{"Japanese", "ログファイル", `'ログファイル'`},
		{"Emoji", "🙂", `'🙂'`},
		{"InvalidUTF8", "a\xffb", `'a\udcffb'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.Quote(tt.in))
		})
	}
}
