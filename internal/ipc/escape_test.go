package ipc

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "empty", input: "", want: ""},
		{name: "newline", input: "wor\nld", want: `wor\nld`},
		{name: "carriage return", input: "a\rb", want: `a\rb`},
		{name: "crlf", input: "line1\r\nline2", want: `line1\r\nline2`},
		{name: "backslash", input: `C:\temp`, want: `C:\\temp`},
		{name: "literal backslash n", input: `a\nb`, want: `a\\nb`},
		{name: "trailing backslash", input: `end\`, want: `end\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "newline", input: `wor\nld`, want: "wor\nld"},
		{name: "carriage return", input: `a\rb`, want: "a\rb"},
		{name: "escaped backslash", input: `C:\\temp`, want: `C:\temp`},
		{name: "escaped backslash before n", input: `a\\nb`, want: `a\nb`},
		{name: "unknown sequence kept", input: `a\tb`, want: `a\tb`},
		{name: "lone trailing backslash kept", input: `end\`, want: `end\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unescape(tt.input); got != tt.want {
				t.Errorf("Unescape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// escapeHeavyString draws strings dense in the characters the escaping cares about.
func escapeHeavyString() *rapid.Generator[string] {
	return rapid.StringOf(rapid.SampledFrom([]rune("\\\r\nnr =#\t aé世")))
}

func TestEscapeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.OneOf(rapid.String(), escapeHeavyString()).Draw(t, "s")

		escaped := Escape(s)
		if strings.ContainsAny(escaped, "\r\n") {
			t.Fatalf("Escape(%q) = %q still contains CR or LF", s, escaped)
		}
		if got := Unescape(escaped); got != s {
			t.Fatalf("Unescape(Escape(%q)) = %q", s, got)
		}
	})
}
