package ipc

import "strings"

// Escape makes value safe for a single line: "\" becomes "\\", CR becomes
// "\r" and LF becomes "\n".
func Escape(value string) string {
	if !strings.ContainsAny(value, "\\\r\n") {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) + 8)
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape reverses Escape. Unescape(Escape(s)) == s for every s.
//
// The input is scanned left to right so an escaped backslash followed by "n"
// ("\\n") decodes to a backslash and "n", never to a newline. A backslash that
// starts no known sequence, including a trailing one, is kept as is.
func Unescape(value string) string {
	if strings.IndexByte(value, '\\') < 0 {
		return value
	}

	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '\\' || i+1 == len(value) {
			b.WriteByte(c)
			continue
		}
		switch value[i+1] {
		case '\\':
			b.WriteByte('\\')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		default:
			b.WriteByte(c)
			continue
		}
		i++
	}
	return b.String()
}
