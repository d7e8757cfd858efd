package ipc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Header is the optional first line of an IPC file.
const Header = "# IpcMap"

// FormatVersion names the wire format implemented by this package.
const FormatVersion = "escape/1"

// EncodeOptions controls Encode.
type EncodeOptions struct {
	// Header emits the "# IpcMap" line first.
	Header bool
	// ValidateNames applies ValidateName to every key.
	ValidateNames bool
}

// DecodeOptions controls Decode.
type DecodeOptions struct {
	// Strict fails on a line without '=' instead of skipping it.
	Strict bool
	// ValidateNames applies ValidateName to every key.
	ValidateNames bool
}

// Encode writes p to w, one escaped "name=value" line per property. Every line
// is flushed to w before the next one is produced.
func Encode(w io.Writer, p *Properties, opts EncodeOptions) error {
	bw := bufio.NewWriter(w)

	if opts.Header {
		if err := writeLine(bw, Header); err != nil {
			return err
		}
	}

	for name, value := range p.All() {
		if err := checkEncodable(name); err != nil {
			return err
		}
		if opts.ValidateNames {
			if err := ValidateName(name); err != nil {
				return err
			}
		}
		if !utf8.ValidString(value) {
			return &InvalidValueError{Name: name, Reason: "invalid UTF-8"}
		}
		if err := writeLine(bw, name+"="+Escape(value)); err != nil {
			return err
		}
	}

	return nil
}

func writeLine(bw *bufio.Writer, line string) error {
	if _, err := bw.WriteString(line); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush line: %w", err)
	}
	return nil
}

// Decode reads an IPC property stream from r. Blank lines and lines starting
// with '#' are ignored. A later duplicate key overwrites the earlier value.
// On error no properties are returned.
func Decode(r io.Reader, opts DecodeOptions) (*Properties, error) {
	br := bufio.NewReader(r)
	p := NewProperties()

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read line %d: %w", lineNo, err)
		}
		eof := err != nil

		if line != "" {
			if err := decodeLine(p, lineNo, line, opts); err != nil {
				return nil, err
			}
		}
		if eof {
			return p, nil
		}
	}
}

func decodeLine(p *Properties, lineNo int, line string, opts DecodeOptions) error {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if !utf8.ValidString(line) {
		return fmt.Errorf("line %d: invalid UTF-8", lineNo)
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	// The value keeps its whitespace; only the name is trimmed.
	idx := strings.IndexByte(line, '=')
	name := ""
	if idx >= 0 {
		name = strings.TrimSpace(line[:idx])
	}
	if name == "" {
		if opts.Strict {
			return &MalformedLineError{Line: lineNo, Text: trimmed}
		}
		return nil
	}

	if opts.ValidateNames {
		if err := ValidateName(name); err != nil {
			return err
		}
	}

	p.Set(name, Unescape(line[idx+1:]))
	return nil
}
