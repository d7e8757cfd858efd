package ipc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_.-]*[a-zA-Z0-9_]$`)

// ValidateName checks name against the property name syntax. A name must be at
// least two characters, start and end with a letter, digit or underscore, and
// may contain '.' and '-' in between.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return &InvalidNameError{Name: name, Reason: "does not match " + namePattern.String()}
	}
	return nil
}

// checkEncodable rejects keys that would not decode back to themselves.
func checkEncodable(name string) error {
	switch {
	case name == "":
		return &InvalidNameError{Name: name, Reason: "empty"}
	case strings.TrimSpace(name) != name:
		return &InvalidNameError{Name: name, Reason: "surrounding whitespace"}
	case strings.HasPrefix(name, "#"):
		return &InvalidNameError{Name: name, Reason: "starts with '#'"}
	case strings.ContainsAny(name, "=\r\n"):
		return &InvalidNameError{Name: name, Reason: "contains '=', CR or LF"}
	case !utf8.ValidString(name):
		return &InvalidNameError{Name: name, Reason: "invalid UTF-8"}
	}
	return nil
}
