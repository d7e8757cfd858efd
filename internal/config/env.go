package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// ConfigurationError reports a required environment variable that is missing
// or empty, or a path that cannot be resolved.
type ConfigurationError struct {
	Variable string
	Err      error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("environment variable %s: %v", e.Variable, e.Err)
	}
	return fmt.Sprintf("environment variable %s is not set", e.Variable)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load builds a Config from lookup, normally os.LookupEnv. Both IPC paths are required and resolved
// to absolute paths.
func Load(lookup LookupFunc) (*Config, error) {
	in, err := requirePath(lookup, EnvIpcIn)
	if err != nil {
		return nil, err
	}
	out, err := requirePath(lookup, EnvIpcOut)
	if err != nil {
		return nil, err
	}

	trace, _ := lookup(EnvTrace)
	strict, _ := lookup(EnvIpcStrict)

	return &Config{
		InputPath:  in,
		OutputPath: out,
		Trace:      trace == "true",
		Strict:     strict != "false",
	}, nil
}

func requirePath(lookup LookupFunc, name string) (string, error) {
	value, ok := lookup(name)
	if !ok || strings.TrimSpace(value) == "" {
		return "", &ConfigurationError{Variable: name}
	}

	abs, err := filepath.Abs(value)
	if err != nil {
		return "", &ConfigurationError{Variable: name, Err: fmt.Errorf("resolve path %q: %w", value, err)}
	}
	return abs, nil
}

// Environ parses environ (os.Environ format) into variables sorted by name.
// Entries without '=' are ignored.
func Environ(environ []string) []EnvVar {
	vars := make([]EnvVar, 0, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars = append(vars, EnvVar{Name: name, Value: value})
	}
	slices.SortStableFunc(vars, func(a, b EnvVar) int {
		return strings.Compare(a.Name, b.Name)
	})
	return vars
}
