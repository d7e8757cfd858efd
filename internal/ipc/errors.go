package ipc

import "fmt"

// ReadError reports a failed read of an IPC file. Err carries the cause, which
// may itself be a *MalformedLineError or *InvalidNameError.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read IPC file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failed write of an IPC file. If the target was opened,
// it has already been removed when this error is returned.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write IPC file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// MalformedLineError reports a non-comment line with no "=" separator or with
// an empty name. Line is 1-based.
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: malformed line %q (want name=value)", e.Line, e.Text)
}

// InvalidNameError reports a property name that cannot be encoded or that fails
// name validation.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid property name %q: %s", e.Name, e.Reason)
}

// InvalidValueError reports a property value that cannot be written as UTF-8
// text.
type InvalidValueError struct {
	Name   string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for property %q: %s", e.Name, e.Reason)
}
