package ipc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

//go:generate mockgen -destination=mocks/mock_fs.go -package=mocks github.com/mattjoyce/pipeliner/internal/ipc FileSystem,File

// File is the writable handle returned by FileSystem.Create.
type File interface {
	io.Writer
	io.Closer
}

// FileSystem is the filesystem surface used by Codec.
type FileSystem interface {
	// Create opens name for writing, creating or truncating it.
	Create(name string) (File, error)
	Open(name string) (io.ReadCloser, error)
	Remove(name string) error
}

// OSFileSystem is the local filesystem.
type OSFileSystem struct{}

var _ FileSystem = OSFileSystem{}

// Create opens name write-only with mode 0600, truncating an existing file.
func (OSFileSystem) Create(name string) (File, error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (OSFileSystem) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (OSFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// Codec reads and writes IPC files.
type Codec struct {
	FS            FileSystem
	Strict        bool
	Header        bool
	ValidateNames bool
}

// NewCodec returns a strict codec on the local filesystem.
func NewCodec() *Codec {
	return &Codec{FS: OSFileSystem{}, Strict: true}
}

func (c *Codec) fs() FileSystem {
	if c.FS == nil {
		return OSFileSystem{}
	}
	return c.FS
}

// ReadFile decodes the IPC file at path. Every failure is a *ReadError.
func (c *Codec) ReadFile(path string) (*Properties, error) {
	f, err := c.fs().Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	p, err := Decode(f, DecodeOptions{Strict: c.Strict, ValidateNames: c.ValidateNames})
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return p, nil
}

// WriteFile encodes p into the file at path. Every failure is a *WriteError; a
// file that was opened before the failure is removed.
func (c *Codec) WriteFile(path string, p *Properties) error {
	fsys := c.fs()

	// Nothing was created yet, so there is nothing to remove.
	f, err := fsys.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	encErr := Encode(f, p, EncodeOptions{Header: c.Header, ValidateNames: c.ValidateNames})
	closeErr := f.Close()
	if encErr != nil {
		return c.writeFailed(path, encErr)
	}
	if closeErr != nil {
		return c.writeFailed(path, fmt.Errorf("close: %w", closeErr))
	}
	return nil
}

func (c *Codec) writeFailed(path string, cause error) error {
	if err := c.fs().Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		cause = errors.Join(cause, fmt.Errorf("remove partial file: %w", err))
	}
	return &WriteError{Path: path, Err: cause}
}

// ReadFile decodes path with a strict codec on the local filesystem.
func ReadFile(path string) (*Properties, error) {
	return NewCodec().ReadFile(path)
}

// WriteFile encodes p into path on the local filesystem.
func WriteFile(path string, p *Properties) error {
	return NewCodec().WriteFile(path, p)
}
