package internal

import "fmt"

// StorageError represents errors accessing the key-value persistence surface
type StorageError struct {
	Op  string // "init", "get", "set", "delete"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseError represents errors decoding persisted state
type ParseError struct {
	Key string // storage key the value came from
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s]: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RequestError represents a failed round trip to the answer endpoint
type RequestError struct {
	URL        string
	StatusCode int // zero when the transport itself failed
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request error [%d] %s: %v", e.StatusCode, e.URL, e.Err)
	}
	return fmt.Sprintf("request error %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
