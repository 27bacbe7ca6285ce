package income

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a load attempt failed.
type ErrorKind string

const (
	KindFileNotFound   ErrorKind = "FILE_NOT_FOUND"
	KindReadError      ErrorKind = "READ_ERROR"
	KindDecodeError    ErrorKind = "DECODE_ERROR"
	KindSchemaMismatch ErrorKind = "SCHEMA_MISMATCH"
)

// Sentinel errors matched by LoadError.Is.
var (
	ErrFileNotFound   = errors.New("data file not found")
	ErrRead           = errors.New("data file could not be read")
	ErrDecode         = errors.New("data file could not be decoded")
	ErrSchemaMismatch = errors.New("data file does not match schema")
)

// LoadError is returned by Load and LoadReader. It is also used for the
// recoverable schema problems collected in Table.Warnings.
type LoadError struct {
	Kind    ErrorKind
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is lets callers test the kind with errors.Is(err, ErrDecode) and friends.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrFileNotFound:
		return e.Kind == KindFileNotFound
	case ErrRead:
		return e.Kind == KindReadError
	case ErrDecode:
		return e.Kind == KindDecodeError
	case ErrSchemaMismatch:
		return e.Kind == KindSchemaMismatch
	}
	return false
}

func newLoadError(kind ErrorKind, path, message string, cause error) *LoadError {
	return &LoadError{Kind: kind, Path: path, Message: message, Err: cause}
}

// KindOf reports the ErrorKind carried by err, or "" when err is not a LoadError.
func KindOf(err error) ErrorKind {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Kind
	}
	return ""
}
