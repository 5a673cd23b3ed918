// Package errors provides structured error types for dock.
// Errors carry the operation that failed and a category, so callers such as
// the geometry store can report failures without inspecting message text.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindStorage
	KindDecode
	KindEncode
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindStorage:
		return "storage error"
	case KindDecode:
		return "decode error"
	case KindEncode:
		return "encode error"
	case KindConfig:
		return "configuration error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for dock.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an Error from any mix of Op, Kind, string (context) and error.
// When no underlying error is given the context string becomes the error.
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Storage errors
func StorageReadFailed(key string, err error) error {
	return E(Op("store.Read"), KindStorage, fmt.Sprintf("failed to read %q", key), err)
}

func StorageWriteFailed(key string, err error) error {
	return E(Op("store.Write"), KindStorage, fmt.Sprintf("failed to write %q", key), err)
}

func DecodeFailed(key string, err error) error {
	return E(Op("store.Read"), KindDecode, fmt.Sprintf("stored value for %q is malformed", key), err)
}

func EncodeFailed(key string, err error) error {
	return E(Op("store.Write"), KindEncode, fmt.Sprintf("cannot encode value for %q", key), err)
}

func InvalidShape(key string) error {
	return E(Op("store.Read"), KindInvalid, fmt.Sprintf("stored value for %q failed validation", key))
}

// Backend errors
func BackendPanicked(op string, recovered any) error {
	return E(Op("store."+op), KindStorage, fmt.Sprintf("backend panicked: %v", recovered))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Layout errors
func SectionNotFound(id string) error {
	return E(Op("layout.Section"), KindNotFound, fmt.Sprintf("section %s not found", id))
}
