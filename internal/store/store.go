// Package store persists panel geometry through a narrow key/value backend.
//
// Persistence is best effort. Read and Write never return errors and never
// panic: any backend, encoding or validation failure is handed to a Reporter
// and the caller gets its fallback (Read) or nothing happens (Write).
package store

import (
	"bytes"
	"encoding/json"

	"github.com/zhubert/dock/internal/errors"
	"github.com/zhubert/dock/internal/logger"
)

// Operation names the adapter call that failed.
type Operation string

const (
	OpRead  Operation = "read"
	OpWrite Operation = "write"
)

// Backend is the raw key/value store behind the adapter.
// Get returns ok=false for a key that was never written.
type Backend interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// Deleter is implemented by backends that can forget a key.
type Deleter interface {
	Delete(key string) error
}

// Reporter receives every failure the adapter swallows.
type Reporter func(op Operation, key string, err error)

// Adapter wraps a Backend with fail-safe reads and writes.
type Adapter struct {
	backend  Backend
	reporter Reporter
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithReporter replaces the default logging reporter.
func WithReporter(r Reporter) Option {
	return func(a *Adapter) {
		if r != nil {
			a.reporter = r
		}
	}
}

// New creates an adapter over backend.
func New(backend Backend, opts ...Option) *Adapter {
	a := &Adapter{
		backend:  backend,
		reporter: LogReporter,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// LogReporter is the default Reporter. It writes a warning to the log file.
func LogReporter(op Operation, key string, err error) {
	logger.ComponentLogger("store").Warn("Geometry store failure",
		"op", string(op),
		"key", key,
		"kind", errors.GetKind(err).String(),
		"error", err,
	)
}

// Read decodes the JSON value stored under key into a T.
//
// A missing key yields fallback without a report. A backend failure, a value
// that does not decode into T, a JSON null, or a value rejected by validate
// yields fallback and exactly one report with OpRead. validate may be nil.
func Read[T any](a *Adapter, key string, fallback T, validate func(T) bool) T {
	raw, ok, err := a.get(key)
	if err != nil {
		a.reporter(OpRead, key, err)
		return fallback
	}
	if !ok {
		return fallback
	}

	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		a.reporter(OpRead, key, errors.InvalidShape(key))
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		a.reporter(OpRead, key, errors.DecodeFailed(key, err))
		return fallback
	}
	if validate != nil && !validate(v) {
		a.reporter(OpRead, key, errors.InvalidShape(key))
		return fallback
	}
	return v
}

// Write stores value under key as JSON. Failures are reported, never returned.
func (a *Adapter) Write(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		a.reporter(OpWrite, key, errors.EncodeFailed(key, err))
		return
	}
	if err := a.set(key, data); err != nil {
		a.reporter(OpWrite, key, err)
	}
}

// Delete removes key when the backend supports it. It returns false when the
// backend cannot delete or the delete failed (the failure is reported).
func (a *Adapter) Delete(key string) bool {
	d, ok := a.backend.(Deleter)
	if !ok {
		return false
	}
	if err := a.del(d, key); err != nil {
		a.reporter(OpWrite, key, err)
		return false
	}
	return true
}

// Raw returns the undecoded value under key. It is used by diagnostics that
// print what is on disk, so failures are reported like any other read.
func (a *Adapter) Raw(key string) ([]byte, bool) {
	raw, ok, err := a.get(key)
	if err != nil {
		a.reporter(OpRead, key, err)
		return nil, false
	}
	return raw, ok
}

func (a *Adapter) get(key string) (raw []byte, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			raw, ok, err = nil, false, errors.BackendPanicked("Get", r)
		}
	}()
	raw, ok, err = a.backend.Get(key)
	if err != nil {
		return nil, false, errors.StorageReadFailed(key, err)
	}
	return raw, ok, nil
}

func (a *Adapter) set(key string, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.BackendPanicked("Set", r)
		}
	}()
	if err := a.backend.Set(key, data); err != nil {
		return errors.StorageWriteFailed(key, err)
	}
	return nil
}

func (a *Adapter) del(d Deleter, key string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.BackendPanicked("Delete", r)
		}
	}()
	if err := d.Delete(key); err != nil {
		return errors.StorageWriteFailed(key, err)
	}
	return nil
}
