package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/zhubert/dock/internal/logger"
)

// FileBackend keeps every key in a single JSON object on disk.
//
// The file is read lazily on first access and cached. Writes replace the
// whole file through a temp file and rename, so a crash mid-write leaves
// either the old or the new content, never a torn file.
type FileBackend struct {
	mu      sync.RWMutex
	path    string
	entries map[string]json.RawMessage
	loaded  bool
	// pending holds the content of recent flushes the watcher has not
	// seen yet, oldest first, used to tell our own writes apart from
	// external edits.
	pending [][]byte
}

// maxPendingWrites bounds pending when nothing is watching the file.
const maxPendingWrites = 64

// NewFileBackend creates a backend stored at path. The file and its
// directory are created on first write.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the backing file path.
func (f *FileBackend) Path() string {
	return f.path
}

func (f *FileBackend) Get(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.loadLocked(); err != nil {
		return nil, false, err
	}
	v, ok := f.entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (f *FileBackend) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.loadLocked(); err != nil {
		// A corrupt file is replaced rather than blocking every future write.
		if _, ok := err.(*corruptFileError); !ok {
			return err
		}
		f.entries = make(map[string]json.RawMessage)
		f.loaded = true
	}

	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}
	f.entries[key] = append(json.RawMessage(nil), value...)
	return f.flushLocked()
}

func (f *FileBackend) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.loadLocked(); err != nil {
		return err
	}
	if _, ok := f.entries[key]; !ok {
		return nil
	}
	delete(f.entries, key)
	return f.flushLocked()
}

// Reload drops the cache so the next access re-reads the file.
func (f *FileBackend) Reload() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = false
	f.entries = nil
}

type corruptFileError struct {
	path string
	err  error
}

func (e *corruptFileError) Error() string {
	return fmt.Sprintf("layout file %s is corrupt: %v", e.path, e.err)
}

func (e *corruptFileError) Unwrap() error { return e.err }

func (f *FileBackend) loadLocked() error {
	if f.loaded {
		return nil
	}

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		f.entries = make(map[string]json.RawMessage)
		f.loaded = true
		return nil
	}
	if err != nil {
		return err
	}

	entries := make(map[string]json.RawMessage)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &entries); err != nil {
			return &corruptFileError{path: f.path, err: err}
		}
	}
	f.entries = entries
	f.loaded = true
	return nil
}

func (f *FileBackend) flushLocked() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return err
	}
	f.pending = append(f.pending, data)
	if n := len(f.pending); n > maxPendingWrites {
		f.pending = append([][]byte(nil), f.pending[n-maxPendingWrites:]...)
	}
	return nil
}

// ownWrite reports whether the file on disk holds one of this backend's
// recent writes. Writes older than the match are superseded and dropped;
// the match itself is kept because one rename can raise several events.
func (f *FileBackend) ownWrite() bool {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.pending) - 1; i >= 0; i-- {
		if bytes.Equal(data, f.pending[i]) {
			f.pending = f.pending[i:]
			return true
		}
	}
	return false
}

// Watch reloads the cache whenever the file is changed by someone else, for
// example a second dock instance. onChange, if non-nil, runs after each
// reload. Writes made through this backend are not reported. Watch blocks
// until ctx is cancelled.
func (f *FileBackend) Watch(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	// Watch the directory: the file itself is replaced on every write.
	if err := w.Add(dir); err != nil {
		return err
	}

	log := logger.ComponentLogger("store")
	log.Debug("Watching layout file", "path", f.path)

	base := filepath.Base(f.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			if f.ownWrite() {
				continue
			}
			f.Reload()
			log.Debug("Layout file changed on disk", "op", ev.Op.String())
			if onChange != nil {
				onChange()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("Layout file watcher error", "error", err)
		}
	}
}
