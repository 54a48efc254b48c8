package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrRead marks a backing file that is missing or unreadable.
	ErrRead = errors.New("store file unreadable")
	// ErrFormat marks a backing file whose content does not deserialize
	// into a key/record map.
	ErrFormat = errors.New("store file malformed")
)

// Store is a lock-guarded, file-backed map of records. The full record set is
// loaded once at startup and rewritten in full on every flush. All access to
// the records goes through WithLock or Snapshot; the map is never handed out.
type Store[R any] struct {
	mu      sync.Mutex
	path    string
	records map[string]R
}

// Load reads the backing file into memory. Both failure modes are fatal to
// the caller: the store must never start from partial or default state.
func Load[R any](path string) (*Store[R], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	records := make(map[string]R)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFormat, path, err)
	}
	// A literal null unmarshals cleanly but nils the map.
	if records == nil {
		return nil, fmt.Errorf("%w: %s: content is not a key/record map", ErrFormat, path)
	}

	return &Store[R]{path: path, records: records}, nil
}

// Path returns the location of the backing file.
func (s *Store[R]) Path() string {
	return s.path
}

// WithLock runs fn with exclusive access to the record set. The lock is
// released on every return path, including when fn fails. Records must not
// escape fn.
func (s *Store[R]) WithLock(fn func(v *View[R]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&View[R]{store: s})
}

// Snapshot returns a copy of the record set taken under the lock, for
// read-only rendering paths.
func (s *Store[R]) Snapshot() map[string]R {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]R, len(s.records))
	for k, r := range s.records {
		out[k] = r
	}
	return out
}

// Keys returns the record keys, for boot-time route registration.
func (s *Store[R]) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	return keys
}

// View is the handle fn receives inside WithLock. It is only valid for the
// duration of that call.
type View[R any] struct {
	store *Store[R]
}

// Get looks up a record by key.
func (v *View[R]) Get(key string) (R, bool) {
	r, ok := v.store.records[key]
	return r, ok
}

// Put replaces the record stored under key.
func (v *View[R]) Put(key string, rec R) {
	v.store.records[key] = rec
}

// Flush serializes the full record set and atomically replaces the backing
// file. A failed flush leaves the previous file content intact.
func (v *View[R]) Flush() error {
	data, err := json.MarshalIndent(v.store.records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	dir := filepath.Dir(v.store.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(v.store.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, v.store.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
