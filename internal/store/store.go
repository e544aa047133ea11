package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
	"github.com/atelier-dev/atelier/internal/fsops"
	logger "github.com/atelier-dev/atelier/internal/logging"
)

// Store is a typed key/value settings document backed by a JSON file.
//
// Reads are fail-closed: a missing or corrupt backing file leaves the
// in-memory document empty and Get falls back to caller defaults.
// Explicit writes propagate failure, since a save the caller asked for
// must not silently lose data.
type Store struct {
	path   string
	values map[string]Value
	dirty  bool
	log    logger.Logger
}

// New creates an empty store backed by the given file path. The file is
// not touched until Load or Save is called.
func New(path string, log logger.Logger) *Store {
	return &Store{
		path:   path,
		values: make(map[string]Value),
		log:    log,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Dirty reports whether the document has unsaved changes.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Load reads the backing file if present. Failure is absorbed, not
// propagated: a missing file leaves the document as-is, and a corrupt
// file is logged and ignored so a bad settings file can never take the
// application down. Comments and trailing commas in the file are
// tolerated.
func (s *Store) Load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warnf("Failed to read settings file %s: %v", s.path, err)
		}
		return
	}

	values := make(map[string]Value)
	if err := json.Unmarshal(jsonc.ToJSON(data), &values); err != nil {
		s.log.Warnf("Settings file %s is malformed, keeping current document: %v", s.path, err)
		return
	}

	s.values = values
	s.dirty = false
}

// Save writes the document to the backing file, creating parent
// directories as needed. The write goes to a temporary file first and is
// renamed into place, so a concurrent reader never observes a
// half-written document. Clears the dirty flag on success.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	data = append(data, '\n')

	if err := fsops.AtomicWrite(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	s.dirty = false
	return nil
}

// Get returns the value stored under key coerced to T, or def when the
// key is absent, holds a different shape, or the coercion is lossy.
// Get never fails.
func Get[T Settable](s *Store, key string, def T) T {
	v, ok := s.values[key]
	if !ok {
		return def
	}
	out, ok := coerce[T](v)
	if !ok {
		return def
	}
	return out
}

// Set stores a typed value under key and marks the document modified.
// The change is in-memory only until Save is called.
func Set[T Settable](s *Store, key string, val T) {
	s.values[key] = valueOf(val)
	s.dirty = true
}

// Lookup returns the raw value stored under key. Callers that know the
// expected type should prefer Get.
func (s *Store) Lookup(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present in the document.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Remove deletes key from the document. Removing an absent key is a no-op.
func (s *Store) Remove(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.dirty = true
}

// Keys returns all keys in the document, sorted.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys in the document.
func (s *Store) Len() int {
	return len(s.values)
}

// Reset clears the document and marks it modified.
func (s *Store) Reset() {
	s.values = make(map[string]Value)
	s.dirty = true
}

// ExportJSON serializes the document to JSON text.
func (s *Store) ExportJSON(pretty bool) (string, error) {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(s.values, "", "  ")
	} else {
		data, err = json.Marshal(s.values)
	}
	if err != nil {
		return "", fmt.Errorf("failed to export settings: %w", err)
	}
	return string(data), nil
}

// ExportTOML serializes the document to TOML text.
func (s *Store) ExportTOML() (string, error) {
	native := make(map[string]any, len(s.values))
	for key, v := range s.values {
		native[key] = v.native()
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(native); err != nil {
		return "", fmt.Errorf("failed to export settings as TOML: %w", err)
	}
	return buf.String(), nil
}

// LoadFromJSON replaces the document with caller-supplied JSON text.
// Unlike Load, malformed input propagates an error: this is an explicit
// import, and silently dropping the caller's text would be a bug. The
// current document is untouched on failure.
func (s *Store) LoadFromJSON(text string) error {
	values := make(map[string]Value)
	if err := json.Unmarshal(jsonc.ToJSON([]byte(text)), &values); err != nil {
		return fmt.Errorf("%w: %v", atelierrors.ErrInvalidDocument, err)
	}

	s.values = values
	s.dirty = true
	return nil
}
