// Package kvstore provides the in-memory key-value store exposed by the
// server as the kv:// resource and mutated through the kv_* tools.
package kvstore

import (
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
)

// Description is the fixed description string reported by Describe.
const Description = "In-memory key-value store"

// Operations lists the operation names supported by the store.
var Operations = []string{"get", "set", "list", "delete"}

// Store maps string keys to arbitrary JSON-serializable values. A single
// Store instance may be shared by concurrent MCP sessions, so all access
// goes through an RWMutex. The store lives and dies with the server
// process; there is no persistence.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
}

// Info is a read-only snapshot of the store, returned by Describe and
// rendered by MarshalIndent when the store is read as a resource.
type Info struct {
	Description string   `json:"description"`
	Operations  []string `json:"operations"`
	CurrentKeys []string `json:"current_keys"`
	Count       int      `json:"count"`
}

// New creates a store populated with a copy of seed. A nil seed yields an
// empty store.
func New(seed map[string]any) *Store {
	entries := make(map[string]any, len(seed))
	for k, v := range seed {
		entries[k] = v
	}
	slog.Debug("initialized kv store", slog.Int("items", len(entries)))
	return &Store{entries: entries}
}

// Get returns the value stored under key. The second return value reports
// whether the key was present, so a stored nil is distinguishable from a
// missing key.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	slog.Debug("kv get", slog.String("key", key), slog.Bool("found", ok))
	return v, ok
}

// Set stores value under key, overwriting any existing entry.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	slog.Debug("kv set", slog.String("key", key))
}

// Delete removes key from the store. It returns true if the key existed and
// was removed; deleting a missing key is not an error.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
	}
	slog.Debug("kv delete", slog.String("key", key), slog.Bool("deleted", ok))
	return ok
}

// Keys returns all current keys in sorted order. Sorting keeps listing and
// serialization deterministic across runs.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keysLocked()
}

func (s *Store) keysLocked() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the current entry count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Describe returns a snapshot of the store: description, supported
// operations, current keys, and entry count. Keys and count come from the
// same locked view, so they always agree. It never mutates state.
func (s *Store) Describe() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := s.keysLocked()
	return Info{
		Description: Description,
		Operations:  Operations,
		CurrentKeys: keys,
		Count:       len(keys),
	}
}

// MarshalIndent renders Describe's output as 2-space-indented JSON with
// stable field and key ordering. This is the resource content for kv://store.
func (s *Store) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(s.Describe(), "", "  ")
}
