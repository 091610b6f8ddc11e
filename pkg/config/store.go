package config

import (
	"maps"
	"slices"
)

// Entry is a single key/value pair of a Store.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Store holds the key/value pairs parsed from one configuration buffer.
// It is never modified after Parse returns.
type Store struct {
	values map[string]string
}

// NewStore builds a Store from an existing map. The map is copied.
func NewStore(values map[string]string) *Store {
	return &Store{values: maps.Clone(values)}
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Len returns the number of keys.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Keys returns all keys in ascending order.
func (s *Store) Keys() []string {
	if s == nil {
		return []string{}
	}
	return slices.Sorted(maps.Keys(s.values))
}

// Entries returns all entries ordered by key.
func (s *Store) Entries() []Entry {
	keys := s.Keys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Value: s.values[k]})
	}
	return out
}

// Map returns a copy of the underlying key/value map.
func (s *Store) Map() map[string]string {
	if s == nil {
		return map[string]string{}
	}
	return maps.Clone(s.values)
}
