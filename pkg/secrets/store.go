package secrets

import "strings"

// Store is a flat, read-only view of the override-variable namespace.
// The engine never reads the process environment directly; callers build
// a Store at the boundary so the precedence logic stays testable with
// synthetic maps.
type Store map[string]string

// NewStore copies the given mapping into a Store
func NewStore(vars map[string]string) Store {
	s := make(Store, len(vars))
	for k, v := range vars {
		s[k] = v
	}
	return s
}

// FromEnviron builds a Store from os.Environ-style "KEY=value" pairs
func FromEnviron(environ []string) Store {
	s := make(Store, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		s[key] = value
	}
	return s
}

// Get returns the value for an exact key
func (s Store) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// Keys returns all keys in the store, in no particular order
func (s Store) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}
