// Package storage provides the local persistence layer: a small key-value
// abstraction with browser-local-storage semantics, plus a typed record
// store for the user and task collections on top of it.
package storage

// KV is a string key-value store. Operations do not return errors: like
// browser local storage, a failed read is indistinguishable from an absent
// key and callers degrade to empty state. Implementations log failures.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
	Clear()
}

// MemoryKV is an in-process KV, used in tests and as the default backend.
type MemoryKV struct {
	m map[string]string
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: map[string]string{}}
}

func (s *MemoryKV) Get(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryKV) Set(key, value string) {
	s.m[key] = value
}

func (s *MemoryKV) Remove(key string) {
	delete(s.m, key)
}

func (s *MemoryKV) Clear() {
	s.m = map[string]string{}
}
