package store

import (
	"sync"

	"gradebook/internal/domain"
)

// MemKV is a map-backed KV, used by tests.
type MemKV struct {
	mu sync.Mutex
	m  map[string][]byte
}

// NewMemKV returns an empty in-memory store.
func NewMemKV() *MemKV { return &MemKV{m: make(map[string][]byte)} }

func (s *MemKV) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemKV) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemKV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, key)
	return nil
}

// Compile-time assertion that MemKV implements domain.KV.
var _ domain.KV = (*MemKV)(nil)
