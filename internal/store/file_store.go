package store

import (
	"os"
	"path/filepath"
	"sync"

	"gradebook/internal/domain"
)

// FileKV persists each key as a <key>.json file under a root directory.
type FileKV struct {
	dir string
	mu  sync.Mutex
}

// NewFileKV returns a FileKV rooted at dir.
func NewFileKV(dir string) *FileKV { return &FileKV{dir: dir} }

func (s *FileKV) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the stored bytes for key; ok is false when no file exists.
func (s *FileKV) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path(key))
	if err != nil {
		return nil, false, err
	}
	if b == nil {
		return nil, false, nil
	}
	return b, true, nil
}

// Set replaces the value for key, writing via a temp file then rename.
func (s *FileKV) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFile(s.path(key), value, 0o600)
}

// Delete removes the backing file; a missing file is not an error.
func (s *FileKV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Compile-time assertion that FileKV implements domain.KV.
var _ domain.KV = (*FileKV)(nil)
