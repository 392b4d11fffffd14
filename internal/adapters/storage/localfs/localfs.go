package localfs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage writes uploads under a base directory and hands back the serving
// path. Callers store the path as an opaque reference.
type Storage struct{ base string }

func New(base string) *Storage { return &Storage{base: base} }

func (s *Storage) Save(name string, data []byte) (string, error) {
	ext := filepath.Ext(name)
	fname := uuid.New().String() + strings.ToLower(ext)
	full := filepath.Join(s.base, fname)
	if err := os.MkdirAll(s.base, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + fname, nil
}

func (s *Storage) Remove(path string) error {
	name := strings.TrimPrefix(path, "/uploads/")
	if name == "" || strings.Contains(name, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.base, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
