package taskfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/colonyops/paratrooper/internal/core/task"
)

// FileStore reads and writes the task file. Each command invocation
// loads the whole file into memory, mutates the document, and writes
// it back out; there is no locking and no partial-write handling
// beyond the atomic rename on save.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load parses the task file. A missing file yields an empty document.
func (s *FileStore) Load() (*task.Document, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return task.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return Parse(string(data)), nil
}

// Save serializes the document and atomically replaces the task file.
func (s *FileStore) Save(doc *task.Document) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create task file dir: %w", err)
		}
	}
	if err := atomic.WriteFile(s.Path, strings.NewReader(Serialize(doc))); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// Exists reports whether the task file is present on disk.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}
