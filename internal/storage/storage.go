package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyFile is returned when a zero-length upload is stored.
var ErrEmptyFile = errors.New("cannot store empty file")

// Storage writes uploaded attachments into a flat root directory under
// generated names. Names look like "<uuid><ext>", so concurrent uploads
// never collide and clients never pick paths.
type Storage struct {
	root string
}

// New creates the root directory if absent and returns a Storage rooted there.
func New(root string) (*Storage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to initialize storage directory %s: %w", root, err)
	}
	return &Storage{root: root}, nil
}

// Root returns the storage root directory.
func (s *Storage) Root() string {
	return s.root
}

// Store writes data under a freshly generated name and returns that name.
// The extension is taken from originalName (empty when it has none).
func (s *Storage) Store(data []byte, originalName string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	ext := ""
	if i := strings.LastIndex(originalName, "."); i >= 0 {
		ext = originalName[i:]
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(s.Resolve(name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}

	return name, nil
}

// Delete removes a stored file, reporting whether a file was actually
// removed. Deleting an absent file is not an error.
func (s *Storage) Delete(name string) (bool, error) {
	err := os.Remove(s.Resolve(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete file %s: %w", name, err)
	}
	return true, nil
}

// Resolve composes the path of a stored file without checking existence.
// The name is flattened to its base so a crafted value cannot escape the
// root directory.
func (s *Storage) Resolve(name string) string {
	return filepath.Join(s.root, filepath.Base(filepath.Clean(name)))
}
