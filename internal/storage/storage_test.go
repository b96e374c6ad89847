package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return s
}

func TestStorage_Store(t *testing.T) {
	s := newTestStorage(t)

	name, err := s.Store([]byte("screenshot bytes"), "crash.png")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(name, ".png"))
	require.NotEqual(t, "crash.png", name)

	data, err := os.ReadFile(s.Resolve(name))
	require.NoError(t, err)
	require.Equal(t, "screenshot bytes", string(data))
}

func TestStorage_Store_NoExtension(t *testing.T) {
	s := newTestStorage(t)

	name, err := s.Store([]byte("plain"), "README")
	require.NoError(t, err)
	require.NotContains(t, name, ".")
}

func TestStorage_Store_Empty(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Store(nil, "empty.txt")
	require.ErrorIs(t, err, ErrEmptyFile)
}

func TestStorage_Store_UniqueNames(t *testing.T) {
	s := newTestStorage(t)

	first, err := s.Store([]byte("a"), "log.txt")
	require.NoError(t, err)
	second, err := s.Store([]byte("b"), "log.txt")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestStorage_Delete(t *testing.T) {
	s := newTestStorage(t)

	name, err := s.Store([]byte("bytes"), "doc.pdf")
	require.NoError(t, err)

	removed, err := s.Delete(name)
	require.NoError(t, err)
	require.True(t, removed)

	// idempotent: deleting again reports false without failing
	removed, err = s.Delete(name)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestStorage_Resolve_StaysInsideRoot(t *testing.T) {
	s := newTestStorage(t)

	path := s.Resolve("../../etc/passwd")
	require.Equal(t, filepath.Join(s.Root(), "passwd"), path)
}
