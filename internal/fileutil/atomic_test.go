package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func assertOnlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, name, entries[0].Name())
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tables_gen.go")

	require.NoError(t, WriteAtomic(path, 0o644, writeString("package tables\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package tables\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	assertOnlyFile(t, dir, "tables_gen.go")
}

func TestWriteAtomicOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, WriteAtomic(path, 0o644, writeString("initial")))
	require.NoError(t, WriteAtomic(path, 0o600, writeString("updated content")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "updated content", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteAtomicWriterError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, WriteAtomic(path, 0o644, writeString("original")))

	boom := errors.New("render failed")
	err := WriteAtomic(path, 0o644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
	assertOnlyFile(t, dir, "out.txt")
}

func TestWriteAtomicLarge(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "large.txt")

	err := WriteAtomic(path, 0o644, func(w io.Writer) error {
		for i := range 10000 {
			if _, err := fmt.Fprintf(w, "%d,\n", i); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(4096))
}

func TestWriteAtomicMissingDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	err := WriteAtomic(path, 0o644, writeString("x"))
	assert.ErrorContains(t, err, "failed to create temp file")
}
