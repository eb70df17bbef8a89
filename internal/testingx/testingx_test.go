package testingx

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nerrors "go.eggybyte.com/netgen/internal/errors"
)

func TestMockLogger(t *testing.T) {
	logger := NewMockLogger(t)
	logger.Debug("d", "k", "v")
	logger.Info("i")
	logger.Warn("w")
	logger.Error(errors.New("boom"), "e")

	entries := logger.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "DEBUG", entries[0].Level)
	assert.Equal(t, []any{"k", "v"}, entries[0].Fields)
	assert.EqualError(t, entries[3].Error, "boom")

	logger.AssertLogged("WARN", "w")

	logger.Clear()
	assert.Empty(t, logger.Entries())
}

func TestMockLogger_WithSharesEntries(t *testing.T) {
	logger := NewMockLogger(t)
	child := logger.With("project", "Shop")
	child.Info("generated", "files", 3)

	entries := logger.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, []any{"project", "Shop", "files", 3}, entries[0].Fields)
}

func TestMockLogger_Concurrent(t *testing.T) {
	logger := NewMockLogger(t)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("m")
		}()
	}
	wg.Wait()
	assert.Len(t, logger.Entries(), 50)
}

func TestAssertError(t *testing.T) {
	AssertError(t, nerrors.New(nerrors.CodeNotFound, "x"), nerrors.CodeNotFound)
}

func TestReadTree(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "c.txt"), []byte("c"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "top.txt"), []byte("t"), 0o644))

	tree := ReadTree(t, root)
	assert.Equal(t, []string{"a/b/c.txt", "top.txt"}, Paths(tree))
	assert.Equal(t, "c", tree["a/b/c.txt"])
}
