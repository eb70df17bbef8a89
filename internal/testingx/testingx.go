// Package testingx provides test helpers shared by netgen packages.
//
// Overview:
//   - Responsibility: Mock logger, error code assertions, generated-tree readers
//   - Key Types: MockLogger, LogEntry
//   - Concurrency Model: MockLogger is safe for concurrent use
//   - Error Semantics: Failures are reported through testing.TB
//   - Performance Notes: Intended for tests only
//
// Usage:
//
//	logger := testingx.NewMockLogger(t)
//	tree := testingx.ReadTree(t, filepath.Join(dir, "Shop"))
package testingx

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"go.eggybyte.com/netgen/internal/errors"
	"go.eggybyte.com/netgen/internal/log"
)

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
	Error   error
}

// MockLogger records log calls in memory.
type MockLogger struct {
	t       testing.TB
	mu      *sync.Mutex
	entries *[]LogEntry
	fields  []any
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger(t testing.TB) *MockLogger {
	entries := make([]LogEntry, 0)
	return &MockLogger{t: t, mu: &sync.Mutex{}, entries: &entries}
}

// With returns a logger sharing the same entry list with kv prepended to
// every entry's fields.
func (m *MockLogger) With(kv ...any) log.Logger {
	return &MockLogger{
		t:       m.t,
		mu:      m.mu,
		entries: m.entries,
		fields:  append(append([]any{}, m.fields...), kv...),
	}
}

// Debug records a debug entry.
func (m *MockLogger) Debug(msg string, kv ...any) { m.log("DEBUG", msg, nil, kv) }

// Info records an info entry.
func (m *MockLogger) Info(msg string, kv ...any) { m.log("INFO", msg, nil, kv) }

// Warn records a warning entry.
func (m *MockLogger) Warn(msg string, kv ...any) { m.log("WARN", msg, nil, kv) }

// Error records an error entry.
func (m *MockLogger) Error(err error, msg string, kv ...any) { m.log("ERROR", msg, err, kv) }

func (m *MockLogger) log(level, msg string, err error, kv []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.entries = append(*m.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]any{}, m.fields...), kv...),
		Error:   err,
	})
}

// Entries returns a copy of the recorded entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(*m.entries))
	copy(out, *m.entries)
	return out
}

// AssertLogged fails the test unless an entry with level and msg exists.
func (m *MockLogger) AssertLogged(level, msg string) {
	m.t.Helper()
	for _, e := range m.Entries() {
		if e.Level == level && e.Message == msg {
			return
		}
	}
	m.t.Errorf("expected log entry not found: level=%s msg=%q", level, msg)
}

// Clear drops all recorded entries.
func (m *MockLogger) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.entries = (*m.entries)[:0]
}

// AssertError fails unless err carries code.
func AssertError(t testing.TB, err error, code errors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	if got := errors.CodeOf(err); got != code {
		t.Errorf("expected error code %s, got %s (%v)", code, got, err)
	}
}

// ReadTree returns every regular file below root keyed by its slash-separated
// relative path.
func ReadTree(t testing.TB, root string) map[string]string {
	t.Helper()
	tree := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to read tree %s: %v", root, err)
	}
	return tree
}

// Paths returns the sorted keys of a tree.
func Paths(tree map[string]string) []string {
	paths := make([]string, 0, len(tree))
	for p := range tree {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
