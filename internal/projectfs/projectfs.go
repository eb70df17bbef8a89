// Package projectfs provides the file system operations of a generation run.
//
// Overview:
//   - Responsibility: Create the directory skeleton and write rendered artifacts
//   - Key Types: ProjectFS rooted at the generated project directory
//   - Concurrency Model: Sequential file operations, no locking
//   - Error Semantics: File system errors are wrapped as INTERNAL with the relative path
//   - Performance Notes: Idempotent directory creation, one write per file
//
// Usage:
//
//	pfs := projectfs.New("/out/Shop", logger)
//	err := pfs.CreateDirectory("src/Shop/Models")
//	err = pfs.WriteFile("src/Shop/Models/User.cs", content)
package projectfs

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.eggybyte.com/netgen/internal/errors"
	"go.eggybyte.com/netgen/internal/log"
)

const (
	dirMode  fs.FileMode = 0o755
	fileMode fs.FileMode = 0o644
)

// ProjectFS provides file system operations below a root directory. All
// paths passed to its methods are slash-separated and relative to the root.
type ProjectFS struct {
	rootDir string
	logger  log.Logger
}

// New creates a ProjectFS rooted at rootDir.
//
// Parameters:
//   - rootDir: Root directory for operations, created lazily
//   - logger: Receives one debug entry per operation; nil discards
//
// Returns:
//   - *ProjectFS: Project file system instance
func New(rootDir string, logger log.Logger) *ProjectFS {
	if logger == nil {
		logger = log.Nop()
	}
	return &ProjectFS{rootDir: rootDir, logger: logger}
}

// Root returns the root directory.
func (p *ProjectFS) Root() string {
	return p.rootDir
}

// Abs returns the operating system path for a relative path.
func (p *ProjectFS) Abs(path string) string {
	return filepath.Join(p.rootDir, filepath.FromSlash(path))
}

// CreateDirectory creates a directory and its parents if they don't exist.
//
// Parameters:
//   - path: Directory path relative to root
//
// Returns:
//   - error: INTERNAL error wrapping the file system failure
//
// Concurrency:
//   - Single-threaded per directory
func (p *ProjectFS) CreateDirectory(path string) error {
	full := p.Abs(path)
	if info, err := os.Stat(full); err == nil && info.IsDir() {
		p.logger.Debug("directory exists", log.Str("path", path))
		return nil
	}
	if err := os.MkdirAll(full, dirMode); err != nil {
		return errors.Wrapf(errors.CodeInternal, "projectfs.CreateDirectory", err, "failed to create directory %s", path)
	}
	p.logger.Debug("created directory", log.Str("path", path))
	return nil
}

// WriteFile writes content to path, creating parent directories and
// replacing any existing file.
//
// Parameters:
//   - path: File path relative to root
//   - content: File content
//
// Returns:
//   - error: INTERNAL error wrapping the file system failure
func (p *ProjectFS) WriteFile(path, content string) error {
	full := p.Abs(path)
	if err := os.MkdirAll(filepath.Dir(full), dirMode); err != nil {
		return errors.Wrapf(errors.CodeInternal, "projectfs.WriteFile", err, "failed to create parent directory for %s", path)
	}
	if err := os.WriteFile(full, []byte(content), fileMode); err != nil {
		return errors.Wrapf(errors.CodeInternal, "projectfs.WriteFile", err, "failed to write file %s", path)
	}
	p.logger.Debug("wrote file", log.Str("path", path), log.Int("bytes", len(content)))
	return nil
}

// FileExists reports whether a regular file exists at path.
func (p *ProjectFS) FileExists(path string) (bool, error) {
	info, err := os.Stat(p.Abs(path))
	if err == nil {
		return !info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(errors.CodeInternal, "projectfs.FileExists", err)
}

// DirectoryExists reports whether a directory exists at path.
func (p *ProjectFS) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(p.Abs(path))
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(errors.CodeInternal, "projectfs.DirectoryExists", err)
}

// ReadFile reads the content of path.
func (p *ProjectFS) ReadFile(path string) (string, error) {
	content, err := os.ReadFile(p.Abs(path))
	if err != nil {
		return "", errors.Wrapf(errors.CodeInternal, "projectfs.ReadFile", err, "failed to read file %s", path)
	}
	return string(content), nil
}
