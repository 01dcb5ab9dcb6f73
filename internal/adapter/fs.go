// Package adapter contains filesystem and ignore-list adapters for the
// fastascan CLI.
package adapter

import (
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/skua-bio/fastascan/internal/model"
)

// ScanFS abstracts filesystem-specific operations that the domain layer
// relies on when scanning directory trees. It intentionally hides direct
// `os` access so the workflow logic can be tested without touching the
// disk.
type ScanFS interface {
	// Walk traverses the tree rooted at root in lexical order, calling fn
	// for every entry including the root itself.
	Walk(root m.Path, fn WalkDirFunc) error

	// ReadFile loads a file from disk and returns its contents. Symlinks
	// are followed.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check
	// existence or distinguish between files and directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// WalkDirFunc mirrors the callback shape used by filepath.WalkDir. It is
// defined here to avoid leaking the standard-library type directly into
// the domain layer.
type WalkDirFunc func(path string, entry fs.DirEntry, err error) error

// LocalFS is the concrete implementation that backs the ScanFS interface
// with the host filesystem.
type LocalFS struct{}

// NewLocalFS constructs a LocalFS instance ready to be wired into the
// workflow.
func NewLocalFS() *LocalFS {
	return &LocalFS{}
}

// Walk iterates over every entry under root in lexical order. Directory
// symlinks are not followed.
func (a *LocalFS) Walk(root m.Path, fn WalkDirFunc) error {
	return filepath.WalkDir(string(root), fs.WalkDirFunc(fn))
}

// ReadFile loads file contents from disk.
func (a *LocalFS) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFS) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalFS) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
