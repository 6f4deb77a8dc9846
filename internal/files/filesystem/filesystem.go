package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the read-only view of the filesystem the driver needs.
type FileSystemProvider interface {
	// Stat returns file information for the given path, following symlinks.
	Stat(path string) (FileInfo, error)

	// ReadDir returns the direct children of the directory at path.
	// Entries are returned in the order the underlying listing yields them;
	// implementations must not sort.
	ReadDir(path string) ([]FileInfo, error)

	// ReadFile reads a specific file at the given path.
	ReadFile(path string) ([]byte, error)
}
