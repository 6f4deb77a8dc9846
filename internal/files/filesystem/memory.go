package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// ReadDir returns children in insertion order, which lets tests model an
// arbitrary (unsorted) directory listing.
type MemoryFileSystem struct {
	entries map[string]*memoryEntry
	order   []string
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.put(root, nil, true)
	return mfs
}

// Root returns the normalized root directory.
func (mfs *MemoryFileSystem) Root() string {
	return mfs.root
}

// AddFile adds a file relative to the root (or at an absolute path).
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	abs := mfs.resolve(filePath)
	mfs.ensureDirectoriesExist(abs)
	mfs.put(abs, []byte(content), false)
}

// AddDir adds an empty directory relative to the root (or at an absolute path).
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	abs := mfs.resolve(dirPath)
	mfs.ensureDirectoriesExist(abs)
	mfs.put(abs, nil, true)
}

func (mfs *MemoryFileSystem) put(abs string, content []byte, isDir bool) {
	mode := fs.FileMode(0644)
	if isDir {
		mode = 0755 | fs.ModeDir
	}
	if _, exists := mfs.entries[abs]; !exists {
		mfs.order = append(mfs.order, abs)
	}
	mfs.entries[abs] = &memoryEntry{
		absPath: abs,
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(abs),
			size:    int64(len(content)),
			mode:    mode,
			modTime: time.Now(),
			isDir:   isDir,
		},
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(p string) {
	dir := path.Dir(p)
	if dir == p || dir == "." {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}
	mfs.ensureDirectoriesExist(dir)
	mfs.put(dir, nil, true)
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) lookup(p string) (*memoryEntry, error) {
	e, ok := mfs.entries[mfs.resolve(p)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return e, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	e, err := mfs.lookup(p)
	if err != nil {
		return nil, err
	}
	return e.info, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(p string) ([]FileInfo, error) {
	e, err := mfs.lookup(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	if !e.info.IsDir() {
		return nil, fmt.Errorf("failed to read directory: %s is not a directory", p)
	}

	prefix := e.absPath + "/"
	if e.absPath == "/" {
		prefix = "/"
	}

	var result []FileInfo
	for _, abs := range mfs.order {
		if abs == e.absPath || !strings.HasPrefix(abs, prefix) {
			continue
		}
		if strings.Contains(strings.TrimPrefix(abs, prefix), "/") {
			continue
		}
		result = append(result, mfs.entries[abs].info)
	}
	return result, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	e, err := mfs.lookup(p)
	if err != nil {
		return nil, err
	}
	if e.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", p)
	}
	return e.content, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
