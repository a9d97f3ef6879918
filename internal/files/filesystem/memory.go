package filesystem

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths use forward slashes; directories exist implicitly as prefixes of files.
type MemoryFileSystem struct {
	files map[string][]byte
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string][]byte)}
}

// AddFile adds or replaces a file.
func (m *MemoryFileSystem) AddFile(name, content string) {
	m.files[path.Clean(name)] = []byte(content)
}

func (m *MemoryFileSystem) Open(name string) (io.ReadCloser, error) {
	content, ok := m.files[path.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (m *MemoryFileSystem) Stat(name string) (FileInfo, error) {
	name = path.Clean(name)
	if content, ok := m.files[name]; ok {
		return &memoryFileInfo{name: path.Base(name), size: int64(len(content)), mode: 0644}, nil
	}
	if m.isDir(name) {
		return &memoryFileInfo{name: path.Base(name), mode: 0755 | fs.ModeDir}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemoryFileSystem) Walk(root string, fn WalkFunc) error {
	root = path.Clean(root)
	if _, err := m.Stat(root); err != nil {
		return err
	}

	var paths []string
	for name := range m.files {
		if name == root || underDir(name, root) {
			paths = append(paths, name)
		}
	}
	sort.Strings(paths)

	for _, name := range paths {
		info, _ := m.Stat(name)
		if err := fn(name, info); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryFileSystem) isDir(name string) bool {
	for file := range m.files {
		if underDir(file, name) {
			return true
		}
	}
	return false
}

func underDir(name, dir string) bool {
	if dir == "." {
		return !strings.HasPrefix(name, "/")
	}
	return strings.HasPrefix(name, strings.TrimSuffix(dir, "/")+"/")
}
