package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// WalkFunc is called for every regular file under a walked directory,
// in lexical path order. Returning an error stops the walk.
type WalkFunc func(path string, info FileInfo) error

// FileSystemProvider is the file access used by the scanner and analyzer.
type FileSystemProvider interface {
	// Open opens a file for streaming reads. The caller closes it.
	Open(path string) (io.ReadCloser, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// Walk visits every regular file below root.
	Walk(root string, fn WalkFunc) error
}
