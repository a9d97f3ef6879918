package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/fixinsert/internal/files/filesystem"
	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

// Scanner resolves input arguments to files.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	extensions []string
}

// NewScanner creates a Scanner over the OS filesystem.
// An empty extensions list falls back to fixinsert.DefaultExtensions.
func NewScanner(extensions []string) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), extensions)
}

// NewScannerWithFS creates a Scanner with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, extensions []string) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if len(extensions) == 0 {
		extensions = fixinsert.DefaultExtensions
	}
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return &Scanner{
		fsProvider: fsProvider,
		extensions: normalized,
	}
}

// Resolve returns the files to analyze for args.
// A missing argument is an error wrapping fixinsert.ErrInputUnreadable.
func (s *Scanner) Resolve(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := s.fsProvider.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %v", arg, fixinsert.ErrInputUnreadable, err)
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		err = s.fsProvider.Walk(arg, func(path string, info filesystem.FileInfo) error {
			if s.matches(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", arg, err)
		}
	}

	return files, nil
}

func (s *Scanner) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range s.extensions {
		if ext == want {
			return true
		}
	}
	return false
}
