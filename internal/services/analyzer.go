// Package services wires the extractor, accumulator and catalog into the
// operations the CLI exposes.
package services

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/vvka-141/fixinsert/internal/accumulate"
	"github.com/vvka-141/fixinsert/internal/extract"
	"github.com/vvka-141/fixinsert/internal/files/filesystem"
	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

// FileResult is the outcome of analyzing one input.
type FileResult struct {
	Path        string
	Accumulator *accumulate.Accumulator

	// Lines is the number of lines read, Matched the number that were
	// insert statements.
	Lines   int
	Matched int
}

// AnalysisService runs the extract → accumulate pipeline over input files.
// Each file gets its own accumulator; nothing is shared between files.
// Not safe for concurrent use.
type AnalysisService struct {
	fsProvider filesystem.FileSystemProvider
	extractor  extract.LineExtractor
	logger     fixinsert.Logger
	config     fixinsert.AnalysisConfig
}

// NewAnalysisService creates an AnalysisService.
// Panics if fsProvider or logger is nil.
func NewAnalysisService(fsProvider filesystem.FileSystemProvider, logger fixinsert.Logger, config fixinsert.AnalysisConfig) *AnalysisService {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &AnalysisService{
		fsProvider: fsProvider,
		extractor:  extract.NewLineExtractor(),
		logger:     logger,
		config:     config,
	}
}

// AnalyzeFile streams path line by line and returns its accumulated lengths.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, path string) (*FileResult, error) {
	f, err := s.fsProvider.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, fixinsert.ErrInputUnreadable, err)
	}
	defer f.Close()

	result, err := s.AnalyzeReader(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	result.Path = path

	s.logger.Verbose("%s: %d line(s), %d insert statement(s), %d field(s)",
		path, result.Lines, result.Matched, result.Accumulator.Len())
	return result, nil
}

// AnalyzeReader runs the pipeline over r. Lines that are not insert
// statements are skipped. A statement the accumulator rejects aborts the
// run with the line number attached.
func (s *AnalysisService) AnalyzeReader(ctx context.Context, r io.Reader) (*FileResult, error) {
	acc := accumulate.New(s.config.Measure, s.config.Mismatch)
	result := &FileResult{Accumulator: acc}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), fixinsert.MaxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Lines++

		stmt, ok := s.extractor.Extract(scanner.Text())
		if !ok {
			continue
		}
		result.Matched++

		if err := acc.Add(stmt); err != nil {
			return nil, fmt.Errorf("line %d: %w", result.Lines, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", fixinsert.ErrInputUnreadable, result.Lines+1, err)
	}
	return result, nil
}
