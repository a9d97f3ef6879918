package fixinsert

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := analyzer.AnalyzeFile(ctx, path)
//	if errors.Is(err, fixinsert.ErrFieldValueMismatch) {
//	    // A statement carried more values than field names
//	}
var (
	// ErrNoInputFiles indicates parse or check was called without file arguments.
	ErrNoInputFiles = errors.New("no input files")

	// ErrInputUnreadable indicates an input file could not be opened or read.
	ErrInputUnreadable = errors.New("input file unreadable")

	// ErrFieldValueMismatch indicates a matched statement whose value count
	// cannot be paired with its field list.
	ErrFieldValueMismatch = errors.New("field/value count mismatch")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrColumnOverflow indicates check found observed values wider than their column.
	ErrColumnOverflow = errors.New("column overflow")
)

// usageErrorMarkers are substrings of cobra/pflag errors caused by bad invocations.
var usageErrorMarkers = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrNoInputFiles):
		return ExitGeneralError
	case errors.Is(err, ErrInputUnreadable):
		return ExitInputError
	case errors.Is(err, ErrFieldValueMismatch):
		return ExitMismatch
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrColumnOverflow):
		return ExitColumnOverflow
	}

	errStr := err.Error()
	for _, marker := range usageErrorMarkers {
		if strings.Contains(errStr, marker) {
			return ExitUsageError
		}
	}

	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
