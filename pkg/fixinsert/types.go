package fixinsert

import (
	"fmt"
	"strings"
	"time"
)

// Statement is one matched insert statement, split into its parts.
// Fields and Values are positionally aligned: Values[i] belongs to Fields[i].
type Statement struct {
	// Table is the table name exactly as written after "insert into ".
	Table string

	// Fields are the column names from the parenthesized field list.
	Fields []string

	// Values are the raw value tokens, quotes and escapes left in place.
	Values []string
}

// MeasureMode selects how a value token's length is counted.
type MeasureMode int

const (
	// MeasureRaw counts every character of the raw token, quotes included.
	MeasureRaw MeasureMode = iota

	// MeasureDecoded strips surrounding quotes and collapses escapes before counting.
	MeasureDecoded
)

// String returns the flag/config spelling of the mode.
func (m MeasureMode) String() string {
	switch m {
	case MeasureRaw:
		return "raw"
	case MeasureDecoded:
		return "decoded"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}

// ParseMeasureMode parses "raw" or "decoded" (case-insensitive).
// An empty string yields MeasureRaw.
func ParseMeasureMode(s string) (MeasureMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return MeasureRaw, nil
	case "decoded":
		return MeasureDecoded, nil
	default:
		return MeasureRaw, fmt.Errorf("unknown measure mode %q (want raw or decoded): %w", s, ErrInvalidConfig)
	}
}

// MismatchPolicy decides what happens when a statement's field and value
// counts differ.
type MismatchPolicy int

const (
	// MismatchRejectExtra fails on more values than fields and pairs
	// what it can when there are fewer values.
	MismatchRejectExtra MismatchPolicy = iota

	// MismatchStrict fails on any count difference.
	MismatchStrict

	// MismatchTruncate pairs up to the shorter of the two lists.
	MismatchTruncate
)

// String returns the flag/config spelling of the policy.
func (p MismatchPolicy) String() string {
	switch p {
	case MismatchRejectExtra:
		return "reject-extra"
	case MismatchStrict:
		return "strict"
	case MismatchTruncate:
		return "truncate"
	default:
		return fmt.Sprintf("MismatchPolicy(%d)", int(p))
	}
}

// ParseMismatchPolicy parses a policy name. An empty string yields MismatchRejectExtra.
func ParseMismatchPolicy(s string) (MismatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject-extra":
		return MismatchRejectExtra, nil
	case "strict":
		return MismatchStrict, nil
	case "truncate":
		return MismatchTruncate, nil
	default:
		return MismatchRejectExtra, fmt.Errorf("unknown mismatch policy %q (want reject-extra, strict or truncate): %w", s, ErrInvalidConfig)
	}
}

// AnalysisConfig controls how input files are scanned and measured.
type AnalysisConfig struct {
	Measure  MeasureMode
	Mismatch MismatchPolicy

	// Extensions are the file suffixes taken from directory arguments.
	// Explicit file arguments are always read regardless of extension.
	Extensions []string
}

// ReportOptions controls the textual report.
type ReportOptions struct {
	// Field restricts the report to one column. Empty reports every column.
	Field string

	// ValueWidth is the width the maximum length is right-aligned to.
	ValueWidth int

	// Color enables lipgloss styling of field names.
	Color bool
}

// ConnectionConfig holds everything needed to reach PostgreSQL for the check command.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string
}

// ColumnWidth is the declared character width of one database column.
// MaxLength is nil for columns without a length limit (text, numeric, ...).
type ColumnWidth struct {
	Table     string
	Column    string
	DataType  string
	MaxLength *int
}

// Overflow is a column whose observed values are wider than its declaration.
type Overflow struct {
	Schema   string
	Table    string
	Column   string
	Observed int
	Declared int
}
