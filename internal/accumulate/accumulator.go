// Package accumulate tracks the maximum observed value length per column.
package accumulate

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/fixinsert/internal/extract"
	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

// Accumulator maps field names to the longest value token seen for them.
// The zero value is not usable; create one with New.
//
// Not safe for concurrent use. One Accumulator belongs to one file run.
type Accumulator struct {
	measure  fixinsert.MeasureMode
	mismatch fixinsert.MismatchPolicy

	lengths map[string]int
	tables  map[string]map[string]int
}

// New creates an empty Accumulator.
func New(measure fixinsert.MeasureMode, mismatch fixinsert.MismatchPolicy) *Accumulator {
	return &Accumulator{
		measure:  measure,
		mismatch: mismatch,
		lengths:  make(map[string]int),
		tables:   make(map[string]map[string]int),
	}
}

// Add pairs the statement's fields and values by position and raises each
// field's stored maximum to the length of its value token.
// In decoded mode field names are trimmed of surrounding whitespace, so
// "(id, name)" and "(id,name)" accumulate into the same field.
//
// Count differences are handled by the mismatch policy. On error the
// accumulator is left unchanged.
func (a *Accumulator) Add(stmt fixinsert.Statement) error {
	n, err := a.pairCount(len(stmt.Fields), len(stmt.Values))
	if err != nil {
		return err
	}

	table := a.tables[stmt.Table]
	if table == nil {
		table = make(map[string]int)
		a.tables[stmt.Table] = table
	}

	for i := 0; i < n; i++ {
		field := stmt.Fields[i]
		if a.measure == fixinsert.MeasureDecoded {
			field = strings.TrimSpace(field)
		}
		length := a.Measure(stmt.Values[i])
		raise(a.lengths, field, length)
		raise(table, field, length)
	}
	return nil
}

func (a *Accumulator) pairCount(fields, values int) (int, error) {
	switch {
	case fields == values:
		return values, nil
	case a.mismatch == fixinsert.MismatchTruncate:
		return min(fields, values), nil
	case values < fields && a.mismatch == fixinsert.MismatchRejectExtra:
		return values, nil
	default:
		return 0, fmt.Errorf("%d field(s) but %d value(s): %w", fields, values, fixinsert.ErrFieldValueMismatch)
	}
}

// raise stores length under key unless a larger value is already stored.
func raise(m map[string]int, key string, length int) {
	if current, ok := m[key]; !ok || length > current {
		m[key] = length
	}
}

// Measure returns the length of one value token under the configured mode.
// Lengths are counted in characters, not bytes. Decoded mode drops the
// whitespace around the token before unquoting; raw mode counts it.
func (a *Accumulator) Measure(token string) int {
	if a.measure == fixinsert.MeasureDecoded {
		token = extract.Unquote(strings.TrimSpace(token))
	}
	return utf8.RuneCountInString(token)
}

// Len returns the number of distinct fields seen.
func (a *Accumulator) Len() int {
	return len(a.lengths)
}

// Max returns the stored maximum for field and whether the field was seen.
func (a *Accumulator) Max(field string) (int, bool) {
	n, ok := a.lengths[field]
	return n, ok
}

// Lengths returns a copy of the field → maximum length mapping.
func (a *Accumulator) Lengths() map[string]int {
	out := make(map[string]int, len(a.lengths))
	for k, v := range a.lengths {
		out[k] = v
	}
	return out
}

// Fields returns the seen field names in lexicographic order.
func (a *Accumulator) Fields() []string {
	return sortedKeys(a.lengths)
}

// Tables returns the seen table names in lexicographic order.
func (a *Accumulator) Tables() []string {
	names := make([]string, 0, len(a.tables))
	for name := range a.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TableLengths returns a copy of the field → maximum length mapping
// restricted to statements for one table.
func (a *Accumulator) TableLengths(table string) map[string]int {
	src := a.tables[table]
	out := make(map[string]int, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
