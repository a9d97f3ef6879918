package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vvka-141/fixinsert/internal/accumulate"
	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

// CheckService compares accumulated lengths with declared column widths.
type CheckService struct {
	catalog fixinsert.ColumnCatalog
	logger  fixinsert.Logger
	schema  string
}

// NewCheckService creates a CheckService. An empty schema uses
// fixinsert.DefaultSchema for unqualified table names.
// Panics if catalog or logger is nil.
func NewCheckService(catalog fixinsert.ColumnCatalog, logger fixinsert.Logger, schema string) *CheckService {
	if catalog == nil {
		panic("catalog cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if schema == "" {
		schema = fixinsert.DefaultSchema
	}
	return &CheckService{catalog: catalog, logger: logger, schema: schema}
}

// tableRef is a table name from an insert statement resolved to schema and table.
type tableRef struct {
	schema string
	table  string
}

// Check returns every column whose observed maximum exceeds its declared
// character width, sorted by schema, table and column. Spellings that
// resolve to the same table (users, "users", public.users) are merged by
// taking the maximum per column. Columns without a width limit and columns
// missing from the database are skipped.
func (s *CheckService) Check(ctx context.Context, acc *accumulate.Accumulator) ([]fixinsert.Overflow, error) {
	observed := make(map[tableRef]map[string]int)
	for _, raw := range acc.Tables() {
		ref := s.resolveTable(raw)
		columns := observed[ref]
		if columns == nil {
			columns = make(map[string]int)
			observed[ref] = columns
		}
		for field, length := range acc.TableLengths(raw) {
			column := NormalizeIdentifier(field)
			columns[column] = max(columns[column], length)
		}
	}

	bySchema := make(map[string][]string)
	for ref := range observed {
		bySchema[ref.schema] = append(bySchema[ref.schema], ref.table)
	}

	var overflows []fixinsert.Overflow
	for schema, tables := range bySchema {
		sort.Strings(tables)
		widths, err := s.catalog.ColumnWidths(ctx, schema, tables)
		if err != nil {
			return nil, fmt.Errorf("failed to read column widths for schema %s: %w", schema, err)
		}

		declared := make(map[string]fixinsert.ColumnWidth, len(widths))
		for _, w := range widths {
			declared[w.Table+"."+w.Column] = w
		}

		for _, table := range tables {
			if !s.hasTable(widths, table) {
				s.logger.Verbose("table %s.%s not found in database, skipped", schema, table)
				continue
			}
			for column, length := range observed[tableRef{schema: schema, table: table}] {
				w, ok := declared[table+"."+column]
				if !ok {
					s.logger.Verbose("column %s.%s.%s not found in database, skipped", schema, table, column)
					continue
				}
				if w.MaxLength != nil && length > *w.MaxLength {
					overflows = append(overflows, fixinsert.Overflow{
						Schema:   schema,
						Table:    table,
						Column:   column,
						Observed: length,
						Declared: *w.MaxLength,
					})
				}
			}
		}
	}

	sort.Slice(overflows, func(i, j int) bool {
		a, b := overflows[i], overflows[j]
		if a.Schema != b.Schema {
			return a.Schema < b.Schema
		}
		if a.Table != b.Table {
			return a.Table < b.Table
		}
		return a.Column < b.Column
	})
	return overflows, nil
}

func (s *CheckService) hasTable(widths []fixinsert.ColumnWidth, table string) bool {
	for _, w := range widths {
		if w.Table == table {
			return true
		}
	}
	return false
}

// resolveTable splits an optionally schema-qualified table name.
func (s *CheckService) resolveTable(raw string) tableRef {
	ref := tableRef{schema: s.schema}
	parts := splitQualified(raw)
	if len(parts) >= 2 {
		ref.schema = NormalizeIdentifier(parts[len(parts)-2])
	}
	ref.table = NormalizeIdentifier(parts[len(parts)-1])
	return ref
}

// splitQualified splits on dots outside double quotes and backticks.
func splitQualified(name string) []string {
	var parts []string
	var quote rune
	start := 0
	for i, r := range name {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '`':
			quote = r
		case r == '.':
			parts = append(parts, name[start:i])
			start = i + 1
		}
	}
	return append(parts, name[start:])
}

// NormalizeIdentifier maps an identifier as written in a statement to the
// name PostgreSQL stores: quoted identifiers keep their case, unquoted ones
// fold to lower case. Backticks are treated like double quotes.
func NormalizeIdentifier(ident string) string {
	ident = strings.TrimSpace(ident)
	if len(ident) >= 2 {
		first, last := ident[0], ident[len(ident)-1]
		if (first == '"' && last == '"') || (first == '`' && last == '`') {
			inner := ident[1 : len(ident)-1]
			return strings.ReplaceAll(inner, string(first)+string(first), string(first))
		}
	}
	return strings.ToLower(ident)
}
