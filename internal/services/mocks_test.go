package services

import (
	"context"
	"sort"
	"sync"

	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

// mockCatalog serves column widths from memory and records lookups.
type mockCatalog struct {
	mu      sync.Mutex
	schemas map[string][]fixinsert.ColumnWidth
	err     error
	calls   []string
	closed  bool
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{schemas: make(map[string][]fixinsert.ColumnWidth)}
}

func (m *mockCatalog) add(schema, table, column string, maxLength *int) {
	m.schemas[schema] = append(m.schemas[schema], fixinsert.ColumnWidth{
		Table:     table,
		Column:    column,
		DataType:  "character varying",
		MaxLength: maxLength,
	})
}

func (m *mockCatalog) ColumnWidths(ctx context.Context, schema string, tables []string) ([]fixinsert.ColumnWidth, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sorted := append([]string(nil), tables...)
	sort.Strings(sorted)
	for _, table := range sorted {
		m.calls = append(m.calls, schema+"."+table)
	}
	if m.err != nil {
		return nil, m.err
	}

	want := make(map[string]bool, len(tables))
	for _, table := range tables {
		want[table] = true
	}
	var out []fixinsert.ColumnWidth
	for _, c := range m.schemas[schema] {
		if want[c.Table] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCatalog) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

func intPtr(n int) *int { return &n }
