package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

const columnWidthsQuery = `
SELECT table_name::text, column_name::text, data_type::text,
       character_maximum_length::int
FROM information_schema.columns
WHERE table_schema = $1 AND table_name = ANY($2)
ORDER BY table_name, ordinal_position`

// querier is the subset of *pgxpool.Pool the catalog needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresCatalog implements fixinsert.ColumnCatalog over information_schema.
type PostgresCatalog struct {
	q     querier
	close func()
}

// NewPostgresCatalog wraps an open pool. Close closes the pool.
func NewPostgresCatalog(pool *pgxpool.Pool) *PostgresCatalog {
	return &PostgresCatalog{q: pool, close: pool.Close}
}

// OpenCatalog connects with config and returns a catalog owning the pool.
func OpenCatalog(ctx context.Context, config *fixinsert.ConnectionConfig, logger fixinsert.Logger) (*PostgresCatalog, error) {
	pool, err := Connect(ctx, config, logger)
	if err != nil {
		return nil, err
	}
	return NewPostgresCatalog(pool), nil
}

func (c *PostgresCatalog) ColumnWidths(ctx context.Context, schema string, tables []string) ([]fixinsert.ColumnWidth, error) {
	rows, err := c.q.Query(ctx, columnWidthsQuery, schema, tables)
	if err != nil {
		return nil, fmt.Errorf("failed to query information_schema.columns: %w", err)
	}

	widths, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (fixinsert.ColumnWidth, error) {
		var w fixinsert.ColumnWidth
		err := row.Scan(&w.Table, &w.Column, &w.DataType, &w.MaxLength)
		return w, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read column widths: %w", err)
	}
	return widths, nil
}

func (c *PostgresCatalog) Close() {
	if c.close != nil {
		c.close()
	}
}
