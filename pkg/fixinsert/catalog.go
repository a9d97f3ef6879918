package fixinsert

import "context"

// ColumnCatalog looks up declared column widths in a live database.
type ColumnCatalog interface {
	// ColumnWidths returns the columns of the given tables in schema.
	// Tables that do not exist are absent from the result, not an error.
	ColumnWidths(ctx context.Context, schema string, tables []string) ([]ColumnWidth, error)

	// Close releases the underlying connection.
	Close()
}
