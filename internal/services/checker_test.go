package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fixinsert/internal/accumulate"
	"github.com/vvka-141/fixinsert/internal/files/filesystem"
	"github.com/vvka-141/fixinsert/internal/logging"
	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

func decodedAccumulator(t *testing.T, dump string) *accumulate.Accumulator {
	t.Helper()
	cfg := fixinsert.AnalysisConfig{Measure: fixinsert.MeasureDecoded}
	svc := NewAnalysisService(filesystem.NewMemoryFileSystem(), logging.NewNullLogger(), cfg)
	result, err := svc.AnalyzeReader(context.Background(), strings.NewReader(dump))
	require.NoError(t, err)
	return result.Accumulator
}

func TestCheckService_FindsOverflows(t *testing.T) {
	catalog := newMockCatalog()
	catalog.add("public", "users", "id", nil)
	catalog.add("public", "users", "name", intPtr(5))
	catalog.add("public", "users", "email", intPtr(100))

	acc := decodedAccumulator(t, `insert into users (id,name,email) values (1,'Alexandra','a@example.com');
insert into users (id,name,email) values (2,'Bob','b@example.com');
`)

	overflows, err := NewCheckService(catalog, logging.NewNullLogger(), "").Check(context.Background(), acc)
	require.NoError(t, err)
	assert.Equal(t, []fixinsert.Overflow{
		{Schema: "public", Table: "users", Column: "name", Observed: 9, Declared: 5},
	}, overflows)
}

func TestCheckService_QualifiedAndQuotedNames(t *testing.T) {
	catalog := newMockCatalog()
	catalog.add("shop", "Orders", "Note", intPtr(3))
	catalog.add("public", "items", "sku", intPtr(2))

	acc := decodedAccumulator(t, "insert into shop.\"Orders\" (\"Note\") values ('abcd');\n"+
		"insert into `items` (SKU) values ('xyz');\n")

	overflows, err := NewCheckService(catalog, logging.NewNullLogger(), "public").Check(context.Background(), acc)
	require.NoError(t, err)
	assert.Equal(t, []fixinsert.Overflow{
		{Schema: "public", Table: "items", Column: "sku", Observed: 3, Declared: 2},
		{Schema: "shop", Table: "Orders", Column: "Note", Observed: 4, Declared: 3},
	}, overflows)
	assert.ElementsMatch(t, []string{"shop.Orders", "public.items"}, catalog.calls)
}

func TestCheckService_SpacedListsFitDeclaredWidth(t *testing.T) {
	catalog := newMockCatalog()
	catalog.add("public", "users", "id", nil)
	catalog.add("public", "users", "name", intPtr(3))

	acc := decodedAccumulator(t, "insert into users (id, name) values (1, 'Bob');\n")

	overflows, err := NewCheckService(catalog, logging.NewNullLogger(), "").Check(context.Background(), acc)
	require.NoError(t, err)
	assert.Empty(t, overflows)
}

func TestCheckService_SameTableInTwoSchemas(t *testing.T) {
	catalog := newMockCatalog()
	catalog.add("a", "users", "name", intPtr(3))
	catalog.add("b", "users", "name", intPtr(5))

	acc := decodedAccumulator(t, "insert into a.users (name) values ('Alexandra');\n"+
		"insert into b.users (name) values ('Alexandra');\n")

	overflows, err := NewCheckService(catalog, logging.NewNullLogger(), "").Check(context.Background(), acc)
	require.NoError(t, err)
	assert.Equal(t, []fixinsert.Overflow{
		{Schema: "a", Table: "users", Column: "name", Observed: 9, Declared: 3},
		{Schema: "b", Table: "users", Column: "name", Observed: 9, Declared: 5},
	}, overflows)
}

func TestCheckService_MergesSpellingsOfOneTable(t *testing.T) {
	catalog := newMockCatalog()
	catalog.add("public", "users", "name", intPtr(4))

	acc := decodedAccumulator(t, "insert into users (name) values ('Alexandra');\n"+
		"insert into \"users\" (\"name\") values ('Bartholomew');\n"+
		"insert into public.users (NAME) values ('Eve');\n")

	overflows, err := NewCheckService(catalog, logging.NewNullLogger(), "").Check(context.Background(), acc)
	require.NoError(t, err)
	assert.Equal(t, []fixinsert.Overflow{
		{Schema: "public", Table: "users", Column: "name", Observed: 11, Declared: 4},
	}, overflows)
	assert.Equal(t, []string{"public.users"}, catalog.calls)
}

func TestCheckService_MissingTablesSkipped(t *testing.T) {
	catalog := newMockCatalog()
	acc := decodedAccumulator(t, "insert into ghosts (name) values ('boo');\n")

	overflows, err := NewCheckService(catalog, logging.NewNullLogger(), "").Check(context.Background(), acc)
	require.NoError(t, err)
	assert.Empty(t, overflows)
}

func TestCheckService_CatalogError(t *testing.T) {
	catalog := newMockCatalog()
	catalog.err = errors.New("permission denied")
	acc := decodedAccumulator(t, "insert into users (name) values ('x');\n")

	_, err := NewCheckService(catalog, logging.NewNullLogger(), "").Check(context.Background(), acc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestNormalizeIdentifier(t *testing.T) {
	tests := map[string]string{
		"Name":         "name",
		" id":          "id",
		`"Name"`:       "Name",
		"`Name`":       "Name",
		`"say ""hi"""`: `say "hi"`,
		"`a``b`":       "a`b",
		`"`:            `"`,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, NormalizeIdentifier(in))
		})
	}
}

func TestSplitQualified(t *testing.T) {
	assert.Equal(t, []string{"users"}, splitQualified("users"))
	assert.Equal(t, []string{"shop", "users"}, splitQualified("shop.users"))
	assert.Equal(t, []string{`"my.schema"`, "t"}, splitQualified(`"my.schema".t`))
	assert.Equal(t, []string{"`db`", "`t`"}, splitQualified("`db`.`t`"))
}
