package accumulate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fixinsert/internal/extract"
	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

func addLines(t *testing.T, acc *Accumulator, lines ...string) {
	t.Helper()
	extractor := extract.NewLineExtractor()
	for _, line := range lines {
		stmt, ok := extractor.Extract(line)
		if !ok {
			continue
		}
		require.NoError(t, acc.Add(stmt))
	}
}

func newRaw() *Accumulator {
	return New(fixinsert.MeasureRaw, fixinsert.MismatchRejectExtra)
}

func TestAccumulator_SingleLine(t *testing.T) {
	acc := newRaw()
	addLines(t, acc, "insert into users (id,name) values (1,'Bob');")

	assert.Equal(t, map[string]int{"id": 1, "name": 5}, acc.Lengths())
}

func TestAccumulator_TwoLines(t *testing.T) {
	acc := newRaw()
	addLines(t, acc,
		"insert into users (id,name) values (1,'Bob');",
		"insert into users (id,name) values (22,'Alexandra');",
	)

	assert.Equal(t, map[string]int{"id": 2, "name": 11}, acc.Lengths())
}

func TestAccumulator_OrderIndependent(t *testing.T) {
	lines := []string{
		"insert into t (a,b) values ('xxxx','y');",
		"insert into t (a,b) values ('x','yyyyyy');",
		"insert into t (a,c) values ('xx',3);",
	}

	forward := newRaw()
	addLines(t, forward, lines...)

	backward := newRaw()
	addLines(t, backward, lines[2], lines[1], lines[0])

	assert.Equal(t, forward.Lengths(), backward.Lengths())
	assert.Equal(t, map[string]int{"a": 6, "b": 8, "c": 1}, forward.Lengths())
}

func TestAccumulator_Idempotent(t *testing.T) {
	line := "insert into t (a,b) values ('hello',12345);"

	once := newRaw()
	addLines(t, once, line)

	twice := newRaw()
	addLines(t, twice, line, line)

	assert.Equal(t, once.Lengths(), twice.Lengths())
}

func TestAccumulator_NonMatchingLinesIgnored(t *testing.T) {
	acc := newRaw()
	addLines(t, acc,
		"-- a comment",
		"create table foo (id int);",
		"",
	)

	assert.Equal(t, 0, acc.Len())
	assert.Empty(t, acc.Fields())
}

func TestAccumulator_EveryFieldPresent(t *testing.T) {
	acc := newRaw()
	stmt := fixinsert.Statement{
		Table:  "t",
		Fields: []string{"a", "b", "c", "d"},
		Values: []string{"1", "'two'", "NULL", "''"},
	}
	require.NoError(t, acc.Add(stmt))

	for i, field := range stmt.Fields {
		got, ok := acc.Max(field)
		require.True(t, ok, "field %s missing", field)
		assert.GreaterOrEqual(t, got, len(stmt.Values[i]))
	}
}

func TestAccumulator_CountsCharactersNotBytes(t *testing.T) {
	acc := newRaw()
	addLines(t, acc, "insert into t (city) values ('Zürich');")

	got, ok := acc.Max("city")
	require.True(t, ok)
	assert.Equal(t, 8, got)
}

func TestAccumulator_DecodedMeasure(t *testing.T) {
	acc := New(fixinsert.MeasureDecoded, fixinsert.MismatchRejectExtra)
	addLines(t, acc, "insert into t (a,b,c) values ('O''Brien',42,NULL);")

	assert.Equal(t, map[string]int{"a": 7, "b": 2, "c": 4}, acc.Lengths())
}

func TestAccumulator_DecodedMeasure_SpacedLists(t *testing.T) {
	line := "insert into users (id, name) values (1, 'Bob');"

	decoded := New(fixinsert.MeasureDecoded, fixinsert.MismatchRejectExtra)
	addLines(t, decoded, line)
	assert.Equal(t, map[string]int{"id": 1, "name": 3}, decoded.Lengths())
	assert.Equal(t, map[string]int{"id": 1, "name": 3}, decoded.TableLengths("users"))

	raw := newRaw()
	addLines(t, raw, line)
	assert.Equal(t, map[string]int{"id": 1, " name": 6}, raw.Lengths())
}

func TestAccumulator_DecodedMeasure_UnterminatedLiteral(t *testing.T) {
	acc := New(fixinsert.MeasureDecoded, fixinsert.MismatchRejectExtra)
	addLines(t, acc, `insert into t (a) values ('abc\');`)

	got, ok := acc.Max("a")
	require.True(t, ok)
	assert.Equal(t, 6, got, "an unclosed literal is measured as written")
}

func TestAccumulator_Mismatch(t *testing.T) {
	extra := fixinsert.Statement{Table: "t", Fields: []string{"a"}, Values: []string{"1", "2"}}
	short := fixinsert.Statement{Table: "t", Fields: []string{"a", "b"}, Values: []string{"1"}}

	t.Run("reject-extra fails on extra values", func(t *testing.T) {
		acc := New(fixinsert.MeasureRaw, fixinsert.MismatchRejectExtra)
		err := acc.Add(extra)
		require.Error(t, err)
		assert.True(t, errors.Is(err, fixinsert.ErrFieldValueMismatch))
		assert.Equal(t, 0, acc.Len(), "accumulator must be unchanged on error")
	})

	t.Run("reject-extra pairs missing values", func(t *testing.T) {
		acc := New(fixinsert.MeasureRaw, fixinsert.MismatchRejectExtra)
		require.NoError(t, acc.Add(short))
		assert.Equal(t, map[string]int{"a": 1}, acc.Lengths())
	})

	t.Run("strict fails on missing values", func(t *testing.T) {
		acc := New(fixinsert.MeasureRaw, fixinsert.MismatchStrict)
		err := acc.Add(short)
		assert.True(t, errors.Is(err, fixinsert.ErrFieldValueMismatch))
	})

	t.Run("truncate pairs the shorter list", func(t *testing.T) {
		acc := New(fixinsert.MeasureRaw, fixinsert.MismatchTruncate)
		require.NoError(t, acc.Add(extra))
		require.NoError(t, acc.Add(short))
		assert.Equal(t, map[string]int{"a": 1}, acc.Lengths())
	})
}

func TestAccumulator_PerTable(t *testing.T) {
	acc := newRaw()
	addLines(t, acc,
		"insert into users (id,name) values (1,'Bob');",
		"insert into pets (id,name) values (100,'Rex the Third');",
	)

	assert.Equal(t, []string{"pets", "users"}, acc.Tables())
	assert.Equal(t, map[string]int{"id": 1, "name": 5}, acc.TableLengths("users"))
	assert.Equal(t, map[string]int{"id": 3, "name": 15}, acc.TableLengths("pets"))
	assert.Equal(t, map[string]int{"id": 3, "name": 15}, acc.Lengths())
	assert.Empty(t, acc.TableLengths("missing"))
}

func TestAccumulator_FieldsSorted(t *testing.T) {
	acc := newRaw()
	addLines(t, acc, "insert into t (zeta,alpha,Mid) values (1,2,3);")

	assert.Equal(t, []string{"Mid", "alpha", "zeta"}, acc.Fields())
}
