package extract

import (
	"regexp"
	"strings"

	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

// insertPattern captures table, field list and value list.
// Table and fields are non-greedy so the first ") values (" splits the line;
// the value list runs to the closing ");" at end of line.
var insertPattern = regexp.MustCompile(`^insert into (.*?) \((.*?)\) values \((.*?)\);$`)

// LineExtractor turns one line of text into a Statement.
type LineExtractor interface {
	// Extract reports ok=false for lines that are not insert statements.
	Extract(line string) (stmt fixinsert.Statement, ok bool)
}

type lineExtractor struct{}

// NewLineExtractor creates a LineExtractor. It is stateless and safe for concurrent use.
func NewLineExtractor() LineExtractor {
	return lineExtractor{}
}

func (lineExtractor) Extract(line string) (fixinsert.Statement, bool) {
	table, fields, values, ok := Match(line)
	if !ok {
		return fixinsert.Statement{}, false
	}
	return fixinsert.Statement{
		Table:  table,
		Fields: SplitFields(fields),
		Values: SplitValues(values),
	}, true
}

// Match applies the insert pattern to line and returns the three raw captures.
// A single trailing carriage return is ignored so CRLF files match.
func Match(line string) (table, fields, values string, ok bool) {
	line = strings.TrimSuffix(line, "\r")
	m := insertPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}

// SplitFields splits a field list on plain commas.
// SQL identifiers never contain commas, so no quoting is considered.
func SplitFields(fields string) []string {
	return strings.Split(fields, ",")
}
