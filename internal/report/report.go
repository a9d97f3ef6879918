// Package report renders accumulated column lengths as aligned text.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/fixinsert/internal/accumulate"
	"github.com/vvka-141/fixinsert/internal/tui"
	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

// Reporter writes reports to an output stream.
type Reporter struct {
	out  io.Writer
	opts fixinsert.ReportOptions
}

// New creates a Reporter. A ValueWidth below 1 uses fixinsert.DefaultValueWidth.
func New(out io.Writer, opts fixinsert.ReportOptions) *Reporter {
	if opts.ValueWidth < 1 {
		opts.ValueWidth = fixinsert.DefaultValueWidth
	}
	return &Reporter{out: out, opts: opts}
}

// Lengths writes one line per field in lexicographic order:
//
//	<field padded to the longest field name> : <max length right-aligned>
//
// The padding width is taken over all fields even when a field filter is
// set, so filtered output lines up with the unfiltered report.
// An empty accumulator writes nothing.
func (r *Reporter) Lengths(acc *accumulate.Accumulator) error {
	fields := acc.Fields()
	nameWidth := 0
	for _, field := range fields {
		nameWidth = max(nameWidth, utf8.RuneCountInString(field))
	}

	for _, field := range fields {
		if r.opts.Field != "" && r.opts.Field != field {
			continue
		}
		length, _ := acc.Max(field)
		line := fmt.Sprintf("%s : %*d\n", r.pad(field, nameWidth, tui.FieldStyle.Render), r.opts.ValueWidth, length)
		if _, err := io.WriteString(r.out, line); err != nil {
			return err
		}
	}
	return nil
}

// Banner writes the header that separates reports of multiple files.
func (r *Reporter) Banner(name string) error {
	text := "==> " + name + " <=="
	if r.opts.Color {
		text = tui.BannerStyle.Render(text)
	}
	_, err := fmt.Fprintln(r.out, text)
	return err
}

// Overflows writes one line per column whose observed length exceeds its
// declared width, aligned like Lengths:
//
//	<schema>.<table>.<column> : <observed> > <declared>
func (r *Reporter) Overflows(overflows []fixinsert.Overflow) error {
	nameWidth := 0
	names := make([]string, len(overflows))
	for i, o := range overflows {
		names[i] = o.Schema + "." + o.Table + "." + o.Column
		nameWidth = max(nameWidth, utf8.RuneCountInString(names[i]))
	}

	for i, o := range overflows {
		observed := fmt.Sprintf("%*d", r.opts.ValueWidth, o.Observed)
		if r.opts.Color {
			observed = tui.OverflowStyle.Render(observed)
		}
		line := fmt.Sprintf("%s : %s > %d\n", r.pad(names[i], nameWidth, tui.FieldStyle.Render), observed, o.Declared)
		if _, err := io.WriteString(r.out, line); err != nil {
			return err
		}
	}
	return nil
}

// pad left-aligns name to width characters, styling only the name itself so
// escape sequences do not disturb alignment.
func (r *Reporter) pad(name string, width int, style func(...string) string) string {
	padding := strings.Repeat(" ", max(0, width-utf8.RuneCountInString(name)))
	if r.opts.Color {
		name = style(name)
	}
	return name + padding
}
