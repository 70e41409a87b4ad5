// If you are AI: This file renders aligned text tables.
// Column widths count East Asian wide runes as two cells so CJK names line up.

package main

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/width"
)

var headerCol = color.New(color.Bold).SprintFunc()

type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// write pads every cell before coloring, so escape codes never count toward width.
func (t *table) write(w io.Writer) error {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = displayWidth(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if i < len(widths) && displayWidth(c) > widths[i] {
				widths[i] = displayWidth(c)
			}
		}
	}

	var b strings.Builder
	line := func(cells []string, style func(a ...interface{}) string) {
		for i, c := range cells {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(cells)-1 {
				b.WriteString(style(c))
				continue
			}
			b.WriteString(style(pad(c, widths[i])))
		}
		b.WriteByte('\n')
	}
	line(t.header, headerCol)
	for _, row := range t.rows {
		line(row, plain)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func plain(a ...interface{}) string {
	return a[0].(string)
}

// displayWidth returns the number of terminal cells s occupies.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func pad(s string, w int) string {
	if d := w - displayWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
