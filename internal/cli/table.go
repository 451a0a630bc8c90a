package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table formats rows into aligned columns. Cell widths are measured with
// lipgloss so styled swatch cells align with plain ones.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers. A table without
// headers renders rows only.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		padding: 2,
	}
}

// columns is the column count: the header count, or the widest row when headerless.
func (t *Table) columns() int {
	if len(t.headers) > 0 {
		return len(t.headers)
	}
	n := 0
	for _, row := range t.rows {
		n = max(n, len(row))
	}
	return n
}

// AddRow adds a row to the table. Rows are padded or truncated to the header count.
func (t *Table) AddRow(cells ...string) {
	if len(t.headers) > 0 && len(cells) != len(t.headers) {
		row := make([]string, len(t.headers))
		copy(row, cells)
		cells = row
	}
	t.rows = append(t.rows, cells)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	cols := t.columns()
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	gap := strings.Repeat(" ", t.padding)

	writeRow := func(cells []string) {
		parts := make([]string, cols)
		for i := range cols {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = padRight(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		b.WriteString("\n")
	}

	if len(t.headers) > 0 {
		writeRow(t.headers)
		sep := make([]string, cols)
		for i, w := range widths {
			sep[i] = strings.Repeat("-", w)
		}
		writeRow(sep)
	}
	for _, row := range t.rows {
		writeRow(row)
	}

	return b.String()
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
