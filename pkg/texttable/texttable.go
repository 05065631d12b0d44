// Package texttable renders tabular data as fixed-width bordered text for
// terminals and other monospace sinks. Columns share a total width budget,
// and cell text that exceeds its column is word-wrapped onto extra lines.
//
// Widths are measured and sliced in bytes. ASCII content renders exactly;
// multi-byte runes count by their encoded length.
package texttable

import (
	"io"
	"strings"
)

// Border holds the three glyphs used to decorate a table: the vertical
// separator between columns, the horizontal fill for separator lines, and
// the junction where the two meet.
type Border struct {
	Vertical   string
	Horizontal string
	Junction   string
}

// Config holds the width budget, cell padding and border glyphs of a table.
type Config struct {
	// Width is the total character budget for one rendered line.
	Width int
	// Padding is the number of spaces added on each side of every cell.
	Padding int
	Border  Border
}

// DefaultConfig returns the standard configuration: width 80, padding 1,
// and a "|", "-", "+" border.
func DefaultConfig() Config {
	return Config{
		Width:   80,
		Padding: 1,
		Border:  Border{Vertical: "|", Horizontal: "-", Junction: "+"},
	}
}

// Row builds a row from its cells.
func Row(cells ...string) []string {
	return cells
}

// Table accumulates a title and rows and renders them under a Config.
// A Table is not safe for concurrent use.
type Table struct {
	title  []string
	rows   [][]string
	config Config
}

// New creates an empty table with the given configuration.
func New(config Config) *Table {
	return &Table{config: config}
}

// WithWidth creates an empty table with the default configuration and the
// given total width.
func WithWidth(width int) *Table {
	config := DefaultConfig()
	config.Width = width
	return New(config)
}

// SetTitle sets the title row. It replaces any previous title.
func (t *Table) SetTitle(title []string) {
	t.title = title
}

// AddRow appends a row.
func (t *Table) AddRow(row []string) {
	t.rows = append(t.rows, row)
}

// AddRows appends multiple rows at once.
func (t *Table) AddRows(rows ...[]string) {
	t.rows = append(t.rows, rows...)
}

// Render writes the bordered rendering to w. Column widths are recomputed
// from the current title, rows and config on every call. The title, when
// set, is followed by one separator line; every emitted line ends with a
// newline.
func (t *Table) Render(w io.Writer) error {
	widths := t.columnWidths()
	var sb strings.Builder
	if t.title != nil {
		renderRow(&sb, t.title, widths, t.config)
		renderSeparator(&sb, widths, t.config)
	}
	for _, row := range t.rows {
		renderRow(&sb, row, widths, t.config)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// String renders the table to a string. It implements fmt.Stringer.
func (t *Table) String() string {
	var sb strings.Builder
	t.Render(&sb)
	return sb.String()
}

// columnWidths derives the allocated width of every column from the natural
// widths of the current contents.
func (t *Table) columnWidths() []int {
	return distribute(t.naturalWidths(), t.config.Width, t.config.Padding)
}

// naturalWidths returns, per column, the longest cell observed in that
// column across the title and all rows.
func (t *Table) naturalWidths() []int {
	var dims []int
	if t.title != nil {
		dims = maxMerge(dims, cellWidths(t.title))
	}
	for _, row := range t.rows {
		dims = maxMerge(dims, cellWidths(row))
	}
	return dims
}

func cellWidths(row []string) []int {
	widths := make([]int, len(row))
	for i, cell := range row {
		widths[i] = len(cell)
	}
	return widths
}
