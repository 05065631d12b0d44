package texttable

import "strings"

// renderRow appends the rendered lines for one row. Each cell is wrapped to
// its column's width; the row renders as a rectangular block as tall as its
// tallest cell, with shorter cells filled by empty lines. A row shorter
// than the column count renders empty cells for the missing columns.
func renderRow(sb *strings.Builder, row []string, widths []int, config Config) {
	wrapped := make([][]string, len(widths))
	height := 0
	for col, width := range widths {
		var cell string
		if col < len(row) {
			cell = row[col]
		}
		lines := wrapCell(cell, width)
		if len(lines) == 0 {
			lines = []string{""}
		}
		wrapped[col] = lines
		if len(lines) > height {
			height = len(lines)
		}
	}

	pad := strings.Repeat(" ", config.Padding)
	cells := make([]string, len(widths))
	for i := 0; i < height; i++ {
		for col, lines := range wrapped {
			var line string
			if i < len(lines) {
				line = lines[i]
			}
			cells[col] = pad + padRight(line, widths[col]) + pad
		}
		sb.WriteString(strings.Join(cells, config.Border.Vertical))
		sb.WriteByte('\n')
	}
}

// renderSeparator appends one separator line: per column, the horizontal
// fill glyph repeated over the column width plus padding, joined by the
// junction glyph.
func renderSeparator(sb *strings.Builder, widths []int, config Config) {
	segments := make([]string, len(widths))
	for col, width := range widths {
		segments[col] = strings.Repeat(config.Border.Horizontal, width+2*config.Padding)
	}
	sb.WriteString(strings.Join(segments, config.Border.Junction))
	sb.WriteByte('\n')
}

// padRight left-justifies s within width by appending spaces.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
