package texttable

import "strings"

// wrapCell splits one cell's text into lines of at most width bytes,
// breaking at the last space within reach when one exists and mid-word
// otherwise. Every emitted line is trimmed of surrounding whitespace;
// a run of spaces wider than a line therefore yields an empty line between
// two wrapped segments.
//
// Empty text yields no lines, as does width <= 0 (a zero-width column has
// no room for content); callers present at least one empty line per cell.
func wrapCell(cell string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	max := len(cell)
	from := 0
	for from < max {
		till := from + width
		if till > max {
			till = max
		}
		advance := width
		if till < max {
			// more text follows; prefer breaking after the last space in
			// this slice
			if i := strings.LastIndexByte(cell[from:till], ' '); i >= 0 {
				advance = i + 1
			}
		}
		till = from + advance
		if till > max {
			till = max
		}
		lines = append(lines, strings.TrimSpace(cell[from:till]))
		from += advance
	}
	return lines
}
