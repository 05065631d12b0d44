package texttable

import "sort"

// distribute divides totalWidth across columns with the given natural
// widths, returning the allocated width per column in the original order.
//
// Columns are processed smallest natural width first (ties keep their
// original order), so narrow columns take exactly what they need before the
// remaining budget is split among the wider ones. No column is ever
// allocated more than its natural width.
func distribute(naturalWidths []int, totalWidth, padding int) []int {
	type column struct {
		index int
		width int
	}
	columns := make([]column, len(naturalWidths))
	for i, w := range naturalWidths {
		columns[i] = column{index: i, width: w}
	}
	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].width < columns[j].width
	})

	remaining := totalWidth
	left := len(columns)
	allocated := make([]int, len(naturalWidths))
	for _, col := range columns {
		size := fairShare(col.width, left, remaining, padding)
		left--
		if left > 0 {
			// the consumed column takes its width, its padding and one
			// separator glyph out of the budget
			remaining -= size + 2*padding + 1
		}
		allocated[col.index] = size
	}
	return allocated
}

// fairShare computes the width granted to one column when cols columns
// still share width. Space for padding on every remaining column and a
// separator between each pair is reserved first; the rest is divided
// evenly. A budget too small to cover the reserved space yields zero, never
// a negative width.
func fairShare(colWidth, cols, width, padding int) int {
	reserved := cols*2*padding + (cols - 1)
	fair := (width - reserved) / cols
	if fair < 0 {
		fair = 0
	}
	if colWidth < fair {
		return colWidth
	}
	return fair
}

// maxMerge combines two natural-width vectors into their elementwise max.
// Where one vector is longer, its tail is carried over unchanged, so
// columns introduced by later rows are accounted for.
func maxMerge(left, right []int) []int {
	short, long := left, right
	if len(short) > len(long) {
		short, long = long, short
	}
	merged := make([]int, len(long))
	copy(merged, long)
	for i, w := range short {
		if w > merged[i] {
			merged[i] = w
		}
	}
	return merged
}
