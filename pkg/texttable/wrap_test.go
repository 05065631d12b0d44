package texttable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapCell(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		width    int
		expected []string
	}{
		{name: "fits on one line", cell: "foobar", width: 12, expected: []string{"foobar"}},
		{name: "exact width", cell: "foobar2000颇", width: 13, expected: []string{"foobar2000颇"}},
		{name: "breaks at space", cell: "foobar2000 foo", width: 12, expected: []string{"foobar2000", "foo"}},
		{name: "swallows space run", cell: "foobar2000    foo", width: 12, expected: []string{"foobar2000", "foo"}},
		{name: "space run at line boundary", cell: "foobar2000    foobar2000", width: 12, expected: []string{"foobar2000", "foobar2000"}},
		{name: "wide space run yields empty line", cell: "foobar2000     foobar2000", width: 12, expected: []string{"foobar2000", "", "foobar2000"}},
		{name: "hard break without spaces", cell: "abcdefgh", width: 3, expected: []string{"abc", "def", "gh"}},
		{name: "multiple words", cell: "the quick brown fox", width: 10, expected: []string{"the quick", "brown fox"}},
		{name: "empty cell", cell: "", width: 10, expected: nil},
		{name: "zero width", cell: "foobar", width: 0, expected: nil},
		{name: "negative width", cell: "foobar", width: -1, expected: nil},
		{name: "only spaces", cell: "   ", width: 2, expected: []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wrapCell(tt.cell, tt.width))
		})
	}
}

func TestWrapCellLineWidths(t *testing.T) {
	// every emitted line fits the requested width
	cells := []string{
		"foobar2000 foo",
		"the quick brown fox jumps over the lazy dog",
		"nospacesatallinthisverylongtoken",
		"a b c d e f g h i j",
	}
	for _, cell := range cells {
		for width := 1; width <= 15; width++ {
			for _, line := range wrapCell(cell, width) {
				assert.LessOrEqual(t, len(line), width, "cell %q width %d line %q", cell, width, line)
			}
		}
	}
}

func TestWrapCellPreservesTokens(t *testing.T) {
	// concatenating the output reproduces the input's tokens in order
	cells := []string{
		"foobar2000 foo",
		"the quick brown fox jumps over the lazy dog",
		"a  b   c    d",
	}
	for _, cell := range cells {
		for width := 3; width <= 12; width++ {
			joined := strings.Join(wrapCell(cell, width), " ")
			assert.Equal(t, strings.Fields(cell), strings.Fields(joined),
				"cell %q width %d", cell, width)
		}
	}
}

func TestWrapCellShortInputIsTrimmed(t *testing.T) {
	assert.Equal(t, []string{"foo"}, wrapCell("foo  ", 10))
}
