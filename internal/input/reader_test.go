package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	data, err := Read(strings.NewReader("a,b,c\nd,e,f\n"), "csv")
	require.NoError(t, err)
	assert.Nil(t, data.Header)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}}, data.Rows)
}

func TestReadCSVRaggedRows(t *testing.T) {
	data, err := Read(strings.NewReader("a,b,c\nd\n"), "csv")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d"}}, data.Rows)
}

func TestReadCSVQuotedCells(t *testing.T) {
	data, err := Read(strings.NewReader("\"a,b\",c\n"), "csv")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a,b", "c"}}, data.Rows)
}

func TestReadTSV(t *testing.T) {
	data, err := Read(strings.NewReader("a\tb\nc\td\n"), "tsv")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, data.Rows)
}

func TestReadJSONArrays(t *testing.T) {
	data, err := Read(strings.NewReader(`[["a", 1, true], ["b", 2.5, null]]`), "json")
	require.NoError(t, err)
	assert.Nil(t, data.Header)
	assert.Equal(t, [][]string{{"a", "1", "true"}, {"b", "2.5", ""}}, data.Rows)
}

func TestReadJSONObjects(t *testing.T) {
	data, err := Read(strings.NewReader(`[{"name": "x", "age": 3}, {"name": "y"}]`), "json")
	require.NoError(t, err)
	// keys of the first object, sorted, set the column order
	assert.Equal(t, []string{"age", "name"}, data.Header)
	assert.Equal(t, [][]string{{"3", "x"}, {"", "y"}}, data.Rows)
}

func TestReadJSONNestedValues(t *testing.T) {
	data, err := Read(strings.NewReader(`[["a", {"k": 1}]]`), "json")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", `{"k":1}`}}, data.Rows)
}

func TestReadJSONRejectsScalars(t *testing.T) {
	_, err := Read(strings.NewReader(`["a", "b"]`), "json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported JSON row type")
}

func TestReadInvalidFormat(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n"), "xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input format")
}

func TestReadAuto(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected [][]string
	}{
		{name: "sniffs json", content: ` [["a"]]`, expected: [][]string{{"a"}}},
		{name: "sniffs tsv", content: "a\tb\n", expected: [][]string{{"a", "b"}}},
		{name: "falls back to csv", content: "a,b\n", expected: [][]string{{"a", "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Read(strings.NewReader(tt.content), "auto")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, data.Rows)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "data.csv", expected: "csv"},
		{path: "data.tsv", expected: "tsv"},
		{path: "data.tab", expected: "tsv"},
		{path: "data.JSON", expected: "json"},
		{path: "data.txt", expected: ""},
		{path: "stdin", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.path))
		})
	}
}
