// Package input decodes tabular data from CSV, TSV or JSON sources into
// rows of cells.
package input

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// Data holds decoded rows plus an optional header. The header is only
// populated by formats that carry one themselves (JSON objects); promoting
// the first data row is the caller's choice.
type Data struct {
	Header []string
	Rows   [][]string
}

// Read decodes rows from r in the given format: "csv", "tsv", "json", or
// "auto" to sniff the content.
func Read(r io.Reader, format string) (*Data, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if format == "auto" || format == "" {
		format = sniffFormat(data)
	}

	switch format {
	case "csv":
		return readSeparated(data, ',')
	case "tsv":
		return readSeparated(data, '\t')
	case "json":
		return readJSON(data)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

// DetectFormat guesses a format from a file extension. Empty result means
// the extension is not recognized and the content should be sniffed.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".tsv", ".tab":
		return "tsv"
	case ".json":
		return "json"
	default:
		return ""
	}
}

// sniffFormat inspects the content: JSON starts with a bracket, a tab in
// the first line means TSV, anything else is treated as CSV.
func sniffFormat(data []byte) string {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return "json"
	}
	firstLine, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.ContainsRune(firstLine, '\t') {
		return "tsv"
	}
	return "csv"
}

func readSeparated(data []byte, comma rune) (*Data, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	// rows may be ragged
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	return &Data{Rows: rows}, nil
}

// readJSON accepts an array of arrays, or an array of objects whose sorted
// keys become the header and column order.
func readJSON(data []byte) (*Data, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	result := &Data{}
	for i, item := range items {
		switch v := item.(type) {
		case []any:
			row := make([]string, len(v))
			for j, cell := range v {
				row[j] = stringify(cell)
			}
			result.Rows = append(result.Rows, row)
		case map[string]any:
			if result.Header == nil {
				result.Header = sortedKeys(v)
			}
			row := make([]string, len(result.Header))
			for j, key := range result.Header {
				if cell, ok := v[key]; ok {
					row[j] = stringify(cell)
				}
			}
			result.Rows = append(result.Rows, row)
		default:
			return nil, fmt.Errorf("unsupported JSON row type at index %d: expected array or object", i)
		}
	}
	return result, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// stringify renders a JSON value as a cell. Scalars print bare; nested
// structures keep their compact JSON encoding.
func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		if value {
			return "true"
		}
		return "false"
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(encoded)
	}
}
