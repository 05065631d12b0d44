package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/termenv"

	"github.com/tblcli/tbl/pkg/texttable"
)

// Formatter is the interface for output formatting
type Formatter interface {
	PrintList(header []string, rows [][]string) error
	PrintError(err error)
	PrintHint(msg string)
}

// New creates a formatter for the specified mode
func New(mode string) Formatter {
	switch mode {
	case "json":
		return &jsonFormatter{}
	case "plain":
		return &plainFormatter{}
	case "rich":
		profile := termenv.ColorProfile()
		return &richFormatter{profile: profile}
	default:
		return &plainFormatter{}
	}
}

// jsonFormatter outputs JSON to stdout
type jsonFormatter struct{}

func (f *jsonFormatter) PrintList(header []string, rows [][]string) error {
	// With a header, emit an array of objects keyed by column name;
	// without one, emit the raw array of arrays.
	if len(header) == 0 {
		return encodeJSON(os.Stdout, rows)
	}

	items := make([]map[string]string, len(rows))
	for i, row := range rows {
		item := make(map[string]string, len(header))
		for j, key := range header {
			value := ""
			if j < len(row) {
				value = row[j]
			}
			item[key] = value
		}
		items[i] = item
	}
	return encodeJSON(os.Stdout, items)
}

func (f *jsonFormatter) PrintError(err error) {
	errObj := map[string]string{"error": err.Error()}
	encodeJSON(os.Stderr, errObj)
}

func (f *jsonFormatter) PrintHint(msg string) {
	// Hints are presentation sugar; skip them in JSON mode
}

func encodeJSON(w *os.File, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// plainFormatter outputs tab-separated values
type plainFormatter struct{}

func (f *plainFormatter) PrintList(header []string, rows [][]string) error {
	if len(header) > 0 {
		fmt.Fprintf(os.Stdout, "%s\n", strings.Join(header, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintf(os.Stdout, "%s\n", strings.Join(row, "\t"))
	}
	return nil
}

func (f *plainFormatter) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func (f *plainFormatter) PrintHint(msg string) {
	fmt.Fprintf(os.Stderr, "hint: %v\n", msg)
}

// richFormatter outputs styled content for terminal
type richFormatter struct {
	profile termenv.Profile
}

func (f *richFormatter) PrintList(header []string, rows [][]string) error {
	table := texttable.New(texttable.DefaultConfig())
	if len(header) > 0 {
		table.SetTitle(header)
	}
	table.AddRows(rows...)
	return table.Render(os.Stdout)
}

func (f *richFormatter) PrintError(err error) {
	errorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9"))

	fmt.Fprintf(os.Stderr, "%s\n", errorStyle.Render("error: "+err.Error()))
}

func (f *richFormatter) PrintHint(msg string) {
	hintStyle := lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color("8"))

	fmt.Fprintf(os.Stderr, "%s\n", hintStyle.Render("hint: "+msg))
}
