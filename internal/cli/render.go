package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/tblcli/tbl/internal/config"
	"github.com/tblcli/tbl/internal/input"
	"github.com/tblcli/tbl/internal/output"
	"github.com/tblcli/tbl/pkg/texttable"
)

// RenderCmd implements the render command
type RenderCmd struct {
	File string `arg:"" optional:"" help:"Input file (reads stdin when omitted)" predictor:"file"`

	Format  string `help:"Input format" default:"auto" enum:"auto,csv,tsv,json" short:"f"`
	Width   int    `help:"Total table width (overrides config)" default:"0"`
	Padding int    `help:"Spaces on each side of every cell (overrides config)" default:"-1"`
	Border  string `help:"Border glyphs: vertical, horizontal, junction (e.g. \"|-+\")" default:""`
	Header  bool   `help:"Treat the first row as the title" short:"H"`
}

// Run executes the render command
func (cmd *RenderCmd) Run(cfg *config.Config, fp *FormatterProvider, globals *Globals) error {
	reader, name, err := cmd.open()
	if err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to open input: %v", err),
			ExitCode: output.ExitNotFound,
		}
	}
	defer func() {
		if closer, ok := reader.(io.Closer); ok && reader != os.Stdin {
			closer.Close()
		}
	}()

	format := cmd.Format
	if format == "auto" {
		if detected := input.DetectFormat(name); detected != "" {
			format = detected
		}
	}
	if globals.Verbose {
		fmt.Fprintf(os.Stderr, "reading %s (format: %s)\n", name, format)
	}

	data, err := input.Read(reader, format)
	if err != nil {
		return &output.CLIError{
			Message:  err.Error(),
			ExitCode: output.ExitInputError,
		}
	}

	tableConfig, err := cmd.tableConfig(cfg)
	if err != nil {
		return &output.CLIError{
			Message:  err.Error(),
			ExitCode: output.ExitUsage,
		}
	}

	table := texttable.New(tableConfig)
	rows := data.Rows
	if data.Header != nil {
		table.SetTitle(data.Header)
	} else if cmd.Header && len(rows) > 0 {
		table.SetTitle(rows[0])
		rows = rows[1:]
	}
	table.AddRows(rows...)

	return table.Render(os.Stdout)
}

// open returns the input reader and a display name for it
func (cmd *RenderCmd) open() (io.Reader, string, error) {
	if cmd.File == "" || cmd.File == "-" {
		return os.Stdin, "stdin", nil
	}
	f, err := os.Open(cmd.File)
	if err != nil {
		return nil, "", err
	}
	return f, cmd.File, nil
}

// tableConfig layers command flags over the persisted configuration
func (cmd *RenderCmd) tableConfig(cfg *config.Config) (texttable.Config, error) {
	tableConfig := cfg.TableConfig()
	if cmd.Width > 0 {
		tableConfig.Width = cmd.Width
	}
	if cmd.Padding >= 0 {
		tableConfig.Padding = cmd.Padding
	}
	if cmd.Border != "" {
		border, err := config.ParseBorder(cmd.Border)
		if err != nil {
			return texttable.Config{}, err
		}
		tableConfig.Border = border
	}
	return tableConfig, nil
}
