package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/gauss/internal/projectconfig"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	formatAuto  = "auto"
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// loadProjectConfig is replaced in tests.
var loadProjectConfig = func() (*projectconfig.ProjectConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return projectconfig.Load(wd)
}

func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "f", "", "Output format: table, json, yaml or auto (default from .gauss.yaml)")
}

// renderer writes command results in the selected format.
type renderer struct {
	w         io.Writer
	format    string
	precision int
}

func newRenderer(w io.Writer, format string, cfg *projectconfig.ProjectConfig) (*renderer, error) {
	if format == "" {
		format = cfg.Output.Format
	}
	if format == formatAuto {
		format = formatJSON
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			format = formatTable
		}
	}
	switch format {
	case formatTable, formatJSON, formatYAML:
	default:
		return nil, fmt.Errorf("unsupported format %q: must be table, json, yaml or auto", format)
	}
	return &renderer{w: w, format: format, precision: cfg.Output.Precision}, nil
}

// emit writes v as JSON or YAML, or calls table for the table format.
func (r *renderer) emit(v any, table func(w io.Writer)) error {
	switch r.format {
	case formatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		table(r.w)
		return nil
	}
}

func (r *renderer) num(v float64) string {
	return strconv.FormatFloat(v, 'g', r.precision, 64)
}

// printTable writes rows under headers, aligned by terminal display width.
func printTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	writeRow := func(cells []string) {
		padded := make([]string, len(cells))
		for i, c := range cells {
			padded[i] = padRight(c, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " ")) //nolint:errcheck
	}

	writeRow(headers)
	rule := make([]string, len(headers))
	for i, width := range widths {
		rule[i] = strings.Repeat("─", width)
	}
	writeRow(rule)
	for _, row := range rows {
		writeRow(row)
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
