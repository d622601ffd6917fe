package formatter

import (
	"github.com/alevsk/htmlfind/internal/types"
	"github.com/jedib0t/go-pretty/v6/table"
)

// newWriter returns a table writer with the shared style
func newWriter(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(nil) // Don't write to stdout directly
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateColumns = true
	t.SetTitle(title)
	return t
}

// buildTables builds the metadata and matches tables for the given data.
// The metadata table is nil when metadata is disabled.
func buildTables(data types.Result, opts *Options) (table.Writer, table.Writer) {
	var metadataTable table.Writer
	if opts.IncludeMetadata {
		metadataTable = newWriter("METADATA")
		metadataTable.AppendHeader(table.Row{"KEY", "VALUE"})
		metadataTable.AppendRows([]table.Row{
			{"VERSION", data.Version},
			{"SOURCE", data.Source},
			{"STRATEGY", data.Strategy},
			{"SELECTOR", data.Selector},
			{"MATCHES", len(data.Matches)},
			{"TIMESTAMP", data.Timestamp},
		})
	}

	matchesTable := newWriter("MATCHES")
	matchesTable.AppendHeader(table.Row{"#", "TEXT", "HTML"})
	if opts.MaxHTMLWidth > 0 {
		matchesTable.SetColumnConfigs([]table.ColumnConfig{
			{Name: "HTML", WidthMax: opts.MaxHTMLWidth},
		})
	}

	for _, m := range data.Matches {
		matchesTable.AppendRow(table.Row{m.Index, m.Text, m.HTML})
	}

	return metadataTable, matchesTable
}
