package rangectl

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// cellConfig left aligns cells and never wraps them, so that a range always
// prints on a single line.
func cellConfig() tw.CellConfig {
	return tw.CellConfig{
		Formatting: tw.CellFormatting{
			AutoWrap:  tw.WrapNone,
			Alignment: tw.AlignLeft,
		},
		Padding: tw.CellPadding{Global: tw.Padding{Right: "  "}},
	}
}

var plain = tw.Rendition{
	Borders: tw.BorderNone,
	Settings: tw.Settings{
		Lines:      tw.LinesNone,
		Separators: tw.SeparatorsNone,
	},
}

// writeTable writes rows under headers to w as a borderless table.
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(plain)),
		tablewriter.WithConfig(tablewriter.Config{
			Header: cellConfig(),
			Row:    cellConfig(),
		}),
	)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("adding %d rows: %w", len(rows), err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}
