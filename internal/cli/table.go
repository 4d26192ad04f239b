package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderStatusTable renders dependency rows as a rounded table.
func renderStatusTable(rows []statusRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Tool", "Status", "Version", "Notes"})

	for _, row := range rows {
		status := "missing"
		if row.present {
			status = "ok"
		}
		tw.AppendRow(table.Row{row.tool, status, row.version, row.note})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft, Transformer: func(val interface{}) string {
			if val == "ok" {
				return text.FgGreen.Sprint(val)
			}
			return text.FgRed.Sprint(val)
		}},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
