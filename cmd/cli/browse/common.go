// Package browse implements the human-facing commands that render NetBox
// records as terminal tables, next to the machine-facing inventory output.
package browse

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const groupID = "browse"

func Group(title string) *cobra.Group {
	return &cobra.Group{
		ID:    groupID,
		Title: title,
	}
}

// printRecords renders rows as a table, or the raw records as JSON/YAML.
func printRecords(format string, header []string, rows [][]string, records any) error {
	switch format {
	case "table":
		return printTable(header, rows)
	case "json":
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshalling json: %v", err)
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("error marshalling yaml: %v", err)
		}
		fmt.Printf("%s", out) // the yaml output ends with a newline
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func printTable(header []string, rows [][]string) error {
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "No records found.")
		return nil
	}

	options := []tablewriter.Option{
		tablewriter.WithRenderer(renderer.NewColorized(renderer.ColorizedConfig{
			Header: renderer.Tint{
				FG: renderer.Colors{color.Bold}, // Bold headers
			},
			Column: renderer.Tint{
				FG: renderer.Colors{color.Reset},
				BG: renderer.Colors{color.Reset},
			},
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off, ShowFooter: tw.Off, BetweenRows: tw.Off, BetweenColumns: tw.Off},
				Lines: tw.Lines{
					ShowTop:        tw.Off,
					ShowBottom:     tw.Off,
					ShowHeaderLine: tw.Off,
					ShowFooterLine: tw.Off,
				},
				CompactMode: tw.On,
			},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
	}

	table := tablewriter.NewTable(os.Stdout, options...)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("error adding data to table: %v", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("error rendering table: %v", err)
	}
	return nil
}
