package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/board"
)

// inspectCommand creates the inspect command for examining documents.
func (c *CLI) inspectCommand() *cobra.Command {
	var widgetsOnly bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show a document's layout, widgets, and metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.loadDashboard(args[0])
			if err != nil {
				return err
			}
			if !widgetsOnly {
				printDashboardHeader(d)
				printNewline()
			}
			printWidgetTable(d.Widgets)
			return nil
		},
	}

	cmd.Flags().BoolVar(&widgetsOnly, "widgets", false, "show only the widget table")

	return cmd
}

func printDashboardHeader(d *board.Dashboard) {
	fmt.Println(StyleTitle.Render(d.Metadata.Title))

	printKeyValue("version", d.Version)
	printKeyValue("grid", fmt.Sprintf("%dx%d", d.Layout.Columns, d.Layout.Rows))
	printKeyValue("cell size", fmt.Sprintf("%dx%d px", d.Layout.CellSize.Width, d.Layout.CellSize.Height))
	printKeyValue("theme", d.Metadata.Theme)
	printKeyValue("created", d.Metadata.CreatedAt)
	printKeyValue("modified", d.Metadata.LastModified)
	if d.Metadata.Description != "" {
		printKeyValue("description", d.Metadata.Description)
	}

	if len(d.Metadata.Extra) > 0 {
		keys := make([]string, 0, len(d.Metadata.Extra))
		for k := range d.Metadata.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			printKeyValue(k, fmt.Sprintf("%v", d.Metadata.Extra[k]))
		}
	}
}

func printWidgetTable(widgets []board.Widget) {
	if len(widgets) == 0 {
		printInfo("No widgets")
		return
	}

	rows := make([][]string, len(widgets))
	for i, w := range widgets {
		end := w.Position
		end.Column += w.Size.Width - 1
		end.Row += w.Size.Height - 1
		rows[i] = []string{
			w.ID,
			w.Type,
			w.Position.Coordinate().String(),
			fmt.Sprintf("%dx%d", w.Size.Width, w.Size.Height),
			fmt.Sprintf("%s:%s", w.Position.Coordinate(), end.Coordinate()),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Widget", "Type", "At", "Span", "Footprint").
		Rows(rows...)

	fmt.Println(t)
}
