package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/board/transform"
	"github.com/matzehuels/gridboard/pkg/grid"
)

// migrateCommand creates the migrate command for applying layout changes.
func (c *CLI) migrateCommand() *cobra.Command {
	var (
		output     string
		columns    int
		rows       int
		cellWidth  int
		cellHeight int
		apply      bool
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "migrate <file>",
		Short: "Preview and apply a grid layout change",
		Long: `Preview and apply a grid layout change.

Without --apply the command prints the change summary and the per-widget
classification (unaffected, affected, removed) and leaves the document
untouched. With --apply the migration runs: the proposed layout is clamped,
each widget is repositioned and resized independently to stay legal, and
the result is written out.

Migration never re-checks widgets against each other, so shrinking a grid
can produce overlapping widgets. Run 'gridboard validate' on the result to
detect that. When the preview classifies widgets as removed, --apply asks
for confirmation unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proposed := grid.Layout{
				Columns: columns,
				Rows:    rows,
				CellSize: grid.CellSize{
					Width:  cellWidth,
					Height: cellHeight,
				},
			}
			return c.runMigrate(args[0], proposed, output, apply, yes)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().IntVar(&columns, "columns", 0, "proposed grid columns (required)")
	cmd.Flags().IntVar(&rows, "rows", 0, "proposed grid rows (required)")
	cmd.Flags().IntVar(&cellWidth, "cell-width", 0, "proposed cell width (default: keep current)")
	cmd.Flags().IntVar(&cellHeight, "cell-height", 0, "proposed cell height (default: keep current)")
	cmd.Flags().BoolVar(&apply, "apply", false, "apply the migration instead of previewing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("columns")
	_ = cmd.MarkFlagRequired("rows")

	return cmd
}

func (c *CLI) runMigrate(path string, proposed grid.Layout, output string, apply, yes bool) error {
	d, err := c.loadDashboard(path)
	if err != nil {
		return err
	}

	// Unset cell dimensions carry over from the current layout.
	if proposed.CellSize.Width == 0 {
		proposed.CellSize.Width = d.Layout.CellSize.Width
	}
	if proposed.CellSize.Height == 0 {
		proposed.CellSize.Height = d.Layout.CellSize.Height
	}

	summary := transform.Summarize(d.Widgets, d.Layout, proposed)
	impact := transform.Affected(d.Widgets, proposed)
	printMigrationSummary(summary, impact)

	if !apply {
		printNewline()
		printNextStep("Apply", fmt.Sprintf("%s migrate %s --columns %d --rows %d --apply",
			appName, path, proposed.Columns, proposed.Rows))
		return nil
	}

	if summary.Removed > 0 && !yes && isInteractive() {
		ok, err := confirm(fmt.Sprintf("%d widget(s) fall outside the new grid. Apply anyway?", summary.Removed))
		if err != nil {
			return err
		}
		if !ok {
			printInfo("Migration cancelled")
			return nil
		}
	}

	p := newProgress(c.Logger)
	out := transform.UpdateLayout(d, proposed)
	p.done(fmt.Sprintf("Migrated %d widget(s)", len(out.Widgets)))

	if output == "" {
		output = path
	}
	if err := writeDashboard(out, output); err != nil {
		return err
	}
	if output != "-" {
		printSuccess("Migration applied")
		printFile(output)
		printNewline()
		printNextStep("Check for overlap", appName+" validate "+output)
	}
	return nil
}

// printMigrationSummary renders the change summary and the per-widget
// classification table.
func printMigrationSummary(s transform.Summary, impact transform.Classification) {
	printInfo("%s", s.Description)
	printDetail("unaffected: %d, affected: %d, removed: %d", s.Unaffected, s.Affected, s.Removed)

	for _, w := range s.Warnings {
		printWarning("%s", w)
	}
	for _, r := range s.Recommends {
		printDetail("recommendation: %s", r)
	}

	if len(impact.Affected) == 0 && len(impact.Removed) == 0 {
		return
	}

	rows := [][]string{}
	appendRows := func(ws []board.Widget, impact string) {
		for _, w := range ws {
			rows = append(rows, []string{
				w.ID,
				w.Type,
				w.Position.Coordinate().String(),
				fmt.Sprintf("%dx%d", w.Size.Width, w.Size.Height),
				impact,
			})
		}
	}
	appendRows(impact.Affected, "affected")
	appendRows(impact.Removed, "removed")

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Widget", "Type", "At", "Span", "Impact").
		Rows(rows...)

	fmt.Println(t)
}
