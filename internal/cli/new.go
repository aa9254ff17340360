package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/grid"
)

// newCommand creates the new command for producing dashboard documents.
func (c *CLI) newCommand() *cobra.Command {
	var (
		output     string
		sample     bool
		columns    int
		rows       int
		cellWidth  int
		cellHeight int
		title      string
		theme      string
	)

	cfg, err := loadConfig()
	if err != nil {
		cfg = defaultConfig()
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new dashboard document",
		Long: `Create a new dashboard document.

The document starts empty unless --sample is given, in which case it is
seeded with four non-overlapping widgets (a text banner, a metric, a chart,
and a table) on the default grid. Grid dimensions default to the values in
the config file. Out-of-range dimensions are clamped, not rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateThemeName(theme); err != nil {
				return err
			}

			layout := grid.Layout{
				Columns: columns,
				Rows:    rows,
				CellSize: grid.CellSize{
					Width:  cellWidth,
					Height: cellHeight,
				},
			}

			opts := []board.Option{
				board.WithLayout(layout),
				board.WithTitle(title),
				board.WithTheme(theme),
			}

			d := board.New(opts...)
			if sample {
				d = board.NewSample(opts...)
			}

			if err := writeDashboard(d, output); err != nil {
				return err
			}
			if output != "" && output != "-" {
				printSuccess("Dashboard created")
				printFile(output)
				printNewline()
				printNextStep("Inspect", appName+" inspect "+output)
			}
			return nil
		},
	}

	// Flag defaults come from the configured layout, already clamped.
	defaults := cfg.Layout()

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&sample, "sample", false, "seed the document with sample widgets")
	cmd.Flags().IntVar(&columns, "columns", defaults.Columns, "grid columns (1-12)")
	cmd.Flags().IntVar(&rows, "rows", defaults.Rows, "grid rows (1-12)")
	cmd.Flags().IntVar(&cellWidth, "cell-width", defaults.CellSize.Width, "cell width in pixels (100-500)")
	cmd.Flags().IntVar(&cellHeight, "cell-height", defaults.CellSize.Height, "cell height in pixels (100-500)")
	cmd.Flags().StringVar(&title, "title", board.DefaultTitle, "dashboard title")
	cmd.Flags().StringVar(&theme, "theme", cfg.Theme, "dashboard theme")

	return cmd
}
