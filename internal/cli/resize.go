package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/board/transform"
)

// resizeCommand creates the resize command for single-step grid changes.
func (c *CLI) resizeCommand() *cobra.Command {
	var (
		output string
		apply  bool
	)

	cmd := &cobra.Command{
		Use:   "resize <file> <add-column|remove-column|add-row|remove-row>",
		Short: "Nudge one grid dimension by a single step",
		Long: `Nudge one grid dimension by a single step.

Resize is a convenience over migrate: it changes one dimension by one cell
(clamped to the valid range) and runs the same widget migration. Without
--apply the result is printed to stdout and the input file is untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := transform.ParseDirection(args[1])
			if err != nil {
				return err
			}
			return c.runResize(args[0], dir, output, apply)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input with --apply, stdout otherwise)")
	cmd.Flags().BoolVar(&apply, "apply", false, "write the result back to the document")

	return cmd
}

func (c *CLI) runResize(path string, dir transform.Direction, output string, apply bool) error {
	d, err := c.loadDashboard(path)
	if err != nil {
		return err
	}

	out, err := transform.ResizeGrid(d, dir)
	if err != nil {
		return err
	}

	if out.Layout == d.Layout {
		printInfo("Grid already at its limit, layout unchanged (%dx%d)",
			out.Layout.Columns, out.Layout.Rows)
	}

	if output == "" {
		if apply {
			output = path
		} else {
			output = "-"
		}
	}
	if err := writeDashboard(out, output); err != nil {
		return err
	}
	if output != "-" {
		printSuccess("Grid resized to %dx%d", out.Layout.Columns, out.Layout.Rows)
		printFile(output)
	}
	return nil
}
