package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/grid"
)

// coordCommand creates the coord command for coordinate conversions.
func (c *CLI) coordCommand() *cobra.Command {
	var (
		layoutColumns int
		layoutRows    int
	)

	cmd := &cobra.Command{
		Use:   "coord <A1|col,row>",
		Short: "Convert between positions and spreadsheet-style coordinates",
		Long: `Convert between positions and spreadsheet-style coordinates.

A letter-and-number argument ("B3", "AA12") is decoded to its zero-based
position; a "col,row" pair of zero-based indices is encoded to its label.
With --layout-columns/--layout-rows the position is also bounds-checked
against that grid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoord(args[0], layoutColumns, layoutRows)
		},
	}

	cmd.Flags().IntVar(&layoutColumns, "layout-columns", 0, "bounds-check against a grid with this many columns")
	cmd.Flags().IntVar(&layoutRows, "layout-rows", 0, "bounds-check against a grid with this many rows")

	return cmd
}

func runCoord(arg string, layoutColumns, layoutRows int) error {
	pos, coord, err := parseCoordArg(arg)
	if err != nil {
		return err
	}

	printKeyValue("coordinate", coord.String())
	printKeyValue("position", fmt.Sprintf("column %d, row %d", pos.Column, pos.Row))

	if layoutColumns > 0 || layoutRows > 0 {
		layout := grid.Layout{
			Columns:  layoutColumns,
			Rows:     layoutRows,
			CellSize: grid.CellSize{Width: grid.DefaultCellWidth, Height: grid.DefaultCellHeight},
		}.Clamp()
		if layout.Contains(pos) {
			printSuccess("Inside the %dx%d grid", layout.Columns, layout.Rows)
		} else {
			printError("Outside the %dx%d grid", layout.Columns, layout.Rows)
			return fmt.Errorf("%s is outside the %dx%d grid", coord, layout.Columns, layout.Rows)
		}
	}
	return nil
}

// parseCoordArg accepts either a coordinate label or a "col,row" pair of
// zero-based indices.
func parseCoordArg(arg string) (grid.Position, grid.Coordinate, error) {
	if colStr, rowStr, ok := strings.Cut(arg, ","); ok {
		column, err := strconv.Atoi(strings.TrimSpace(colStr))
		if err != nil {
			return grid.Position{}, grid.Coordinate{}, fmt.Errorf("invalid column index %q", colStr)
		}
		row, err := strconv.Atoi(strings.TrimSpace(rowStr))
		if err != nil {
			return grid.Position{}, grid.Coordinate{}, fmt.Errorf("invalid row index %q", rowStr)
		}
		if column < 0 || row < 0 {
			return grid.Position{}, grid.Coordinate{}, fmt.Errorf("position indices must be non-negative, got %d,%d", column, row)
		}
		pos := grid.Position{Column: column, Row: row}
		return pos, pos.Coordinate(), nil
	}

	coord, err := grid.ParseCoordinate(arg)
	if err != nil {
		return grid.Position{}, grid.Coordinate{}, err
	}
	pos, err := coord.Position()
	if err != nil {
		return grid.Position{}, grid.Coordinate{}, err
	}
	return pos, coord, nil
}
