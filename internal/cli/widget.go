package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/grid"
)

// widgetCommand creates the widget command group for widget maintenance.
func (c *CLI) widgetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widget",
		Short: "Add, remove, and list widgets",
	}

	cmd.AddCommand(c.widgetAddCommand())
	cmd.AddCommand(c.widgetRemoveCommand())
	cmd.AddCommand(c.widgetListCommand())

	return cmd
}

func (c *CLI) widgetAddCommand() *cobra.Command {
	var (
		id      string
		typ     string
		at      string
		width   int
		height  int
		content []string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Add a widget to a dashboard",
		Long: `Add a widget to a dashboard.

The placement is checked before writing: the widget's footprint must lie
inside the grid and must not overlap any existing widget. The position is
given as a spreadsheet-style coordinate (--at B2). Content entries are
key=value pairs stored in the widget's opaque content map.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWidgetAdd(args[0], id, typ, at, width, height, content, output)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "widget id (default: generated)")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "widget type: text, metric, chart, image, table (required)")
	cmd.Flags().StringVar(&at, "at", "A1", "position as a coordinate, e.g. B2")
	cmd.Flags().IntVar(&width, "width", 1, "width in cells (1-6)")
	cmd.Flags().IntVar(&height, "height", 1, "height in cells (1-6)")
	cmd.Flags().StringArrayVar(&content, "content", nil, "content entry as key=value (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (c *CLI) runWidgetAdd(path, id, typ, at string, width, height int, content []string, output string) error {
	if err := errors.ValidateWidgetType(typ); err != nil {
		return err
	}

	coord, err := grid.ParseCoordinate(at)
	if err != nil {
		return err
	}
	pos, err := coord.Position()
	if err != nil {
		return err
	}

	if id == "" {
		id = board.NewWidgetID()
	}

	contentMap, err := parseContent(content)
	if err != nil {
		return err
	}

	d, err := c.loadDashboard(path)
	if err != nil {
		return err
	}

	w := board.Widget{
		ID:       id,
		Type:     typ,
		Position: pos,
		Size:     grid.Size{Width: width, Height: height},
		Content:  contentMap,
	}

	out, err := board.AddWidget(d, w)
	if err != nil {
		return err
	}

	if output == "" {
		output = path
	}
	if err := writeDashboard(out, output); err != nil {
		return err
	}
	if output != "-" {
		printSuccess("Widget %s added at %s", id, coord)
		printFile(output)
	}
	return nil
}

// parseContent converts key=value flags into a content map. Values that
// parse as numbers or booleans keep their JSON type.
func parseContent(entries []string) (map[string]any, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	out := make(map[string]any, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid content entry %q, want key=value", entry)
		}
		out[key] = coerceValue(value)
	}
	return out, nil
}

// coerceValue converts a flag string to the most specific JSON value.
func coerceValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func (c *CLI) widgetRemoveCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "remove <file> [id]",
		Short: "Remove a widget from a dashboard",
		Long: `Remove a widget from a dashboard.

When no id is given, an interactive picker lists the document's widgets.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 2 {
				id = args[1]
			}
			return c.runWidgetRemove(args[0], id, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

func (c *CLI) runWidgetRemove(path, id, output string) error {
	d, err := c.loadDashboard(path)
	if err != nil {
		return err
	}

	if id == "" {
		if len(d.Widgets) == 0 {
			printInfo("No widgets to remove")
			return nil
		}
		id, err = pickWidget(d.Widgets)
		if err != nil {
			return err
		}
		if id == "" {
			printInfo("Nothing selected")
			return nil
		}
	}

	out, err := board.RemoveWidget(d, id)
	if err != nil {
		return err
	}

	if output == "" {
		output = path
	}
	if err := writeDashboard(out, output); err != nil {
		return err
	}
	if output != "-" {
		printSuccess("Widget %s removed", id)
		printFile(output)
	}
	return nil
}

func (c *CLI) widgetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "List the widgets in a dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.loadDashboard(args[0])
			if err != nil {
				return err
			}
			printWidgetTable(d.Widgets)
			return nil
		},
	}
}
