package transform

import (
	"fmt"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/grid"
)

// Summary is a human-readable account of what a proposed layout change
// would do: the dimension deltas, the widget impact counts, and derived
// warnings and recommendations.
type Summary struct {
	ColumnDelta int      `json:"columnDelta"`
	RowDelta    int      `json:"rowDelta"`
	Unaffected  int      `json:"unaffected"`
	Affected    int      `json:"affected"`
	Removed     int      `json:"removed"`
	Description string   `json:"description"`
	Warnings    []string `json:"warnings,omitempty"`
	Recommends  []string `json:"recommendations,omitempty"`
}

// Summarize derives the change summary for a proposed layout. Both layouts
// are clamped first so the deltas match what [UpdateLayout] would apply.
func Summarize(widgets []board.Widget, current, proposed grid.Layout) Summary {
	cur := current.Clamp()
	next := proposed.Clamp()
	impact := Affected(widgets, next)

	s := Summary{
		ColumnDelta: next.Columns - cur.Columns,
		RowDelta:    next.Rows - cur.Rows,
		Unaffected:  len(impact.Unaffected),
		Affected:    len(impact.Affected),
		Removed:     len(impact.Removed),
		Description: describeDelta(cur, next),
	}

	if s.Affected > 0 {
		s.Warnings = append(s.Warnings,
			fmt.Sprintf("%d widget(s) will be moved or resized to fit the new grid", s.Affected))
	}
	if s.Removed > 0 {
		s.Warnings = append(s.Warnings,
			fmt.Sprintf("%d widget(s) fall outside the new grid entirely", s.Removed))
		s.Recommends = append(s.Recommends, "back up the dashboard before applying this change")
	}
	if s.ColumnDelta < 0 || s.RowDelta < 0 {
		s.Recommends = append(s.Recommends, "shrinking the grid may lose widget data")
	}

	return s
}

func describeDelta(cur, next grid.Layout) string {
	if cur.Columns == next.Columns && cur.Rows == next.Rows {
		return fmt.Sprintf("grid stays %dx%d", next.Columns, next.Rows)
	}
	return fmt.Sprintf("grid changes from %dx%d to %dx%d (%s, %s)",
		cur.Columns, cur.Rows, next.Columns, next.Rows,
		describeAxis("column", next.Columns-cur.Columns),
		describeAxis("row", next.Rows-cur.Rows))
}

func describeAxis(name string, delta int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("+%d %s(s)", delta, name)
	case delta < 0:
		return fmt.Sprintf("%d %s(s)", delta, name)
	default:
		return name + "s unchanged"
	}
}

// Direction is a single-step grid resize.
type Direction string

// Resize directions accepted by [ResizeGrid].
const (
	AddColumn    Direction = "add-column"
	RemoveColumn Direction = "remove-column"
	AddRow       Direction = "add-row"
	RemoveRow    Direction = "remove-row"
)

// ParseDirection converts a string to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case AddColumn, RemoveColumn, AddRow, RemoveRow:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown resize direction %q (valid: %s, %s, %s, %s)",
		s, AddColumn, RemoveColumn, AddRow, RemoveRow)
}

// ResizeGrid nudges one grid dimension by a single step, clamped to the
// valid range, and delegates to [UpdateLayout].
func ResizeGrid(d *board.Dashboard, dir Direction, opts ...Option) (*board.Dashboard, error) {
	layout := d.Layout

	switch dir {
	case AddColumn:
		layout.Columns++
	case RemoveColumn:
		layout.Columns--
	case AddRow:
		layout.Rows++
	case RemoveRow:
		layout.Rows--
	default:
		return nil, fmt.Errorf("unknown resize direction %q", dir)
	}

	return UpdateLayout(d, layout, opts...), nil
}
