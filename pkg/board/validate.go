package board

import (
	"fmt"

	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/grid"
)

// ValidPlacement reports whether the widget's full footprint lies inside
// the layout: both the start cell and the far edges.
func ValidPlacement(w Widget, l grid.Layout) bool {
	if !l.Contains(w.Position) {
		return false
	}
	return w.Position.Column+w.Size.Width <= l.Columns &&
		w.Position.Row+w.Size.Height <= l.Rows
}

// Overlap reports whether two widgets' footprints intersect. Footprints are
// half-open rectangles, so widgets that merely touch edges do not overlap.
// A widget never overlaps itself: two widgets with the same id are
// overlap-exempt rather than an error.
func Overlap(a, b Widget) bool {
	if a.ID == b.ID {
		return false
	}
	return a.Position.Column < b.Position.Column+b.Size.Width &&
		b.Position.Column < a.Position.Column+a.Size.Width &&
		a.Position.Row < b.Position.Row+b.Size.Height &&
		b.Position.Row < a.Position.Row+a.Size.Height
}

// Validate checks the dashboard against the strict placement invariants.
// Checks run in order and the first failure aborts the call:
//
//  1. Required parts present: non-empty version, non-nil widget list.
//  2. Layout fields inside their declared ranges.
//  3. Per widget: non-empty id and type, footprint inside the layout.
//  4. Pairwise overlap across the full widget list, reporting the first
//     conflicting pair in list order.
//
// Errors carry the offending field path or widget id(s). Widget id
// uniqueness is not re-checked here: same-id pairs are overlap-exempt, and
// uniqueness is enforced where widgets enter the document (AddWidget).
func Validate(d *Dashboard) error {
	if d == nil {
		return errors.New(errors.ErrCodeSchema, "dashboard is nil")
	}
	if d.Version == "" {
		return errors.NewField(errors.ErrCodeSchema, "version", "missing document version")
	}
	if d.Widgets == nil {
		return errors.NewField(errors.ErrCodeSchema, "widgets", "missing widget list")
	}

	if !d.Layout.InRange() {
		return errors.NewField(errors.ErrCodeRange, "layout",
			"layout out of range: columns %d, rows %d, cell %dx%d (columns/rows %d-%d, cell %d-%d)",
			d.Layout.Columns, d.Layout.Rows, d.Layout.CellSize.Width, d.Layout.CellSize.Height,
			grid.MinColumns, grid.MaxColumns, grid.MinCellDimension, grid.MaxCellDimension)
	}

	for i, w := range d.Widgets {
		if w.ID == "" {
			return errors.NewField(errors.ErrCodeSchema, widgetPath(i, ""), "widget has no id")
		}
		if w.Type == "" {
			return errors.NewField(errors.ErrCodeSchema, widgetPath(i, "type"), "widget %q has no type", w.ID)
		}
		if !ValidPlacement(w, d.Layout) {
			return errors.NewField(errors.ErrCodeBounds, w.ID,
				"widget %q at %s spans %dx%d and exceeds the %dx%d grid",
				w.ID, w.Position.Coordinate(), w.Size.Width, w.Size.Height,
				d.Layout.Columns, d.Layout.Rows)
		}
	}

	for i := 0; i < len(d.Widgets); i++ {
		for j := i + 1; j < len(d.Widgets); j++ {
			if Overlap(d.Widgets[i], d.Widgets[j]) {
				return errors.NewField(errors.ErrCodeOverlap, d.Widgets[i].ID,
					"widgets %q and %q overlap", d.Widgets[i].ID, d.Widgets[j].ID)
			}
		}
	}

	return nil
}

func widgetPath(index int, field string) string {
	if field == "" {
		return fmt.Sprintf("widgets[%d]", index)
	}
	return fmt.Sprintf("widgets[%d].%s", index, field)
}
