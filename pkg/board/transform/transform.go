// Package transform implements the layout migration engine: applying a new
// grid layout to an existing dashboard while keeping every widget legal,
// and previewing which widgets a proposed layout would disturb.
//
// Migration adjusts each widget independently, axis by axis. It never
// re-checks widgets against each other, so two widgets compressed toward
// the same shrunken region can end up overlapping. That gap is intentional:
// callers detect it with [Affected] or board.Validate when they care.
package transform

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/grid"
)

// Option configures a migration.
type Option func(*options)

type options struct {
	clock clockwork.Clock
}

// WithClock injects the clock used to stamp Metadata.LastModified.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) { o.clock = clock }
}

func newOptions(opts []Option) options {
	o := options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// UpdateLayout returns a new dashboard with the proposed layout applied.
// The proposed layout is clamped into valid ranges first. Each widget is
// then adjusted per axis, independently of every other widget:
//
//  1. If the position falls outside the new grid, move it back so the far
//     edge aligns with the boundary: max(0, bound - size).
//  2. If the footprint still exceeds the boundary, shrink the size to
//     max(1, bound - position).
//  3. Re-clamp the size into its declared range.
//
// Metadata.LastModified is stamped with the clock's current time; CreatedAt
// and everything else pass through unchanged. The input dashboard is never
// mutated and the result shares no nested records with it.
func UpdateLayout(d *board.Dashboard, proposed grid.Layout, opts ...Option) *board.Dashboard {
	o := newOptions(opts)
	layout := proposed.Clamp()

	out := d.Clone()
	out.Layout = layout
	for i := range out.Widgets {
		out.Widgets[i].Position, out.Widgets[i].Size = fitWidget(out.Widgets[i], layout)
	}
	out.Metadata.LastModified = o.clock.Now().UTC().Format(time.RFC3339)
	return out
}

// fitWidget returns the position and size that keep the widget inside the
// layout, adjusting each axis independently.
func fitWidget(w board.Widget, l grid.Layout) (grid.Position, grid.Size) {
	pos, size := w.Position, w.Size

	pos.Column = fitAxis(pos.Column, size.Width, l.Columns)
	pos.Row = fitAxis(pos.Row, size.Height, l.Rows)

	if pos.Column+size.Width > l.Columns {
		size.Width = max(1, l.Columns-pos.Column)
	}
	if pos.Row+size.Height > l.Rows {
		size.Height = max(1, l.Rows-pos.Row)
	}

	return pos, size.Clamp()
}

// fitAxis pulls a start coordinate back inside [0, bound) so the far edge
// of a span-sized widget aligns with the boundary where possible.
func fitAxis(start, span, bound int) int {
	if start >= bound {
		return max(0, bound-span)
	}
	return start
}

// Classification partitions a widget list by the impact of a proposed
// layout. Widgets appear in exactly one bucket, in original list order.
type Classification struct {
	// Unaffected widgets fit the proposed grid as they are.
	Unaffected []board.Widget

	// Affected widgets still start inside the proposed grid but their
	// footprint exceeds it; migration would move or shrink them.
	Affected []board.Widget

	// Removed widgets start outside the proposed grid entirely; no resize
	// alone can keep their position.
	Removed []board.Widget
}

// Affected previews the impact of a proposed layout on a widget list
// without mutating anything. The proposed layout is clamped first so the
// preview matches what [UpdateLayout] would apply.
//
// A widget is removed when its position alone already falls outside the
// proposed grid on either axis; affected when its footprint exceeds the
// grid; unaffected otherwise.
func Affected(widgets []board.Widget, proposed grid.Layout) Classification {
	layout := proposed.Clamp()

	var c Classification
	for _, w := range widgets {
		switch {
		case !layout.Contains(w.Position):
			c.Removed = append(c.Removed, w.Clone())
		case !board.ValidPlacement(w, layout):
			c.Affected = append(c.Affected, w.Clone())
		default:
			c.Unaffected = append(c.Unaffected, w.Clone())
		}
	}
	return c
}
