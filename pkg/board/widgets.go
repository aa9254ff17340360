package board

import (
	"time"

	"github.com/matzehuels/gridboard/pkg/errors"
)

// AddWidget returns a new dashboard with w appended. It rejects an empty or
// duplicate id, a footprint outside the layout, and any overlap with an
// existing widget. The input dashboard is never mutated.
func AddWidget(d *Dashboard, w Widget, opts ...Option) (*Dashboard, error) {
	o := newOptions(opts)

	if err := errors.ValidateWidgetID(w.ID); err != nil {
		return nil, err
	}
	if d.Find(w.ID) >= 0 {
		return nil, errors.NewField(errors.ErrCodeDuplicateWidget, w.ID,
			"widget %q already exists", w.ID)
	}
	if !ValidPlacement(w, d.Layout) {
		return nil, errors.NewField(errors.ErrCodeBounds, w.ID,
			"widget %q at %s spans %dx%d and exceeds the %dx%d grid",
			w.ID, w.Position.Coordinate(), w.Size.Width, w.Size.Height,
			d.Layout.Columns, d.Layout.Rows)
	}
	for _, existing := range d.Widgets {
		if Overlap(w, existing) {
			return nil, errors.NewField(errors.ErrCodeOverlap, w.ID,
				"widget %q overlaps existing widget %q", w.ID, existing.ID)
		}
	}

	out := d.Clone()
	out.Widgets = append(out.Widgets, w.Clone())
	out.Metadata.LastModified = o.clock.Now().UTC().Format(time.RFC3339)
	return out, nil
}

// UpdateWidget returns a new dashboard with the widget matching w.ID
// replaced by w. Placement and overlap are checked against every other
// widget; the widget being replaced is exempt.
func UpdateWidget(d *Dashboard, w Widget, opts ...Option) (*Dashboard, error) {
	o := newOptions(opts)

	idx := d.Find(w.ID)
	if idx < 0 {
		return nil, errors.NewField(errors.ErrCodeWidgetNotFound, w.ID,
			"widget %q not found", w.ID)
	}
	if !ValidPlacement(w, d.Layout) {
		return nil, errors.NewField(errors.ErrCodeBounds, w.ID,
			"widget %q at %s spans %dx%d and exceeds the %dx%d grid",
			w.ID, w.Position.Coordinate(), w.Size.Width, w.Size.Height,
			d.Layout.Columns, d.Layout.Rows)
	}
	for i, existing := range d.Widgets {
		if i == idx {
			continue
		}
		if Overlap(w, existing) {
			return nil, errors.NewField(errors.ErrCodeOverlap, w.ID,
				"widget %q overlaps existing widget %q", w.ID, existing.ID)
		}
	}

	out := d.Clone()
	out.Widgets[idx] = w.Clone()
	out.Metadata.LastModified = o.clock.Now().UTC().Format(time.RFC3339)
	return out, nil
}

// RemoveWidget returns a new dashboard without the widget matching id.
func RemoveWidget(d *Dashboard, id string, opts ...Option) (*Dashboard, error) {
	o := newOptions(opts)

	idx := d.Find(id)
	if idx < 0 {
		return nil, errors.NewField(errors.ErrCodeWidgetNotFound, id,
			"widget %q not found", id)
	}

	out := d.Clone()
	out.Widgets = append(out.Widgets[:idx], out.Widgets[idx+1:]...)
	out.Metadata.LastModified = o.clock.Now().UTC().Format(time.RFC3339)
	return out, nil
}
