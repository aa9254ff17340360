package transform

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/grid"
)

var testTime = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func fakeClock() clockwork.Clock {
	return clockwork.NewFakeClockAt(testTime)
}

func layout(columns, rows int) grid.Layout {
	return grid.Layout{Columns: columns, Rows: rows, CellSize: grid.CellSize{Width: 200, Height: 150}}
}

func widget(id string, column, row, width, height int) board.Widget {
	return board.Widget{
		ID:       id,
		Type:     board.TypeText,
		Position: grid.Position{Column: column, Row: row},
		Size:     grid.Size{Width: width, Height: height},
	}
}

func TestUpdateLayoutRepositionsOutOfGridWidget(t *testing.T) {
	d := board.New(
		board.WithLayout(layout(4, 4)),
		board.WithWidgets([]board.Widget{widget("corner", 3, 3, 1, 1)}),
		board.WithClock(fakeClock()),
	)

	out := UpdateLayout(d, layout(2, 2), WithClock(fakeClock()))

	got := out.Widgets[0]
	if got.Position != (grid.Position{Column: 1, Row: 1}) {
		t.Errorf("Position = %+v, want {1 1}", got.Position)
	}
	if got.Size != (grid.Size{Width: 1, Height: 1}) {
		t.Errorf("Size = %+v, want unchanged 1x1", got.Size)
	}
}

func TestUpdateLayoutShrinksOversizedWidget(t *testing.T) {
	d := board.New(
		board.WithLayout(layout(6, 6)),
		board.WithWidgets([]board.Widget{widget("wide", 0, 0, 6, 2)}),
		board.WithClock(fakeClock()),
	)

	out := UpdateLayout(d, layout(3, 6), WithClock(fakeClock()))

	got := out.Widgets[0]
	if got.Position != (grid.Position{Column: 0, Row: 0}) {
		t.Errorf("Position = %+v, want origin", got.Position)
	}
	if got.Size != (grid.Size{Width: 3, Height: 2}) {
		t.Errorf("Size = %+v, want 3x2", got.Size)
	}
}

func TestUpdateLayoutAxesIndependent(t *testing.T) {
	// Column is out of grid, row fits: only the column moves.
	d := board.New(
		board.WithLayout(layout(6, 6)),
		board.WithWidgets([]board.Widget{widget("w", 5, 1, 1, 2)}),
		board.WithClock(fakeClock()),
	)

	out := UpdateLayout(d, layout(3, 6), WithClock(fakeClock()))

	got := out.Widgets[0]
	if got.Position != (grid.Position{Column: 2, Row: 1}) {
		t.Errorf("Position = %+v, want {2 1}", got.Position)
	}
	if got.Size != (grid.Size{Width: 1, Height: 2}) {
		t.Errorf("Size = %+v, want unchanged", got.Size)
	}
}

func TestUpdateLayoutClampsProposedLayout(t *testing.T) {
	d := board.New(board.WithClock(fakeClock()))

	out := UpdateLayout(d, grid.Layout{Columns: 99, Rows: 0, CellSize: grid.CellSize{Width: 10, Height: 9000}})

	want := grid.Layout{Columns: 12, Rows: 1, CellSize: grid.CellSize{Width: 100, Height: 500}}
	if out.Layout != want {
		t.Errorf("Layout = %+v, want %+v", out.Layout, want)
	}
}

func TestUpdateLayoutStampsLastModifiedOnly(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d := board.New(board.WithClock(clockwork.NewFakeClockAt(created)))

	out := UpdateLayout(d, layout(6, 6), WithClock(fakeClock()))

	if out.Metadata.CreatedAt != "2026-01-01T00:00:00Z" {
		t.Errorf("CreatedAt = %q, want pass-through", out.Metadata.CreatedAt)
	}
	if out.Metadata.LastModified != "2026-03-15T10:30:00Z" {
		t.Errorf("LastModified = %q, want stamped", out.Metadata.LastModified)
	}
}

func TestUpdateLayoutDoesNotAliasInput(t *testing.T) {
	d := board.New(
		board.WithLayout(layout(4, 4)),
		board.WithWidgets([]board.Widget{widget("w", 3, 3, 1, 1)}),
		board.WithClock(fakeClock()),
	)

	out := UpdateLayout(d, layout(2, 2), WithClock(fakeClock()))
	out.Widgets[0].Position.Column = 0
	out.Widgets[0].Size.Width = 6

	if d.Widgets[0].Position != (grid.Position{Column: 3, Row: 3}) {
		t.Errorf("input position mutated: %+v", d.Widgets[0].Position)
	}
	if d.Widgets[0].Size != (grid.Size{Width: 1, Height: 1}) {
		t.Errorf("input size mutated: %+v", d.Widgets[0].Size)
	}
}

func TestUpdateLayoutMayProduceOverlap(t *testing.T) {
	// Two widgets squeezed toward the same shrunken region overlap, and
	// migration leaves that for the caller to detect.
	d := board.New(
		board.WithLayout(layout(4, 1)),
		board.WithWidgets([]board.Widget{
			widget("a", 2, 0, 1, 1),
			widget("b", 3, 0, 1, 1),
		}),
		board.WithClock(fakeClock()),
	)

	out := UpdateLayout(d, layout(1, 1), WithClock(fakeClock()))

	if !board.Overlap(out.Widgets[0], out.Widgets[1]) {
		t.Error("expected squeezed widgets to overlap")
	}
	if err := board.Validate(out); err == nil {
		t.Error("Validate() = nil, want overlap error on migrated document")
	}
}

func TestAffected(t *testing.T) {
	widgets := []board.Widget{
		widget("fits", 0, 0, 1, 1),
		widget("resized", 1, 1, 3, 1),
		widget("gone", 3, 3, 1, 1),
	}

	c := Affected(widgets, layout(2, 2))

	if len(c.Unaffected) != 1 || c.Unaffected[0].ID != "fits" {
		t.Errorf("Unaffected = %v, want [fits]", ids(c.Unaffected))
	}
	if len(c.Affected) != 1 || c.Affected[0].ID != "resized" {
		t.Errorf("Affected = %v, want [resized]", ids(c.Affected))
	}
	if len(c.Removed) != 1 || c.Removed[0].ID != "gone" {
		t.Errorf("Removed = %v, want [gone]", ids(c.Removed))
	}
}

func TestAffectedPositionOutsideBeatsFootprint(t *testing.T) {
	// A widget whose start cell is outside the grid is removed even though
	// its footprint also exceeds the grid.
	c := Affected([]board.Widget{widget("w", 2, 0, 3, 1)}, layout(2, 2))

	if len(c.Removed) != 1 {
		t.Fatalf("Removed = %v, want [w]", ids(c.Removed))
	}
}

func ids(ws []board.Widget) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.ID
	}
	return out
}

func TestSummarize(t *testing.T) {
	widgets := []board.Widget{
		widget("fits", 0, 0, 1, 1),
		widget("resized", 1, 1, 3, 1),
		widget("gone", 3, 3, 1, 1),
	}

	s := Summarize(widgets, layout(4, 4), layout(2, 2))

	if s.ColumnDelta != -2 || s.RowDelta != -2 {
		t.Errorf("deltas = %d/%d, want -2/-2", s.ColumnDelta, s.RowDelta)
	}
	if s.Unaffected != 1 || s.Affected != 1 || s.Removed != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", s.Unaffected, s.Affected, s.Removed)
	}
	if len(s.Warnings) != 2 {
		t.Errorf("Warnings = %v, want two entries", s.Warnings)
	}
	if !containsSubstring(s.Recommends, "back up") {
		t.Errorf("Recommends = %v, want backup recommendation", s.Recommends)
	}
	if !containsSubstring(s.Recommends, "lose") {
		t.Errorf("Recommends = %v, want shrink warning", s.Recommends)
	}
}

func TestSummarizeGrow(t *testing.T) {
	s := Summarize([]board.Widget{widget("w", 0, 0, 1, 1)}, layout(4, 4), layout(6, 6))

	if s.ColumnDelta != 2 || s.RowDelta != 2 {
		t.Errorf("deltas = %d/%d, want 2/2", s.ColumnDelta, s.RowDelta)
	}
	if len(s.Warnings) != 0 || len(s.Recommends) != 0 {
		t.Errorf("growing grid produced warnings %v / recommends %v", s.Warnings, s.Recommends)
	}
}

func TestResizeGrid(t *testing.T) {
	tests := []struct {
		name     string
		start    grid.Layout
		dir      Direction
		wantCols int
		wantRows int
	}{
		{"add column", layout(4, 4), AddColumn, 5, 4},
		{"remove column", layout(4, 4), RemoveColumn, 3, 4},
		{"add row", layout(4, 4), AddRow, 4, 5},
		{"remove row", layout(4, 4), RemoveRow, 4, 3},
		{"add column at max", layout(12, 4), AddColumn, 12, 4},
		{"remove row at min", layout(4, 1), RemoveRow, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := board.New(board.WithLayout(tt.start), board.WithClock(fakeClock()))
			out, err := ResizeGrid(d, tt.dir, WithClock(fakeClock()))
			if err != nil {
				t.Fatalf("ResizeGrid() error: %v", err)
			}
			if out.Layout.Columns != tt.wantCols || out.Layout.Rows != tt.wantRows {
				t.Errorf("grid = %dx%d, want %dx%d",
					out.Layout.Columns, out.Layout.Rows, tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestResizeGridUnknownDirection(t *testing.T) {
	d := board.New(board.WithClock(fakeClock()))
	if _, err := ResizeGrid(d, Direction("sideways")); err == nil {
		t.Error("ResizeGrid(sideways) = nil error, want failure")
	}
}

func TestParseDirection(t *testing.T) {
	if _, err := ParseDirection("add-column"); err != nil {
		t.Errorf("ParseDirection(add-column) error: %v", err)
	}
	if _, err := ParseDirection("bogus"); err == nil {
		t.Error("ParseDirection(bogus) = nil error, want failure")
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
