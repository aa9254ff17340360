// Package grid defines the geometry primitives of a dashboard: the grid
// layout, zero-based cell positions, cell spans, and the spreadsheet-style
// coordinate codec.
//
// All numeric fields carry declared ranges. The Clamp methods force a value
// into range and are shared by every path that repairs rather than rejects
// out-of-range input.
package grid

// Range limits for layout and widget geometry.
const (
	MinColumns = 1
	MaxColumns = 12
	MinRows    = 1
	MaxRows    = 12

	// Cell pixel dimensions.
	MinCellDimension = 100
	MaxCellDimension = 500

	// Widget span in cells, per axis.
	MinSpan = 1
	MaxSpan = 6
)

// Defaults used by the factory and the lenient normalizers.
const (
	DefaultColumns    = 4
	DefaultRows       = 4
	DefaultCellWidth  = 200
	DefaultCellHeight = 150
)

// CellSize is the pixel footprint of a single grid cell.
type CellSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Layout describes the grid: its cell dimensions and the pixel size of
// each cell.
type Layout struct {
	Columns  int      `json:"columns"`
	Rows     int      `json:"rows"`
	CellSize CellSize `json:"cellSize"`
}

// Position is a zero-based cell address on the grid.
type Position struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// Size is a widget's span in cells, per axis.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultLayout returns the standard 4x4 grid with 200x150 cells.
func DefaultLayout() Layout {
	return Layout{
		Columns: DefaultColumns,
		Rows:    DefaultRows,
		CellSize: CellSize{
			Width:  DefaultCellWidth,
			Height: DefaultCellHeight,
		},
	}
}

// clampInt forces v into [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp returns a copy of the layout with every field forced into its
// declared range.
func (l Layout) Clamp() Layout {
	return Layout{
		Columns: clampInt(l.Columns, MinColumns, MaxColumns),
		Rows:    clampInt(l.Rows, MinRows, MaxRows),
		CellSize: CellSize{
			Width:  clampInt(l.CellSize.Width, MinCellDimension, MaxCellDimension),
			Height: clampInt(l.CellSize.Height, MinCellDimension, MaxCellDimension),
		},
	}
}

// InRange reports whether every layout field sits inside its declared range.
func (l Layout) InRange() bool {
	return l == l.Clamp()
}

// Contains reports whether p addresses a cell inside the layout.
// It checks bounds only and ignores any span starting at p.
func (l Layout) Contains(p Position) bool {
	return p.Column >= 0 && p.Column < l.Columns &&
		p.Row >= 0 && p.Row < l.Rows
}

// Clamp returns a copy of the position with negative axes forced to zero.
func (p Position) Clamp() Position {
	if p.Column < 0 {
		p.Column = 0
	}
	if p.Row < 0 {
		p.Row = 0
	}
	return p
}

// Clamp returns a copy of the size with both spans forced into [MinSpan, MaxSpan].
func (s Size) Clamp() Size {
	return Size{
		Width:  clampInt(s.Width, MinSpan, MaxSpan),
		Height: clampInt(s.Height, MinSpan, MaxSpan),
	}
}
