// Package io is the JSON normalization layer: the only gate through which
// untrusted external documents become in-memory dashboards.
//
// # Two policies, one schema
//
// Two independent contracts operate over the same wire format:
//
//   - The strict path ([Normalizer.Unmarshal], [Normalizer.Decode]) rejects
//     malformed shape: invalid JSON is a PARSE_ERROR, a missing or
//     wrong-typed required field is a SCHEMA_ERROR carrying the field path.
//     Once shape passes, out-of-range numerics are clamped silently.
//     Malformed shape cannot be repaired meaningfully; out-of-range
//     magnitude can.
//
//   - The lenient per-fragment normalizers ([Normalizer.NormalizeLayout],
//     [Normalizer.NormalizeWidgets], [Normalizer.NormalizeMetadata],
//     [Normalizer.Normalize]) default every missing or invalid field and
//     fail only when the top-level JSON value has the wrong kind
//     (SHAPE_ERROR) or the input is not JSON at all (PARSE_ERROR).
//
// Documents from external producers must pass the strict path before being
// trusted as the document of record; [Normalizer.Check]
// wraps it (plus the full geometry validation) as a non-throwing result for
// pre-submission checks.
package io

import (
	"encoding/json"
	"math"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/grid"
)

// Normalizer converts external JSON into dashboards. The zero value is not
// usable; construct one with [NewNormalizer].
type Normalizer struct {
	clock  clockwork.Clock
	logger *log.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock injects the clock used to default missing timestamps.
func WithClock(clock clockwork.Clock) Option {
	return func(n *Normalizer) { n.clock = clock }
}

// WithLogger attaches a logger that traces repairs (defaulted fields,
// clamped values) at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(n *Normalizer) { n.logger = logger }
}

// NewNormalizer returns a Normalizer with the real clock and no logger
// unless overridden.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Normalizer) debugf(msg string, keyvals ...any) {
	if n.logger != nil {
		n.logger.Debug(msg, keyvals...)
	}
}

// parseJSON decodes data into a generic JSON value, mapping any decode
// failure to PARSE_ERROR.
func parseJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "invalid JSON")
	}
	return v, nil
}

// intField extracts a numeric field from a decoded JSON object, rounding to
// the nearest integer. Missing or non-numeric values yield def.
func intField(m map[string]any, key string, def int) int {
	f, ok := m[key].(float64)
	if !ok {
		return def
	}
	return int(math.Round(f))
}

// stringField extracts a string field. Missing or non-string values yield def.
func stringField(m map[string]any, key, def string) string {
	s, ok := m[key].(string)
	if !ok {
		return def
	}
	return s
}

// mapField extracts an object field, or nil when absent or not an object.
func mapField(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

// layoutFromMap builds a clamped layout from a decoded JSON object,
// defaulting every missing or invalid field.
func layoutFromMap(m map[string]any) grid.Layout {
	cell := mapField(m, "cellSize")
	l := grid.Layout{
		Columns: intField(m, "columns", grid.DefaultColumns),
		Rows:    intField(m, "rows", grid.DefaultRows),
		CellSize: grid.CellSize{
			Width:  intField(cell, "width", grid.DefaultCellWidth),
			Height: intField(cell, "height", grid.DefaultCellHeight),
		},
	}
	return l.Clamp()
}

// positionFromMap builds a clamped position, defaulting to the origin.
func positionFromMap(m map[string]any) grid.Position {
	p := grid.Position{
		Column: intField(m, "column", 0),
		Row:    intField(m, "row", 0),
	}
	return p.Clamp()
}

// sizeFromMap builds a clamped size, defaulting to a single cell.
func sizeFromMap(m map[string]any) grid.Size {
	s := grid.Size{
		Width:  intField(m, "width", grid.MinSpan),
		Height: intField(m, "height", grid.MinSpan),
	}
	return s.Clamp()
}
