package io

import (
	"fmt"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/grid"
)

// NormalizeLayout leniently parses a layout fragment. Every missing or
// invalid field is defaulted and every numeric is clamped; the call fails
// only when the input is not JSON (PARSE_ERROR) or the top-level value is
// not an object (SHAPE_ERROR).
func (n *Normalizer) NormalizeLayout(data []byte) (grid.Layout, error) {
	v, err := parseJSON(data)
	if err != nil {
		return grid.Layout{}, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return grid.Layout{}, errors.New(errors.ErrCodeShape,
			"layout must be a JSON object, got %s", jsonKind(v))
	}

	layout := layoutFromMap(m)
	n.debugf("normalized layout", "columns", layout.Columns, "rows", layout.Rows)
	return layout, nil
}

// NormalizeWidgets leniently parses a widget-list fragment. A missing id is
// synthesized as widget-<index>, a missing or unknown type defaults to
// text, and geometry defaults to a single cell at the origin. List entries
// that are not objects are replaced by a default widget. Fails only on
// invalid JSON or a top-level value that is not an array.
func (n *Normalizer) NormalizeWidgets(data []byte) ([]board.Widget, error) {
	v, err := parseJSON(data)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeShape,
			"widgets must be a JSON array, got %s", jsonKind(v))
	}

	widgets := make([]board.Widget, len(list))
	for i, wv := range list {
		widgets[i] = n.lenientWidget(wv, i)
	}
	return widgets, nil
}

func (n *Normalizer) lenientWidget(v any, index int) board.Widget {
	m, ok := v.(map[string]any)
	if !ok {
		n.debugf("replaced non-object widget entry", "index", index)
		m = map[string]any{}
	}

	id := stringField(m, "id", "")
	if id == "" {
		id = fmt.Sprintf("widget-%d", index)
		n.debugf("synthesized widget id", "id", id)
	}

	typ := stringField(m, "type", board.TypeText)
	if errors.ValidateWidgetType(typ) != nil {
		n.debugf("defaulted unknown widget type", "id", id, "type", typ)
		typ = board.TypeText
	}

	return board.Widget{
		ID:       id,
		Type:     typ,
		Position: positionFromMap(mapField(m, "position")),
		Size:     sizeFromMap(mapField(m, "size")),
		Content:  mapField(m, "content"),
		Config:   mapField(m, "config"),
	}
}

// NormalizeMetadata leniently parses a metadata fragment. Missing
// timestamps default to the normalizer clock's current time, theme and
// title to their placeholders; unknown keys are preserved in Extra. Fails
// only on invalid JSON or a top-level value that is not an object.
func (n *Normalizer) NormalizeMetadata(data []byte) (board.Metadata, error) {
	v, err := parseJSON(data)
	if err != nil {
		return board.Metadata{}, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return board.Metadata{}, errors.New(errors.ErrCodeShape,
			"metadata must be a JSON object, got %s", jsonKind(v))
	}
	return n.metadataFromMap(m), nil
}

// Normalize leniently parses a whole document, composing the fragment
// normalizers: the version defaults to 1.0 and absent or invalid sections
// take their fragment defaults. Fails only on invalid JSON or a top-level
// value that is not an object.
func (n *Normalizer) Normalize(data []byte) (*board.Dashboard, error) {
	v, err := parseJSON(data)
	if err != nil {
		return nil, err
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeShape,
			"document must be a JSON object, got %s", jsonKind(v))
	}

	widgetsRaw, _ := doc["widgets"].([]any)
	widgets := make([]board.Widget, len(widgetsRaw))
	for i, wv := range widgetsRaw {
		widgets[i] = n.lenientWidget(wv, i)
	}

	return &board.Dashboard{
		Version:  stringField(doc, "version", board.CurrentVersion),
		Layout:   layoutFromMap(mapField(doc, "layout")),
		Widgets:  widgets,
		Metadata: n.metadataFromMap(mapField(doc, "metadata")),
	}, nil
}
