package io

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/errors"
)

// Unmarshal runs the strict validate-and-normalize path over a JSON
// document. Invalid JSON fails with PARSE_ERROR; a top-level value that is
// not an object fails with SHAPE_ERROR; a missing or wrong-typed required
// field fails with SCHEMA_ERROR carrying the field path. Required fields:
// version (string), layout (object), widgets (array), metadata (object);
// per widget: id (string), type (string), position (object), size (object).
//
// Once shape passes, every numeric field is clamped into its declared range
// rather than rejected. Unmarshal does not run geometry validation; use
// [Normalizer.Check] for that.
func (n *Normalizer) Unmarshal(data []byte) (*board.Dashboard, error) {
	v, err := parseJSON(data)
	if err != nil {
		return nil, err
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeShape, "document must be a JSON object, got %s", jsonKind(v))
	}

	version, ok := doc["version"].(string)
	if !ok {
		return nil, schemaError(doc, "version", "string")
	}

	layoutRaw, ok := doc["layout"].(map[string]any)
	if !ok {
		return nil, schemaError(doc, "layout", "object")
	}

	widgetsRaw, ok := doc["widgets"].([]any)
	if !ok {
		return nil, schemaError(doc, "widgets", "array")
	}

	metaRaw, ok := doc["metadata"].(map[string]any)
	if !ok {
		return nil, schemaError(doc, "metadata", "object")
	}

	widgets := make([]board.Widget, len(widgetsRaw))
	for i, wv := range widgetsRaw {
		w, err := n.strictWidget(wv, i)
		if err != nil {
			return nil, err
		}
		widgets[i] = w
	}

	return &board.Dashboard{
		Version:  version,
		Layout:   layoutFromMap(layoutRaw),
		Widgets:  widgets,
		Metadata: n.metadataFromMap(metaRaw),
	}, nil
}

// strictWidget checks a widget's required fields and clamps its geometry.
// Unknown type strings pass through: the type is opaque to placement.
func (n *Normalizer) strictWidget(v any, index int) (board.Widget, error) {
	path := fmt.Sprintf("widgets[%d]", index)

	m, ok := v.(map[string]any)
	if !ok {
		return board.Widget{}, errors.NewField(errors.ErrCodeSchema, path,
			"widget must be an object, got %s", jsonKind(v))
	}

	id, ok := m["id"].(string)
	if !ok {
		return board.Widget{}, schemaErrorAt(m, path, "id", "string")
	}
	typ, ok := m["type"].(string)
	if !ok {
		return board.Widget{}, schemaErrorAt(m, path, "type", "string")
	}
	posRaw, ok := m["position"].(map[string]any)
	if !ok {
		return board.Widget{}, schemaErrorAt(m, path, "position", "object")
	}
	sizeRaw, ok := m["size"].(map[string]any)
	if !ok {
		return board.Widget{}, schemaErrorAt(m, path, "size", "object")
	}

	return board.Widget{
		ID:       id,
		Type:     typ,
		Position: positionFromMap(posRaw),
		Size:     sizeFromMap(sizeRaw),
		Content:  mapField(m, "content"),
		Config:   mapField(m, "config"),
	}, nil
}

// metadataFromMap defaults every missing metadata field; unknown keys are
// preserved in Extra. Shared by the strict path and the lenient fragment
// normalizer.
func (n *Normalizer) metadataFromMap(m map[string]any) board.Metadata {
	now := n.clock.Now().UTC().Format(time.RFC3339)

	meta := board.Metadata{
		CreatedAt:    stringField(m, "createdAt", now),
		LastModified: stringField(m, "lastModified", now),
		Theme:        stringField(m, "theme", board.DefaultTheme),
		Title:        stringField(m, "title", board.DefaultTitle),
		Description:  stringField(m, "description", ""),
	}

	known := map[string]bool{
		"createdAt": true, "lastModified": true,
		"theme": true, "title": true, "description": true,
	}
	for k, v := range m {
		if known[k] {
			continue
		}
		if meta.Extra == nil {
			meta.Extra = make(map[string]any)
		}
		meta.Extra[k] = v
	}

	return meta
}

// Decode reads all of r and runs [Normalizer.Unmarshal] on it.
func (n *Normalizer) Decode(r io.Reader) (*board.Dashboard, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read document")
	}
	return n.Unmarshal(data)
}

// Import reads the file at path and runs the strict path on its contents.
func (n *Normalizer) Import(path string) (*board.Dashboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return n.Unmarshal(data)
}

func schemaError(m map[string]any, field, want string) error {
	if _, present := m[field]; !present {
		return errors.NewField(errors.ErrCodeSchema, field, "missing required field")
	}
	return errors.NewField(errors.ErrCodeSchema, field, "must be a %s, got %s", want, jsonKind(m[field]))
}

func schemaErrorAt(m map[string]any, path, field, want string) error {
	full := path + "." + field
	if _, present := m[field]; !present {
		return errors.NewField(errors.ErrCodeSchema, full, "missing required field")
	}
	return errors.NewField(errors.ErrCodeSchema, full, "must be a %s, got %s", want, jsonKind(m[field]))
}

// jsonKind names the JSON kind of a decoded value for error messages.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
