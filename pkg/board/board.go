// Package board defines the dashboard document model: the grid layout, the
// widgets placed on it, and the document metadata. It owns the geometry
// checks (placement bounds, pairwise overlap) and the widget maintenance
// operations the rendering side drives.
//
// # Ownership
//
// Every operation in this package treats its inputs as read-only and returns
// fresh values. Nested records (Position, Size, Content, Config, Extra) are
// deep-copied, so no two documents, and no two widgets, ever alias the same
// record.
package board

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/gridboard/pkg/grid"
)

// CurrentVersion is the document schema version written by the factory.
const CurrentVersion = "1.0"

// Widget types the engine understands. The type is opaque to placement;
// only the rendering collaborator interprets it.
const (
	TypeText   = "text"
	TypeMetric = "metric"
	TypeChart  = "chart"
	TypeImage  = "image"
	TypeTable  = "table"
)

// Default metadata values used by the factory and the lenient normalizers.
const (
	DefaultTheme = "light"
	DefaultTitle = "Untitled Dashboard"
)

// Widget is a rectangular element placed on the grid. Content and Config are
// free-form payloads interpreted only by the rendering collaborator; the
// engine carries them opaquely.
type Widget struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Position grid.Position  `json:"position"`
	Size     grid.Size      `json:"size"`
	Content  map[string]any `json:"content,omitempty"`
	Config   map[string]any `json:"config,omitempty"`
}

// Metadata carries document-level bookkeeping. CreatedAt and LastModified
// are ISO-8601 timestamps stored as strings; Extra round-trips any unknown
// keys found in the wire format.
type Metadata struct {
	CreatedAt    string
	LastModified string
	Theme        string
	Title        string
	Description  string
	Extra        map[string]any
}

// Dashboard is the document of record: a schema version, the grid layout,
// the ordered widget list (order is display/z-order only), and metadata.
type Dashboard struct {
	Version  string      `json:"version"`
	Layout   grid.Layout `json:"layout"`
	Widgets  []Widget    `json:"widgets"`
	Metadata Metadata    `json:"metadata"`
}

// Clone returns a deep copy of the widget. The copy shares no nested
// records with the original.
func (w Widget) Clone() Widget {
	return Widget{
		ID:       w.ID,
		Type:     w.Type,
		Position: w.Position,
		Size:     w.Size,
		Content:  cloneMap(w.Content),
		Config:   cloneMap(w.Config),
	}
}

// Clone returns a deep copy of the metadata.
func (m Metadata) Clone() Metadata {
	c := m
	c.Extra = cloneMap(m.Extra)
	return c
}

// Clone returns a deep copy of the dashboard. Mutating the copy never
// changes the original, including its nested position/size records and
// opaque content maps.
func (d *Dashboard) Clone() *Dashboard {
	c := &Dashboard{
		Version:  d.Version,
		Layout:   d.Layout,
		Metadata: d.Metadata.Clone(),
	}
	if d.Widgets != nil {
		c.Widgets = make([]Widget, len(d.Widgets))
		for i, w := range d.Widgets {
			c.Widgets[i] = w.Clone()
		}
	}
	return c
}

// Find returns the index of the widget with the given id, or -1.
func (d *Dashboard) Find(id string) int {
	for i, w := range d.Widgets {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// cloneMap deep-copies a JSON-value map. Nested objects and arrays are
// copied recursively; scalars are shared (they are immutable).
func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		return cloneSlice(t)
	default:
		return v
	}
}

// Known metadata keys in the wire format. Anything else lands in Extra.
const (
	metaCreatedAt    = "createdAt"
	metaLastModified = "lastModified"
	metaTheme        = "theme"
	metaTitle        = "title"
	metaDescription  = "description"
)

// MarshalJSON flattens Extra alongside the named metadata fields. Named
// fields win when Extra carries a colliding key.
func (m Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+5)
	for k, v := range m.Extra {
		out[k] = v
	}
	out[metaCreatedAt] = m.CreatedAt
	out[metaLastModified] = m.LastModified
	out[metaTheme] = m.Theme
	out[metaTitle] = m.Title
	out[metaDescription] = m.Description
	return json.Marshal(out)
}

// UnmarshalJSON splits the named metadata fields from unknown keys, which
// are preserved in Extra for round-trip fidelity.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	take := func(key string, dst *string) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		delete(raw, key)
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("metadata.%s: %w", key, err)
		}
		return nil
	}

	for key, dst := range map[string]*string{
		metaCreatedAt:    &m.CreatedAt,
		metaLastModified: &m.LastModified,
		metaTheme:        &m.Theme,
		metaTitle:        &m.Title,
		metaDescription:  &m.Description,
	} {
		if err := take(key, dst); err != nil {
			return err
		}
	}

	if len(raw) > 0 {
		m.Extra = make(map[string]any, len(raw))
		for k, v := range raw {
			var val any
			if err := json.Unmarshal(v, &val); err != nil {
				return fmt.Errorf("metadata.%s: %w", k, err)
			}
			m.Extra[k] = val
		}
	}
	return nil
}
