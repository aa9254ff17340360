package io

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/grid"
)

var testTime = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func testNormalizer() *Normalizer {
	return NewNormalizer(WithClock(clockwork.NewFakeClockAt(testTime)))
}

const validDoc = `{
  "version": "1.0",
  "layout": {"columns": 4, "rows": 4, "cellSize": {"width": 200, "height": 150}},
  "widgets": [
    {"id": "a", "type": "text", "position": {"column": 0, "row": 0}, "size": {"width": 2, "height": 1}},
    {"id": "b", "type": "metric", "position": {"column": 2, "row": 0}, "size": {"width": 1, "height": 1}}
  ],
  "metadata": {"createdAt": "2026-01-01T00:00:00Z", "lastModified": "2026-01-01T00:00:00Z", "theme": "dark", "title": "Ops", "description": ""}
}`

func TestUnmarshalValid(t *testing.T) {
	d, err := testNormalizer().Unmarshal([]byte(validDoc))
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if d.Version != "1.0" {
		t.Errorf("Version = %q, want 1.0", d.Version)
	}
	if d.Layout.Columns != 4 || d.Layout.CellSize.Width != 200 {
		t.Errorf("Layout = %+v", d.Layout)
	}
	if len(d.Widgets) != 2 || d.Widgets[1].ID != "b" {
		t.Errorf("Widgets = %+v", d.Widgets)
	}
	if d.Metadata.Theme != "dark" || d.Metadata.Title != "Ops" {
		t.Errorf("Metadata = %+v", d.Metadata)
	}
}

func TestUnmarshalParseError(t *testing.T) {
	_, err := testNormalizer().Unmarshal([]byte(`{not json`))
	if !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("error = %v, want PARSE_ERROR", err)
	}
}

func TestUnmarshalShapeError(t *testing.T) {
	_, err := testNormalizer().Unmarshal([]byte(`[1, 2, 3]`))
	if !errors.Is(err, errors.ErrCodeShape) {
		t.Errorf("error = %v, want SHAPE_ERROR", err)
	}
}

func TestUnmarshalSchemaErrors(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantField string
	}{
		{
			name:      "missing version",
			doc:       `{"layout": {}, "widgets": [], "metadata": {}}`,
			wantField: "version",
		},
		{
			name:      "version wrong type",
			doc:       `{"version": 1, "layout": {}, "widgets": [], "metadata": {}}`,
			wantField: "version",
		},
		{
			name:      "layout not object",
			doc:       `{"version": "1.0", "layout": [], "widgets": [], "metadata": {}}`,
			wantField: "layout",
		},
		{
			name:      "widgets not array",
			doc:       `{"version": "1.0", "layout": {}, "widgets": {}, "metadata": {}}`,
			wantField: "widgets",
		},
		{
			name:      "missing metadata",
			doc:       `{"version": "1.0", "layout": {}, "widgets": []}`,
			wantField: "metadata",
		},
		{
			name:      "widget missing id",
			doc:       `{"version": "1.0", "layout": {}, "widgets": [{"type": "text", "position": {}, "size": {}}], "metadata": {}}`,
			wantField: "widgets[0].id",
		},
		{
			name:      "widget position wrong type",
			doc:       `{"version": "1.0", "layout": {}, "widgets": [{"id": "a", "type": "text", "position": 3, "size": {}}], "metadata": {}}`,
			wantField: "widgets[0].position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testNormalizer().Unmarshal([]byte(tt.doc))
			if !errors.Is(err, errors.ErrCodeSchema) {
				t.Fatalf("error = %v, want SCHEMA_ERROR", err)
			}
			if got := errors.GetField(err); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestUnmarshalClampsRanges(t *testing.T) {
	doc := `{
	  "version": "1.0",
	  "layout": {"columns": 99, "rows": 0, "cellSize": {"width": 10, "height": 9000}},
	  "widgets": [{"id": "a", "type": "text", "position": {"column": -2, "row": 3}, "size": {"width": 0, "height": 99}}],
	  "metadata": {}
	}`

	d, err := testNormalizer().Unmarshal([]byte(doc))
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	wantLayout := grid.Layout{Columns: 12, Rows: 1, CellSize: grid.CellSize{Width: 100, Height: 500}}
	if d.Layout != wantLayout {
		t.Errorf("Layout = %+v, want %+v", d.Layout, wantLayout)
	}
	if d.Widgets[0].Position != (grid.Position{Column: 0, Row: 3}) {
		t.Errorf("Position = %+v, want clamped {0 3}", d.Widgets[0].Position)
	}
	if d.Widgets[0].Size != (grid.Size{Width: 1, Height: 6}) {
		t.Errorf("Size = %+v, want clamped {1 6}", d.Widgets[0].Size)
	}
}

func TestUnmarshalAcceptsUnknownWidgetType(t *testing.T) {
	doc := `{"version": "1.0", "layout": {}, "widgets": [{"id": "a", "type": "sparkline", "position": {}, "size": {}}], "metadata": {}}`

	d, err := testNormalizer().Unmarshal([]byte(doc))
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if d.Widgets[0].Type != "sparkline" {
		t.Errorf("Type = %q, want sparkline passed through", d.Widgets[0].Type)
	}
}

func TestNormalizeLayout(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want grid.Layout
	}{
		{
			name: "clamps out of range",
			in:   `{"columns": 99, "rows": 0, "cellSize": {"width": 200, "height": 150}}`,
			want: grid.Layout{Columns: 12, Rows: 1, CellSize: grid.CellSize{Width: 200, Height: 150}},
		},
		{
			name: "defaults missing fields",
			in:   `{}`,
			want: grid.DefaultLayout(),
		},
		{
			name: "defaults wrong-typed fields",
			in:   `{"columns": "six", "rows": 3, "cellSize": "big"}`,
			want: grid.Layout{Columns: 4, Rows: 3, CellSize: grid.CellSize{Width: 200, Height: 150}},
		},
		{
			name: "rounds fractional numbers",
			in:   `{"columns": 5.6, "rows": 2.2, "cellSize": {"width": 199.5, "height": 150}}`,
			want: grid.Layout{Columns: 6, Rows: 2, CellSize: grid.CellSize{Width: 200, Height: 150}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := testNormalizer().NormalizeLayout([]byte(tt.in))
			if err != nil {
				t.Fatalf("NormalizeLayout() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NormalizeLayout() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeLayoutShapeError(t *testing.T) {
	_, err := testNormalizer().NormalizeLayout([]byte(`[1, 2]`))
	if !errors.Is(err, errors.ErrCodeShape) {
		t.Errorf("error = %v, want SHAPE_ERROR", err)
	}
}

func TestNormalizeWidgets(t *testing.T) {
	in := `[
	  {"type": "chart", "position": {"column": 1, "row": 1}, "size": {"width": 2, "height": 2}},
	  {"id": "named", "type": "teapot"},
	  42
	]`

	ws, err := testNormalizer().NormalizeWidgets([]byte(in))
	if err != nil {
		t.Fatalf("NormalizeWidgets() error: %v", err)
	}
	if len(ws) != 3 {
		t.Fatalf("len = %d, want 3", len(ws))
	}

	if ws[0].ID != "widget-0" || ws[0].Type != board.TypeChart {
		t.Errorf("ws[0] = %+v, want synthesized id and chart type", ws[0])
	}
	if ws[1].ID != "named" || ws[1].Type != board.TypeText {
		t.Errorf("ws[1] = %+v, want unknown type defaulted to text", ws[1])
	}
	if ws[1].Position != (grid.Position{}) || ws[1].Size != (grid.Size{Width: 1, Height: 1}) {
		t.Errorf("ws[1] geometry = %+v/%+v, want defaults", ws[1].Position, ws[1].Size)
	}
	if ws[2].ID != "widget-2" || ws[2].Type != board.TypeText {
		t.Errorf("ws[2] = %+v, want full default widget", ws[2])
	}
}

func TestNormalizeMetadataDefaults(t *testing.T) {
	m, err := testNormalizer().NormalizeMetadata([]byte(`{"custom": "kept"}`))
	if err != nil {
		t.Fatalf("NormalizeMetadata() error: %v", err)
	}

	want := "2026-03-15T10:30:00Z"
	if m.CreatedAt != want || m.LastModified != want {
		t.Errorf("timestamps = %q/%q, want clock time %q", m.CreatedAt, m.LastModified, want)
	}
	if m.Theme != board.DefaultTheme || m.Title != board.DefaultTitle {
		t.Errorf("Theme/Title = %q/%q, want placeholders", m.Theme, m.Title)
	}
	if m.Extra["custom"] != "kept" {
		t.Errorf("Extra = %v, want unknown key preserved", m.Extra)
	}
}

func TestNormalizeWholeDocument(t *testing.T) {
	d, err := testNormalizer().Normalize([]byte(`{"widgets": [{"id": "only"}]}`))
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	if d.Version != board.CurrentVersion {
		t.Errorf("Version = %q, want default", d.Version)
	}
	if d.Layout != grid.DefaultLayout() {
		t.Errorf("Layout = %+v, want default", d.Layout)
	}
	if len(d.Widgets) != 1 || d.Widgets[0].ID != "only" {
		t.Errorf("Widgets = %+v", d.Widgets)
	}
}

func TestRoundTrip(t *testing.T) {
	d := board.NewSample(board.WithClock(clockwork.NewFakeClockAt(testTime)))

	data, err := Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	back, err := testNormalizer().Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	// Sample content carries ints that decode as float64; compare through
	// a second encode instead of DeepEqual on the structs.
	again, err := Marshal(back)
	if err != nil {
		t.Fatalf("re-Marshal() error: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("round trip changed document:\n%s\nvs\n%s", data, again)
	}
}

func TestWriteDecodeRoundTrip(t *testing.T) {
	d := board.NewSample(board.WithClock(clockwork.NewFakeClockAt(testTime)))

	var buf bytes.Buffer
	if err := Write(d, &buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	back, err := testNormalizer().Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if back.Version != d.Version || !reflect.DeepEqual(back.Layout, d.Layout) {
		t.Errorf("decoded = %+v, want %+v", back, d)
	}
}

func TestMarshalCompactIsSingleLine(t *testing.T) {
	d := board.New(board.WithClock(clockwork.NewFakeClockAt(testTime)))

	data, err := MarshalCompact(d)
	if err != nil {
		t.Fatalf("MarshalCompact() error: %v", err)
	}
	if bytes.ContainsRune(data, '\n') {
		t.Error("compact output contains newlines")
	}
}

func TestMarshalEncodeError(t *testing.T) {
	d := board.New(board.WithClock(clockwork.NewFakeClockAt(testTime)))
	d.Widgets = append(d.Widgets, board.Widget{
		ID:      "bad",
		Type:    board.TypeMetric,
		Size:    grid.Size{Width: 1, Height: 1},
		Content: map[string]any{"value": math.Inf(1)},
	})

	_, err := Marshal(d)
	if !errors.Is(err, errors.ErrCodeEncode) {
		t.Errorf("error = %v, want ENCODE_ERROR", err)
	}
}

func TestCheck(t *testing.T) {
	n := testNormalizer()

	if res := n.Check([]byte(validDoc)); !res.Valid || len(res.Errors) != 0 {
		t.Errorf("Check(valid) = %+v, want valid", res)
	}

	if res := n.Check([]byte(`{broken`)); res.Valid || len(res.Errors) != 1 {
		t.Errorf("Check(broken) = %+v, want one error", res)
	}

	overlapping := `{
	  "version": "1.0",
	  "layout": {"columns": 4, "rows": 4, "cellSize": {"width": 200, "height": 150}},
	  "widgets": [
	    {"id": "a", "type": "text", "position": {"column": 0, "row": 0}, "size": {"width": 1, "height": 1}},
	    {"id": "b", "type": "text", "position": {"column": 0, "row": 0}, "size": {"width": 1, "height": 1}}
	  ],
	  "metadata": {}
	}`
	res := n.Check([]byte(overlapping))
	if res.Valid {
		t.Fatal("Check(overlapping) reported valid")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "overlap") {
		t.Errorf("Errors = %v, want overlap message", res.Errors)
	}
}

func TestNewBackup(t *testing.T) {
	n := testNormalizer()
	d := board.NewSample(board.WithClock(clockwork.NewFakeClockAt(testTime)))

	b := n.NewBackup(d)

	if b.Timestamp != "2026-03-15T10-30-00-000Z" {
		t.Errorf("Timestamp = %q, want filesystem-safe form", b.Timestamp)
	}
	if b.Filename != "dashboard-backup-2026-03-15T10-30-00-000Z.json" {
		t.Errorf("Filename = %q", b.Filename)
	}
	if strings.ContainsAny(b.Filename, ":.") && !strings.HasSuffix(b.Filename, ".json") {
		t.Errorf("Filename %q not filesystem-safe", b.Filename)
	}

	// Snapshot must not alias the live document.
	b.Data.Widgets[0].Position.Column = 3
	if d.Widgets[0].Position.Column != 0 {
		t.Error("backup shares widget records with the source")
	}
}
