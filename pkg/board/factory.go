package board

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/matzehuels/gridboard/pkg/grid"
)

// Option configures the factory and the widget maintenance operations.
type Option func(*options)

type options struct {
	layout  grid.Layout
	title   string
	theme   string
	widgets []Widget
	clock   clockwork.Clock
}

func newOptions(opts []Option) options {
	o := options{
		layout: grid.DefaultLayout(),
		title:  DefaultTitle,
		theme:  DefaultTheme,
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLayout sets the grid layout. Out-of-range fields are clamped.
func WithLayout(l grid.Layout) Option {
	return func(o *options) { o.layout = l.Clamp() }
}

// WithTitle sets the dashboard title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithTheme sets the dashboard theme.
func WithTheme(theme string) Option {
	return func(o *options) { o.theme = theme }
}

// WithWidgets seeds the widget list. Widgets are deep-copied.
func WithWidgets(widgets []Widget) Option {
	return func(o *options) {
		o.widgets = make([]Widget, len(widgets))
		for i, w := range widgets {
			o.widgets[i] = w.Clone()
		}
	}
}

// WithClock injects the clock used for timestamp stamping. Defaults to the
// real clock; tests pass a fake.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// New produces a well-formed empty dashboard: version 1.0, a 4x4 layout
// with 200x150 cells unless overridden, and metadata stamped with the
// clock's current time for both timestamps.
func New(opts ...Option) *Dashboard {
	o := newOptions(opts)
	now := o.clock.Now().UTC().Format(time.RFC3339)

	widgets := o.widgets
	if widgets == nil {
		widgets = []Widget{}
	}

	return &Dashboard{
		Version: CurrentVersion,
		Layout:  o.layout,
		Widgets: widgets,
		Metadata: Metadata{
			CreatedAt:    now,
			LastModified: now,
			Theme:        o.theme,
			Title:        o.title,
		},
	}
}

// NewSample produces the sample dashboard: four widgets laid out without
// overlap on the default 4x4 grid. It satisfies every placement invariant
// and doubles as a golden fixture for tests.
func NewSample(opts ...Option) *Dashboard {
	sample := []Widget{
		{
			ID:       "sample-banner",
			Type:     TypeText,
			Position: grid.Position{Column: 0, Row: 0},
			Size:     grid.Size{Width: 4, Height: 1},
			Content:  map[string]any{"text": "Welcome to your dashboard"},
		},
		{
			ID:       "sample-metric",
			Type:     TypeMetric,
			Position: grid.Position{Column: 0, Row: 1},
			Size:     grid.Size{Width: 1, Height: 1},
			Content:  map[string]any{"label": "Active users", "value": 128},
		},
		{
			ID:       "sample-chart",
			Type:     TypeChart,
			Position: grid.Position{Column: 1, Row: 1},
			Size:     grid.Size{Width: 2, Height: 2},
			Content:  map[string]any{"chartType": "line", "series": []any{}},
		},
		{
			ID:       "sample-table",
			Type:     TypeTable,
			Position: grid.Position{Column: 3, Row: 1},
			Size:     grid.Size{Width: 1, Height: 3},
			Content:  map[string]any{"columns": []any{"Name", "Value"}},
		},
	}

	return New(append([]Option{WithWidgets(sample)}, opts...)...)
}

// NewWidgetID generates an id for a caller-created widget that has none.
func NewWidgetID() string {
	return "widget-" + uuid.NewString()[:8]
}
