package dashboard

import (
	"fmt"
	"html/template"
	"sync"

	"github.com/odyssey-erp/energy-dashboard/internal/dashboard/svg"
)

// ChartKind distinguishes the chart renderers.
type ChartKind string

// Chart kinds.
const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
)

// Chart is a drawable chart instance bound to one canvas.
type Chart struct {
	Canvas RegionID
	Kind   ChartKind
	Labels []string
	Series []svg.Series

	mu       sync.Mutex
	markup   template.HTML
	disposed bool
}

// Markup returns the rendered chart, or nothing once disposed.
func (c *Chart) Markup() template.HTML {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ""
	}
	return c.markup
}

// Dispose releases the rendered chart. It is safe to call more than once.
func (c *Chart) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	c.markup = ""
}

// Disposed reports whether Dispose has run.
func (c *Chart) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// ChartRegistry owns the live chart instance of every canvas.
type ChartRegistry struct {
	mu     sync.Mutex
	charts map[RegionID]*Chart
	onLive func(canvas RegionID, live int)
}

// NewChartRegistry returns an empty registry. onLive, when set, observes the
// live instance count of a canvas after every change.
func NewChartRegistry(onLive func(canvas RegionID, live int)) *ChartRegistry {
	return &ChartRegistry{charts: make(map[RegionID]*Chart), onLive: onLive}
}

// Replace disposes the canvas's live chart before building its successor.
// When build fails the canvas is left without a chart.
func (r *ChartRegistry) Replace(canvas RegionID, build func() (*Chart, error)) (*Chart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.charts[canvas]; ok {
		prev.Dispose()
		delete(r.charts, canvas)
	}
	chart, err := build()
	if err != nil {
		r.notify(canvas)
		return nil, fmt.Errorf("build chart %s: %w", canvas, err)
	}
	chart.Canvas = canvas
	r.charts[canvas] = chart
	r.notify(canvas)
	return chart, nil
}

// Get returns the live chart of a canvas.
func (r *ChartRegistry) Get(canvas RegionID) (*Chart, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chart, ok := r.charts[canvas]
	return chart, ok
}

// Dispose removes and disposes the canvas's chart, if any.
func (r *ChartRegistry) Dispose(canvas RegionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if chart, ok := r.charts[canvas]; ok {
		chart.Dispose()
		delete(r.charts, canvas)
	}
	r.notify(canvas)
}

// Live counts the attached chart instances across all canvases.
func (r *ChartRegistry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.charts)
}

func (r *ChartRegistry) notify(canvas RegionID) {
	if r.onLive == nil {
		return
	}
	live := 0
	if _, ok := r.charts[canvas]; ok {
		live = 1
	}
	r.onLive(canvas, live)
}

// Chart colours and fills.
const (
	colorAppliances = "#2563eb"
	colorLights     = "#f59e0b"
)

// BuildHourlyChart renders the 24-hour line chart.
func BuildHourlyChart(labels []string, appliances, lights []float64) (*Chart, error) {
	series := []svg.Series{
		{Label: "Appliances", Values: appliances, Color: colorAppliances, Fill: "rgba(37, 99, 235, 0.1)"},
		{Label: "Lights", Values: lights, Color: colorLights, Fill: "rgba(245, 158, 11, 0.1)"},
	}
	markup, err := svg.Line(svg.DefaultWidth, svg.DefaultHeight, labels, series, svg.LineOpts{
		Title:       "Hourly Average Consumption",
		Description: "Average appliance and lighting energy use per hour of day",
		YAxisTitle:  "Energy (Wh)",
		ShowDots:    true,
	})
	if err != nil {
		return nil, err
	}
	return &Chart{Kind: ChartLine, Labels: labels, Series: series, markup: markup}, nil
}

// BuildDailyChart renders the grouped daily bar chart.
func BuildDailyChart(labels []string, appliances, lights []float64) (*Chart, error) {
	series := []svg.Series{
		{Label: "Appliances", Values: appliances, Color: colorAppliances, Fill: "rgba(37, 99, 235, 0.8)"},
		{Label: "Lights", Values: lights, Color: colorLights, Fill: "rgba(245, 158, 11, 0.8)"},
	}
	markup, err := svg.Bars(svg.DefaultWidth, svg.DefaultHeight, labels, series, svg.BarOpts{
		Title:       "Daily Average Consumption",
		Description: "Average appliance and lighting energy use per day",
	})
	if err != nil {
		return nil, err
	}
	return &Chart{Kind: ChartBar, Labels: labels, Series: series, markup: markup}, nil
}
