// Package svg renders the dashboard charts as inline SVG markup.
package svg

// Series is one named data series drawn on a chart.
type Series struct {
	Label  string
	Values []float64
	Color  string
	Fill   string
}

// LineOpts customises the line chart renderer.
type LineOpts struct {
	Title       string
	Description string
	YAxisTitle  string
	AxisColor   string
	GridColor   string
	Padding     float64
	TickCount   int
	ShowDots    bool
}

// BarOpts customises the grouped bar chart renderer.
type BarOpts struct {
	Title       string
	Description string
	YAxisTitle  string
	AxisColor   string
	GridColor   string
	Padding     float64
	TickCount   int
}

// Defaults for the dashboard charts.
const (
	DefaultWidth   = 720
	DefaultHeight  = 280
	DefaultPadding = 40.0
	DefaultTicks   = 5
)

var palette = []string{"#2563eb", "#f59e0b", "#10b981", "#ef4444"}
