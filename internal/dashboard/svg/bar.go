package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Bars renders a grouped bar chart, one bar per series for every label.
func Bars(width, height int, labels []string, series []Series, opts BarOpts) (template.HTML, error) {
	if err := validateSeries(labels, series); err != nil {
		return "", err
	}
	f, err := newFrame(width, height, opts.Padding, opts.TickCount, opts.AxisColor, opts.GridColor, series)
	if err != nil {
		return "", err
	}

	groupWidth := f.plotW / math.Max(float64(len(labels)), 1)
	// Bars take 80% of each group; the rest is the gap between groups.
	barWidth := groupWidth * 0.8 / float64(len(series))
	zeroY := f.y(0)

	var b strings.Builder
	f.open(&b, fallback(opts.Title, "Bar chart"), fallback(opts.Description, "Grouped bar comparison"), "bar")
	f.grid(&b)
	f.yTitle(&b, opts.YAxisTitle)

	for i, label := range labels {
		groupX := f.padding + float64(i)*groupWidth + groupWidth*0.1
		for si, s := range series {
			top := f.y(s.Values[i])
			y := math.Min(top, zeroY)
			h := math.Abs(zeroY - top)
			fill := fallback(s.Fill, seriesColor(s, si))
			fmt.Fprintf(&b, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" rx=\"4\" fill=\"%s\" stroke=\"%s\" stroke-width=\"1\" aria-label=\"%s %s\"></rect>",
				groupX+float64(si)*barWidth, y, barWidth, h, fill, seriesColor(s, si),
				template.HTMLEscapeString(s.Label), template.HTMLEscapeString(label))
		}
		f.xLabel(&b, f.padding+float64(i)*groupWidth+groupWidth/2, label)
	}
	f.legend(&b, series)

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
