package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// frame holds the plot geometry shared by every chart kind.
type frame struct {
	width, height int
	padding       float64
	plotW, plotH  float64
	minVal        float64
	maxVal        float64
	ticks         int
	axisColor     string
	gridColor     string
}

func newFrame(width, height int, padding float64, ticks int, axisColor, gridColor string, series []Series) (frame, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if padding <= 0 {
		padding = DefaultPadding
	}
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	f := frame{
		width:     width,
		height:    height,
		padding:   padding,
		plotW:     float64(width) - 2*padding,
		plotH:     float64(height) - 2*padding,
		ticks:     ticks,
		axisColor: fallback(axisColor, "#475569"),
		gridColor: fallback(gridColor, "#e2e8f0"),
	}
	if f.plotW <= 0 || f.plotH <= 0 {
		return frame{}, fmt.Errorf("svg: viewport too small")
	}
	// The y axis always includes zero.
	for _, s := range series {
		for _, v := range s.Values {
			f.minVal = math.Min(f.minVal, v)
			f.maxVal = math.Max(f.maxVal, v)
		}
	}
	if almostEqual(f.maxVal, f.minVal) {
		f.maxVal = f.minVal + 1
	}
	return f, nil
}

func (f frame) y(value float64) float64 {
	return f.padding + f.plotH - (value-f.minVal)*f.plotH/(f.maxVal-f.minVal)
}

func (f frame) bottom() float64 { return f.padding + f.plotH }

func (f frame) open(b *strings.Builder, title, desc, kind string) {
	titleID := makeID(title, kind+"-title")
	descID := makeID(title, kind+"-desc")
	fmt.Fprintf(b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\" role=\"img\" aria-labelledby=\"%s %s\">", f.width, f.height, titleID, descID)
	fmt.Fprintf(b, "<title id=\"%s\">%s</title>", titleID, template.HTMLEscapeString(title))
	fmt.Fprintf(b, "<desc id=\"%s\">%s</desc>", descID, template.HTMLEscapeString(desc))
}

func (f frame) grid(b *strings.Builder) {
	for i := 0; i <= f.ticks; i++ {
		ratio := float64(i) / float64(f.ticks)
		value := f.minVal + (f.maxVal-f.minVal)*ratio
		y := f.y(value)
		fmt.Fprintf(b, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"0.5\" stroke-dasharray=\"2,4\" aria-hidden=\"true\"></line>", f.padding, y, f.padding+f.plotW, y, f.gridColor)
		fmt.Fprintf(b, "<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"end\">%s</text>", f.padding-6, y+4, f.axisColor, template.HTMLEscapeString(formatTick(value)))
	}
	fmt.Fprintf(b, "<g stroke=\"%s\">", f.axisColor)
	fmt.Fprintf(b, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke-width=\"1\"></line>", f.padding, f.padding, f.padding, f.bottom())
	zeroY := f.y(0)
	fmt.Fprintf(b, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke-width=\"1\"></line>", f.padding, zeroY, f.padding+f.plotW, zeroY)
	b.WriteString("</g>")
}

func (f frame) yTitle(b *strings.Builder, title string) {
	if strings.TrimSpace(title) == "" {
		return
	}
	cy := f.padding + f.plotH/2
	fmt.Fprintf(b, "<text x=\"12\" y=\"%.2f\" fill=\"%s\" font-size=\"11\" text-anchor=\"middle\" transform=\"rotate(-90 12 %.2f)\">%s</text>", cy, f.axisColor, cy, template.HTMLEscapeString(title))
}

func (f frame) xLabel(b *strings.Builder, x float64, label string) {
	fmt.Fprintf(b, "<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"middle\">%s</text>", x, f.bottom()+14, f.axisColor, template.HTMLEscapeString(label))
}

func (f frame) legend(b *strings.Builder, series []Series) {
	y := math.Max(f.padding-14, 12)
	x := f.padding
	for i, s := range series {
		color := seriesColor(s, i)
		fmt.Fprintf(b, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"5\" fill=\"%s\"></circle>", x+5, y-4, color)
		fmt.Fprintf(b, "<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"12\" font-weight=\"bold\" text-anchor=\"start\">%s</text>", x+14, y, f.axisColor, template.HTMLEscapeString(s.Label))
		x += 24 + 7*float64(len(s.Label)) + 15
	}
}

func validateSeries(labels []string, series []Series) error {
	if len(series) == 0 {
		return fmt.Errorf("svg: at least one series required")
	}
	for _, s := range series {
		if len(s.Values) != len(labels) {
			return fmt.Errorf("svg: series %q length %d does not match %d labels", s.Label, len(s.Values), len(labels))
		}
	}
	return nil
}

func seriesColor(s Series, i int) string {
	return fallback(s.Color, palette[i%len(palette)])
}

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func makeID(base, suffix string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, strings.ToLower(strings.TrimSpace(base)))
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "chart"
	}
	return cleaned + "-" + suffix
}

func formatTick(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	case almostEqual(v, math.Round(v)):
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}
