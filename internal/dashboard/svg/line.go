package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Line renders a multi-series line chart with a filled area under each line.
func Line(width, height int, labels []string, series []Series, opts LineOpts) (template.HTML, error) {
	if err := validateSeries(labels, series); err != nil {
		return "", err
	}
	f, err := newFrame(width, height, opts.Padding, opts.TickCount, opts.AxisColor, opts.GridColor, series)
	if err != nil {
		return "", err
	}

	step := 0.0
	if len(labels) > 1 {
		step = f.plotW / float64(len(labels)-1)
	}
	xAt := func(i int) float64 {
		if len(labels) == 1 {
			return f.padding + f.plotW/2
		}
		return f.padding + float64(i)*step
	}

	var b strings.Builder
	f.open(&b, fallback(opts.Title, "Line chart"), fallback(opts.Description, "Trend data"), "line")
	f.grid(&b)
	f.yTitle(&b, opts.YAxisTitle)

	for si, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		color := seriesColor(s, si)
		var path strings.Builder
		for i, v := range s.Values {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			} else {
				path.WriteByte(' ')
			}
			fmt.Fprintf(&path, "%s%.2f %.2f", cmd, xAt(i), f.y(v))
		}
		if s.Fill != "" {
			base := f.y(0)
			fmt.Fprintf(&b, "<path d=\"%s L%.2f %.2f L%.2f %.2f Z\" fill=\"%s\" stroke=\"none\" aria-hidden=\"true\"></path>", path.String(), xAt(len(s.Values)-1), base, xAt(0), base, s.Fill)
		}
		fmt.Fprintf(&b, "<path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"2\" stroke-linejoin=\"round\" stroke-linecap=\"round\" aria-label=\"%s\"></path>", path.String(), color, template.HTMLEscapeString(s.Label))
		if opts.ShowDots {
			for i, v := range s.Values {
				fmt.Fprintf(&b, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"4\" fill=\"%s\" stroke=\"#fff\" stroke-width=\"2\"></circle>", xAt(i), f.y(v), color)
			}
		}
	}

	for i, label := range labels {
		f.xLabel(&b, xAt(i), label)
	}
	f.legend(&b, series)

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
