package render

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/pkg/metrics"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 720
	DefaultHeight = 420

	noDataNote = "No launches match the current selection"
)

// SVGRenderer draws dashboard figures with go-chart.
type SVGRenderer struct {
	width  int
	height int
}

func NewSVGRenderer(width, height int) *SVGRenderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &SVGRenderer{
		width:  width,
		height: height,
	}
}

// RenderPie draws one wedge per non-zero slice. go-chart refuses a pie
// without a positive value, so an empty or all-zero pie becomes a titled
// placeholder.
func (r *SVGRenderer) RenderPie(pie models.PieChart) ([]byte, error) {
	if pie.Total() <= 0 {
		return r.placeholder(pie.Title), nil
	}

	values := make([]chart.Value, 0, len(pie.Slices))
	for i, s := range pie.Slices {
		if s.Count <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: s.Label + " (" + strconv.Itoa(s.Count) + ")",
			Value: float64(s.Count),
			Style: chart.Style{FillColor: chart.GetDefaultColor(i)},
		})
	}

	pc := chart.PieChart{
		Title:  pie.Title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Values: values,
	}

	var buf bytes.Buffer
	if err := pc.Render(chart.SVG, &buf); err != nil {
		metrics.ChartRenderErrorsTotal.WithLabelValues(types.PieChart.String()).Inc()
		return nil, fmt.Errorf("pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderScatter draws payload mass against outcome with one coloured point
// series per booster version category.
func (r *SVGRenderer) RenderScatter(scatter models.ScatterChart) ([]byte, error) {
	if len(scatter.Points) == 0 {
		return r.placeholder(scatter.Title), nil
	}

	categories := scatter.Categories()
	series := make([]chart.Series, 0, len(categories))
	for i, category := range categories {
		var xs, ys []float64
		for _, p := range scatter.Points {
			if p.BoosterCategory != category {
				continue
			}
			xs = append(xs, p.PayloadMass)
			ys = append(ys, float64(p.Class))
		}
		series = append(series, chart.ContinuousSeries{
			Name:    category,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.GetDefaultColor(i)),
		})
	}

	xMin, xMax := xBounds(scatter)
	yMin, yMax := yBounds(scatter.Points)

	ch := chart.Chart{
		Title:  scatter.Title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 130, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  scatter.XLabel,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  scatter.YLabel,
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks: classTicks(yMin, yMax),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.LegendLeft(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		metrics.ChartRenderErrorsTotal.WithLabelValues(types.ScatterChart.String()).Inc()
		return nil, fmt.Errorf("scatter chart: %w", err)
	}
	return buf.Bytes(), nil
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// xBounds spans the selected payload range and every plotted point. go-chart
// needs a non-zero delta, so a single-value range is widened.
func xBounds(scatter models.ScatterChart) (float64, float64) {
	lo, hi := scatter.Range.Low, scatter.Range.High
	for _, p := range scatter.Points {
		lo = min(lo, p.PayloadMass)
		hi = max(hi, p.PayloadMass)
	}
	if hi <= lo {
		pad := max(1, lo*0.05)
		return lo - pad, hi + pad
	}
	return lo, hi
}

// yBounds always shows the 0 and 1 outcomes with some headroom.
func yBounds(points []models.ScatterPoint) (float64, float64) {
	lo, hi := 0, 1
	for _, p := range points {
		lo = min(lo, p.Class)
		hi = max(hi, p.Class)
	}
	return float64(lo) - 0.25, float64(hi) + 0.25
}

func classTicks(lo, hi float64) []chart.Tick {
	ticks := []chart.Tick{{Value: lo, Label: ""}}
	for v := int(lo + 0.25); v <= int(hi-0.25); v++ {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return append(ticks, chart.Tick{Value: hi, Label: ""})
}

// placeholder is an empty frame carrying the chart title.
func (r *SVGRenderer) placeholder(title string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="#ffffff" stroke="#d0d0d0"/>`)
	fmt.Fprintf(&buf, `<text x="50%%" y="28" text-anchor="middle" font-family="sans-serif" font-size="15">%s</text>`, html.EscapeString(title))
	fmt.Fprintf(&buf, `<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="13" fill="#808080">%s</text>`, noDataNote)
	buf.WriteString(`</svg>`)
	return buf.Bytes()
}
