package chart

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ziadkadry99/salaryboard/internal/dataset"
)

// Options controls the fixed parts of the chart.
type Options struct {
	// XMin and XMax fix the x domain regardless of the data.
	XMin, XMax int
	// Width and Height are in points.
	Width, Height float64
	StrokeColor   color.Color
	StrokeWidth   float64
}

// DefaultOptions matches the layout the dashboard has always used: an
// 800x400 canvas over 2020-2024 with a thin steelblue line.
func DefaultOptions() Options {
	return Options{
		XMin:        2020,
		XMax:        2024,
		Width:       800,
		Height:      400,
		StrokeColor: color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff},
		StrokeWidth: 1.5,
	}
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.XMin == 0 && o.XMax == 0 {
		o.XMin, o.XMax = d.XMin, d.XMax
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.StrokeColor == nil {
		o.StrokeColor = d.StrokeColor
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = d.StrokeWidth
	}
	return o
}

// Tick is one labelled x-axis tick.
type Tick struct {
	Value int
	Label string
}

// Chart is a line chart of total jobs per year, computed once from a
// Dataset.
type Chart struct {
	Points  []AggregatedPoint
	XDomain [2]int
	YDomain [2]int
	Ticks   []Tick

	opts Options
}

// Build aggregates ds and lays out the axes. The x domain comes from opts;
// the y domain runs from zero to the largest yearly total.
func Build(ds dataset.Dataset, opts Options) *Chart {
	opts = opts.withDefaults()
	points := Aggregate(ds)

	maxTotal := 0
	ticks := make([]Tick, 0, len(points))
	for _, p := range points {
		if p.TotalJobs > maxTotal {
			maxTotal = p.TotalJobs
		}
		ticks = append(ticks, Tick{Value: p.Year, Label: strconv.Itoa(p.Year)})
	}

	return &Chart{
		Points:  points,
		XDomain: [2]int{opts.XMin, opts.XMax},
		YDomain: [2]int{0, maxTotal},
		Ticks:   ticks,
		opts:    opts,
	}
}

// WriteSVG draws the chart as a standalone SVG document.
func (c *Chart) WriteSVG(w io.Writer) error {
	p := plot.New()
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Total Jobs"

	if len(c.Points) > 0 {
		xys := make(plotter.XYs, len(c.Points))
		for i, pt := range c.Points {
			xys[i].X = float64(pt.Year)
			xys[i].Y = float64(pt.TotalJobs)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("building line: %w", err)
		}
		line.LineStyle.Color = c.opts.StrokeColor
		line.LineStyle.Width = vg.Points(c.opts.StrokeWidth)
		p.Add(line)
	}

	// Domains are set after Add, which would otherwise widen them to the data.
	p.X.Min = float64(c.XDomain[0])
	p.X.Max = float64(c.XDomain[1])
	p.Y.Min = float64(c.YDomain[0])
	p.Y.Max = float64(c.YDomain[1])
	if p.Y.Max <= p.Y.Min {
		p.Y.Max = p.Y.Min + 1
	}

	ticks := make([]plot.Tick, len(c.Ticks))
	for i, t := range c.Ticks {
		ticks[i] = plot.Tick{Value: float64(t.Value), Label: t.Label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	wt, err := p.WriterTo(vg.Points(c.opts.Width), vg.Points(c.opts.Height), "svg")
	if err != nil {
		return fmt.Errorf("creating svg writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

// ParseHexColor parses a "#rrggbb" colour.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
