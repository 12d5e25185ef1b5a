package facet

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/relias08/ggplot2/gtable"
)

// Coord is the coordinate-system collaborator. It renders the parts of
// a panel the coordinate system owns: the edge axes, the panel
// background below the data and the panel foreground above it.
// Implementations must be pure; the same inputs yield the same
// drawables.
type Coord interface {
	// RenderXAxis renders a bottom-edge axis block for the x range.
	RenderXAxis(x Interval, sty Style) gtable.Drawable

	// RenderYAxis renders a left-edge axis block for the y range.
	RenderYAxis(y Interval, sty Style) gtable.Drawable

	// RenderBackground renders the block drawn below a panel's data.
	RenderBackground(pr PanelRange, sty Style) gtable.Drawable

	// RenderForeground renders the block drawn above a panel's data.
	RenderForeground(pr PanelRange, sty Style) gtable.Drawable

	// AspectRatio reports the height/width ratio the coordinate
	// system wants for a panel, if it has a preference.
	AspectRatio(pr PanelRange) (float64, bool)
}

// Cartesian is the default linear coordinate system.
type Cartesian struct {
	// Ticker generates axis ticks; nil means plot.DefaultTicks.
	Ticker plot.Ticker

	// FixedAspect, if positive, is the preferred height/width ratio
	// of every panel (1 for square panels).
	FixedAspect float64
}

func (c Cartesian) ticker() plot.Ticker {
	if c.Ticker != nil {
		return c.Ticker
	}
	return plot.DefaultTicks{}
}

func (c Cartesian) RenderXAxis(x Interval, sty Style) gtable.Drawable {
	a := xAxis{rng: x, ticks: c.ticker().Ticks(x.Min, x.Max), sty: sty}
	for _, t := range a.ticks {
		if t.IsMinor() {
			continue
		}
		if h := sty.XAxis.Tick.Label.Height(t.Label); h > a.labelSize {
			a.labelSize = h
		}
	}
	return a
}

func (c Cartesian) RenderYAxis(y Interval, sty Style) gtable.Drawable {
	a := yAxis{rng: y, ticks: c.ticker().Ticks(y.Min, y.Max), sty: sty}
	for _, t := range a.ticks {
		if t.IsMinor() {
			continue
		}
		if w := sty.YAxis.Tick.Label.Width(t.Label); w > a.labelSize {
			a.labelSize = w
		}
	}
	return a
}

func (c Cartesian) RenderBackground(pr PanelRange, sty Style) gtable.Drawable {
	return panelBackground{
		pr:     pr,
		sty:    sty,
		xticks: c.ticker().Ticks(pr.X.Min, pr.X.Max),
		yticks: c.ticker().Ticks(pr.Y.Min, pr.Y.Max),
	}
}

func (c Cartesian) RenderForeground(pr PanelRange, sty Style) gtable.Drawable {
	return panelBorder{sty: sty}
}

func (c Cartesian) AspectRatio(pr PanelRange) (float64, bool) {
	if c.FixedAspect > 0 {
		return c.FixedAspect, true
	}
	return 0, false
}

// frac maps x into [0, 1] over iv.
func frac(iv Interval, x float64) float64 {
	return (x - iv.Min) / iv.Span()
}

// xAxis draws bottom-edge tick marks and labels. The band stretches
// horizontally with its panel column; its height is intrinsic.
type xAxis struct {
	rng       Interval
	ticks     []plot.Tick
	sty       Style
	labelSize vg.Length
}

func (a xAxis) Size() vg.Point {
	return vg.Point{Y: a.sty.XAxis.Tick.Length + a.labelSize + a.sty.XAxis.Tick.Label.Font.Size/2}
}

func (a xAxis) Draw(c draw.Canvas) {
	top := c.Max.Y
	for _, t := range a.ticks {
		x := c.Min.X + vg.Length(frac(a.rng, t.Value))*(c.Max.X-c.Min.X)
		length := a.sty.XAxis.Tick.Length
		if t.IsMinor() {
			length /= 2
		}
		c.StrokeLine2(a.sty.XAxis.Tick.LineStyle, x, top, x, top-length)
		if t.IsMinor() {
			continue
		}
		c.FillText(a.sty.XAxis.Tick.Label, vg.Point{X: x, Y: top - length}, t.Label)
	}
}

// yAxis draws left-edge tick marks and labels, right-aligned against
// the panel. The band stretches vertically; its width is intrinsic.
type yAxis struct {
	rng       Interval
	ticks     []plot.Tick
	sty       Style
	labelSize vg.Length
}

func (a yAxis) Size() vg.Point {
	return vg.Point{X: a.sty.YAxis.Tick.Length + a.labelSize + a.sty.YAxis.Tick.Label.Font.Size/2}
}

func (a yAxis) Draw(c draw.Canvas) {
	right := c.Max.X
	for _, t := range a.ticks {
		y := c.Min.Y + vg.Length(frac(a.rng, t.Value))*(c.Max.Y-c.Min.Y)
		length := a.sty.YAxis.Tick.Length
		if t.IsMinor() {
			length /= 2
		}
		c.StrokeLine2(a.sty.YAxis.Tick.LineStyle, right-length, y, right, y)
		if t.IsMinor() {
			continue
		}
		c.FillText(a.sty.YAxis.Tick.Label, vg.Point{X: right - length, Y: y}, t.Label)
	}
}

// panelBackground fills the panel and draws the grid lines at the tick
// positions of the panel's ranges.
type panelBackground struct {
	pr             PanelRange
	sty            Style
	xticks, yticks []plot.Tick
}

func (b panelBackground) Draw(c draw.Canvas) {
	if b.sty.Panel.Background != nil {
		c.SetColor(b.sty.Panel.Background)
		c.Fill(c.Rectangle.Path())
	}
	if b.sty.Grid.Major.Color == nil {
		return
	}
	for _, t := range b.xticks {
		x := c.Min.X + vg.Length(frac(b.pr.X, t.Value))*(c.Max.X-c.Min.X)
		sty := b.sty.Grid.Major
		if t.IsMinor() {
			sty = b.sty.Grid.Minor
		}
		c.StrokeLine2(sty, x, c.Min.Y, x, c.Max.Y)
	}
	for _, t := range b.yticks {
		y := c.Min.Y + vg.Length(frac(b.pr.Y, t.Value))*(c.Max.Y-c.Min.Y)
		sty := b.sty.Grid.Major
		if t.IsMinor() {
			sty = b.sty.Grid.Minor
		}
		c.StrokeLine2(sty, c.Min.X, y, c.Max.X, y)
	}
}

// panelBorder outlines the panel. It draws nothing unless the style
// sets a border.
type panelBorder struct {
	sty Style
}

func (b panelBorder) Draw(c draw.Canvas) {
	border := b.sty.Panel.Border
	if border.Color == nil || border.Width == 0 {
		return
	}
	c.StrokeLines(border, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Min.Y},
	})
}
