// Package geom provides basic geometric objects to display data in a
// panel of a faceted plot.
//
// Each geom holds its data, the panel range mapping data coordinates to
// the panel canvas, and a default style. Geoms implement
// gtable.Drawable, so a per-panel geom is handed to the facet assembler
// as one entry of a content layer.
package geom

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/relias08/ggplot2/facet"
)

// Points draws one glyph per (x, y) point.
type Points struct {
	XY    plotter.XYer
	Range facet.PanelRange
	Style draw.GlyphStyle
}

func (p Points) Draw(c draw.Canvas) {
	sty := p.Style
	if sty.Shape == nil {
		sty.Shape = draw.CircleGlyph{}
	}
	for i := 0; i < p.XY.Len(); i++ {
		x, y := p.XY.XY(i)
		c.DrawGlyph(sty, p.Range.Map(x, y, c))
	}
}

// DataRange returns the range covered by the points.
func (p Points) DataRange() (xmin, xmax, ymin, ymax float64) {
	return plotter.XYRange(p.XY)
}

// Lines draws the points as one connected polyline.
type Lines struct {
	XY    plotter.XYer
	Range facet.PanelRange
	Style draw.LineStyle
}

func (l Lines) Draw(c draw.Canvas) {
	if l.XY.Len() < 2 {
		return
	}
	pts := make([]vg.Point, l.XY.Len())
	for i := range pts {
		x, y := l.XY.XY(i)
		pts[i] = l.Range.Map(x, y, c)
	}
	c.StrokeLines(l.Style, pts)
}

// DataRange returns the range covered by the line's points.
func (l Lines) DataRange() (xmin, xmax, ymin, ymax float64) {
	return plotter.XYRange(l.XY)
}
