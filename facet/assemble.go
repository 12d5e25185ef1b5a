package facet

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/relias08/ggplot2/gtable"
)

// A Layer holds one content drawable per panel, indexed by panel ID-1.
// Entries may be nil for panels the layer has nothing to draw in.
type Layer []gtable.Drawable

// Z order of the blocks stacked inside one panel cell.
const (
	zBackground = 0
	zContent    = 1 // first content layer; later layers stack above
	zForeground = 1 << 20
)

// RenderInput collects everything Render needs. Layout and Style are
// mandatory; a nil Coord falls back to Cartesian.
type RenderInput struct {
	Layout *Layout
	Ranges Ranges

	// Layers are the per-panel content drawables from the geometry
	// pipeline, one Layer per geometric layer, drawn in order.
	Layers []Layer

	Coord Coord
	Style Style

	// Title, if non-empty, adds a title band above everything.
	Title string
}

// Render assembles strips, axes and panels into a single table:
// top-strip bands, then panel rows interleaved with fixed gaps and
// flanked by the left axis column and the right strip bands, then the
// bottom axis row. All blocks share the same track vectors, so grid
// lines align exactly across axes, strips and panels.
//
// Render makes no geometry decisions of its own; sizing comes from
// Sizes, drawables from the collaborators. A layer indexing a panel
// absent from the layout is a programming error and panics.
func (g *Grid) Render(in RenderInput) (*gtable.Table, error) {
	l := in.Layout
	if l == nil {
		return nil, errors.New("facet: Render needs a trained layout")
	}
	for li, layer := range in.Layers {
		if len(layer) != l.NumPanels() {
			panic(fmt.Sprintf("facet: layer %d has %d entries, layout has %d panels",
				li, len(layer), l.NumPanels()))
		}
	}
	coord := in.Coord
	if coord == nil {
		coord = Cartesian{}
	}
	sty := in.Style
	lab := g.labeller()

	widths, heights, respect := g.Sizes(l, in.Ranges, coord)
	topStrips := BuildStrips(l, SideTop, lab, sty)
	rightStrips := BuildStrips(l, SideRight, lab, sty)

	// Per-column x axes and per-row y axes, rendered up front so the
	// axis tracks can be sized to their content.
	xAxes := make([]gtable.Drawable, l.NCols)
	var axisHeight vg.Length
	for c := 0; c < l.NCols; c++ {
		group := 1
		if g.Scales.FreeX() {
			group = c + 1
		}
		xAxes[c] = coord.RenderXAxis(in.Ranges.XRange(group), sty)
		if h := gtable.Measure(xAxes[c]).Y; h > axisHeight {
			axisHeight = h
		}
	}
	yAxes := make([]gtable.Drawable, l.NRows)
	var axisWidth vg.Length
	for r := 0; r < l.NRows; r++ {
		group := 1
		if g.Scales.FreeY() {
			group = r + 1
		}
		yAxes[r] = coord.RenderYAxis(in.Ranges.YRange(group), sty)
		if w := gtable.Measure(yAxes[r]).X; w > axisWidth {
			axisWidth = w
		}
	}

	titleRows := 0
	if in.Title != "" {
		titleRows = 1
	}
	panelRowTracks := 2*l.NRows - 1
	panelColTracks := 2*l.NCols - 1
	rows := titleRows + topStrips.Bands() + panelRowTracks + 1
	cols := 1 + panelColTracks + rightStrips.Bands()

	t := gtable.New(rows, cols)
	t.Respect = respect

	rowOf := func(gridRow int) int { return titleRows + topStrips.Bands() + 2*(gridRow-1) }
	colOf := func(gridCol int) int { return 1 + 2*(gridCol-1) }
	axisRow := titleRows + topStrips.Bands() + panelRowTracks
	stripCol := 1 + panelColTracks

	// Track units.
	if titleRows == 1 {
		t.Heights[0] = gtable.Pt(sty.TitleHeight)
	}
	for b, th := range topStrips.Thickness {
		t.Heights[titleRows+b] = gtable.Pt(th)
	}
	for r := 1; r <= l.NRows; r++ {
		t.Heights[rowOf(r)] = heights[r-1]
		if r < l.NRows {
			t.Heights[rowOf(r)+1] = gtable.Pt(sty.Panel.PadY)
		}
	}
	t.Heights[axisRow] = gtable.Pt(axisHeight)

	t.Widths[0] = gtable.Pt(axisWidth)
	for c := 1; c <= l.NCols; c++ {
		t.Widths[colOf(c)] = widths[c-1]
		if c < l.NCols {
			t.Widths[colOf(c)+1] = gtable.Pt(sty.Panel.PadX)
		}
	}
	for b, th := range rightStrips.Thickness {
		t.Widths[stripCol+b] = gtable.Pt(th)
	}

	// Title band spanning the panel columns.
	if titleRows == 1 {
		t.AddSpan(0, 1, 1, panelColTracks, "title", 0,
			titleBlock{text: in.Title, sty: sty.Title})
	}

	// Panels: background, content layers in declared order, foreground.
	seen := make([]bool, l.NRows*l.NCols)
	for _, p := range l.panels {
		row, col := rowOf(p.Row), colOf(p.Col)
		pr := in.Ranges.PanelRange(p)
		name := fmt.Sprintf("panel-%d-%d", p.Row, p.Col)
		t.Add(row, col, name, zBackground, coord.RenderBackground(pr, sty))
		for li, layer := range in.Layers {
			t.Add(row, col, name, zContent+li, layer[p.ID-1])
		}
		t.Add(row, col, name, zForeground, coord.RenderForeground(pr, sty))
		seen[(p.Row-1)*l.NCols+p.Col-1] = true
	}
	for i, ok := range seen {
		if !ok {
			panic(fmt.Sprintf("facet: grid cell (%d,%d) has no panel",
				i/l.NCols+1, i%l.NCols+1))
		}
	}

	// Strips.
	for b, band := range topStrips.Cells {
		for c, cell := range band {
			t.Add(titleRows+b, colOf(c+1), fmt.Sprintf("strip-t-%d-%d", b+1, c+1), 0, cell)
		}
	}
	for b, band := range rightStrips.Cells {
		for r, cell := range band {
			t.Add(rowOf(r+1), stripCol+b, fmt.Sprintf("strip-r-%d-%d", b+1, r+1), 0, cell)
		}
	}

	// Axes.
	for c := 0; c < l.NCols; c++ {
		t.Add(axisRow, colOf(c+1), fmt.Sprintf("axis-b-%d", c+1), 0, xAxes[c])
	}
	for r := 0; r < l.NRows; r++ {
		t.Add(rowOf(r+1), 0, fmt.Sprintf("axis-l-%d", r+1), 0, yAxes[r])
	}

	logger.Debug("assembled facet table",
		"rows", rows, "cols", cols, "panels", l.NumPanels(), "respect", respect)

	return t, nil
}

// titleBlock draws the plot title at the top of its cell.
type titleBlock struct {
	text string
	sty  draw.TextStyle
}

func (b titleBlock) Draw(c draw.Canvas) {
	c.FillText(b.sty, vg.Point{X: c.Center().X, Y: c.Max.Y}, b.text)
}
