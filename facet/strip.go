package facet

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/relias08/ggplot2/gtable"
)

// Side selects which grid dimension a strip set labels.
type Side int

const (
	// SideTop labels the panel columns, one strip band per column
	// variable, stacked above the panels.
	SideTop Side = iota
	// SideRight labels the panel rows, one strip band per row
	// variable, stacked right of the panels.
	SideRight
)

// StripSet holds the label strips of one side. Band b, cell i is the
// label of the b-th faceting variable at grid index i+1. With no
// faceting variables on the side the set is empty and occupies no
// space, keeping the composite dimensionally consistent.
type StripSet struct {
	Side Side

	// Cells[b][i] is the drawable of band b at grid index i.
	Cells [][]gtable.Drawable

	// Thickness[b] is the perpendicular extent of band b, driven by
	// the measured content of its cells.
	Thickness []vg.Length
}

// Bands returns the number of stacked label bands, one per variable.
func (s StripSet) Bands() int { return len(s.Cells) }

// BuildStrips builds the strip set of one side of the layout. Labels
// come from lab; sizing from the measured label text plus the style's
// strip padding.
func BuildStrips(l *Layout, side Side, lab Labeller, sty Style) StripSet {
	vars := l.ColVars
	n := l.NCols
	background := sty.HStrip.Background
	text := sty.HStrip.TextStyle
	pad := sty.HStrip.Pad
	if side == SideRight {
		vars = l.RowVars
		n = l.NRows
		background = sty.VStrip.Background
		text = sty.VStrip.TextStyle
		pad = sty.VStrip.Pad
	}

	s := StripSet{Side: side}
	if len(vars) == 0 {
		return s
	}

	// One value tuple per grid index, taken from any panel at that
	// position. Margin positions carry the MarginLevel sentinel.
	tuples := make([][]string, n)
	for _, p := range l.panels {
		if side == SideTop {
			tuples[p.Col-1] = p.ColValues
		} else {
			tuples[p.Row-1] = p.RowValues
		}
	}

	s.Cells = make([][]gtable.Drawable, len(vars))
	s.Thickness = make([]vg.Length, len(vars))
	for b, v := range vars {
		cells := make([]gtable.Drawable, n)
		var thickness vg.Length
		for i, tuple := range tuples {
			cell := stripCell{
				label:      lab(v, tuple[b]),
				side:       side,
				background: background,
				text:       text,
				pad:        pad,
			}
			cells[i] = cell
			if t := cell.thickness(); t > thickness {
				thickness = t
			}
		}
		s.Cells[b] = cells
		s.Thickness[b] = thickness
	}
	return s
}

// stripCell is one labeled strip rectangle. Its extent along the grid
// is a null unit of the composite; only the perpendicular thickness is
// intrinsic.
type stripCell struct {
	label      string
	side       Side
	background color.Color
	text       draw.TextStyle
	pad        vg.Length
}

// thickness is the measured label extent perpendicular to the strip.
// Both sides use the text height: the right-side strips are rotated.
func (s stripCell) thickness() vg.Length {
	return s.text.Height(s.label) + 2*s.pad
}

func (s stripCell) Size() vg.Point {
	if s.side == SideTop {
		return vg.Point{Y: s.thickness()}
	}
	return vg.Point{X: s.thickness()}
}

func (s stripCell) Draw(c draw.Canvas) {
	if s.background != nil {
		c.SetColor(s.background)
		c.Fill(c.Rectangle.Path())
	}
	c.FillText(s.text, c.Center(), s.label)
}
