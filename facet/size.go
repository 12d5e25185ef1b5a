package facet

import (
	"github.com/relias08/ggplot2/gtable"
)

// Sizes computes the relative track units of the panel grid. With fixed
// space every row and column gets an equal share; with free space a
// track's share is proportional to the data span of its scale group, so
// one data unit measures the same length in every panel.
//
// When space and scales are both fixed and the coordinate system
// declares a preferred aspect ratio, the row units are scaled by it and
// respect is true, telling the consumer to lock proportions.
func (g *Grid) Sizes(l *Layout, r Ranges, coord Coord) (widths, heights []gtable.Unit, respect bool) {
	widths = make([]gtable.Unit, l.NCols)
	heights = make([]gtable.Unit, l.NRows)

	for c := 0; c < l.NCols; c++ {
		share := 1.0
		if g.Space == SpaceFree {
			group := 1
			if g.Scales.FreeX() {
				group = c + 1
			}
			share = r.X[group].clampedSpan()
		}
		widths[c] = gtable.NullUnit(share)
	}
	for row := 0; row < l.NRows; row++ {
		share := 1.0
		if g.Space == SpaceFree {
			group := 1
			if g.Scales.FreeY() {
				group = row + 1
			}
			share = r.Y[group].clampedSpan()
		}
		heights[row] = gtable.NullUnit(share)
	}

	if g.Space == SpaceFixed && g.Scales == ScalesFixed && coord != nil {
		pr := PanelRange{X: r.XRange(1), Y: r.YRange(1)}
		if ratio, ok := coord.AspectRatio(pr); ok && ratio > 0 {
			for i := range heights {
				heights[i].Value *= ratio
			}
			respect = true
		}
	}

	return widths, heights, respect
}
