// Package gtable provides a rectangular table of drawable blocks with
// heterogeneous row and column sizing.
//
// A Table is the assembly unit for faceted plots: panels, axis bands and
// strip label bands all become cells of one table whose tracks are sized
// either absolutely (in points) or as shares of the leftover space.
// A Table is built once, then drawn; it is never mutated after drawing
// starts.
package gtable

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Drawable is anything that can be placed into a table cell.
type Drawable interface {
	Draw(c draw.Canvas)
}

// Sizer is implemented by drawables with an intrinsic size, e.g. strip
// labels or axis bands. Dimensions reported as 0 have no intrinsic size
// in that direction.
type Sizer interface {
	Size() vg.Point
}

// Measure returns the intrinsic size of d or the zero point if d does
// not declare one.
func Measure(d Drawable) vg.Point {
	if s, ok := d.(Sizer); ok {
		return s.Size()
	}
	return vg.Point{}
}

// UnitKind discriminates the two ways a table track can be sized.
type UnitKind int

const (
	// Abs is an absolute track length in points.
	Abs UnitKind = iota
	// Null is a relative share of the space left after all Abs tracks
	// are subtracted.
	Null
)

// A Unit is the size of a single table track.
type Unit struct {
	Kind  UnitKind
	Value float64
}

// Pt returns an absolute unit of length l.
func Pt(l vg.Length) Unit { return Unit{Kind: Abs, Value: float64(l)} }

// NullUnit returns a relative unit with the given share.
func NullUnit(share float64) Unit { return Unit{Kind: Null, Value: share} }

// A Cell places one drawable into a span of table tracks. Row 0 is the
// topmost row, column 0 the leftmost column. Cells with a higher Z are
// drawn later and overpaint cells with a lower Z at the same position.
type Cell struct {
	Row, Col         int
	RowSpan, ColSpan int
	Z                int
	Name             string
	D                Drawable
}

// Table is a grid of drawables with explicit per-track size units.
type Table struct {
	rows, cols int

	// Widths and Heights hold one unit per column and row track.
	// Unset tracks default to a zero absolute length.
	Widths  []Unit
	Heights []Unit

	// Respect locks the high/width proportion of relative tracks: one
	// null unit measures the same length horizontally and vertically.
	Respect bool

	cells []Cell
}

// New returns an empty rows x cols table with all tracks zero-sized.
func New(rows, cols int) *Table {
	return &Table{
		rows:    rows,
		cols:    cols,
		Widths:  make([]Unit, cols),
		Heights: make([]Unit, rows),
	}
}

func (t *Table) Rows() int { return t.rows }
func (t *Table) Cols() int { return t.cols }

// Add places d into the single cell (row, col). A nil d is ignored so
// callers can pass through absent content.
func (t *Table) Add(row, col int, name string, z int, d Drawable) {
	t.AddSpan(row, col, 1, 1, name, z, d)
}

// AddSpan places d into the cell spanning rowSpan x colSpan tracks
// starting at (row, col). Placements outside the table are programming
// errors and panic.
func (t *Table) AddSpan(row, col, rowSpan, colSpan int, name string, z int, d Drawable) {
	if d == nil {
		return
	}
	if row < 0 || col < 0 || rowSpan < 1 || colSpan < 1 ||
		row+rowSpan > t.rows || col+colSpan > t.cols {
		panic(fmt.Sprintf("gtable: cell %q [%d+%d, %d+%d] outside %dx%d table",
			name, row, rowSpan, col, colSpan, t.rows, t.cols))
	}
	t.cells = append(t.cells, Cell{
		Row: row, Col: col,
		RowSpan: rowSpan, ColSpan: colSpan,
		Z: z, Name: name, D: d,
	})
}

// Cells returns the cell placements in insertion order.
func (t *Table) Cells() []Cell { return t.cells }

// Find returns all cells whose name equals name.
func (t *Table) Find(name string) []Cell {
	var cs []Cell
	for _, c := range t.cells {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// nullShare returns the length of one null-unit share after subtracting
// all absolute tracks from total. It is 0 if there are no null tracks.
func nullShare(units []Unit, total vg.Length) float64 {
	var abs, shares float64
	vals := make([]float64, 0, len(units))
	for _, u := range units {
		if u.Kind == Abs {
			vals = append(vals, u.Value)
		} else {
			shares += u.Value
		}
	}
	abs = floats.Sum(vals)
	avail := float64(total) - abs
	if avail < 0 {
		avail = 0
	}
	if shares <= 0 {
		return 0
	}
	return avail / shares
}

// trackLengths resolves units into absolute track lengths using the
// given length of one null-unit share.
func trackLengths(units []Unit, share float64) []vg.Length {
	ls := make([]vg.Length, len(units))
	for i, u := range units {
		if u.Kind == Abs {
			ls[i] = vg.Length(u.Value)
		} else {
			ls[i] = vg.Length(u.Value * share)
		}
	}
	return ls
}

// Draw renders the table into c. Tracks are resolved against the canvas
// size, then every cell is drawn in ascending Z order into a sub-canvas
// covering its span. The table itself is not modified.
func (t *Table) Draw(c draw.Canvas) {
	wShare := nullShare(t.Widths, c.Max.X-c.Min.X)
	hShare := nullShare(t.Heights, c.Max.Y-c.Min.Y)
	if t.Respect {
		if wShare < hShare {
			hShare = wShare
		} else {
			wShare = hShare
		}
	}
	ws := trackLengths(t.Widths, wShare)
	hs := trackLengths(t.Heights, hShare)

	// Cumulative track edges: xs[i] is the left edge of column i,
	// ys[i] the top edge of row i.
	xs := make([]vg.Length, t.cols+1)
	xs[0] = c.Min.X
	for i, w := range ws {
		xs[i+1] = xs[i] + w
	}
	ys := make([]vg.Length, t.rows+1)
	ys[0] = c.Max.Y
	for i, h := range hs {
		ys[i+1] = ys[i] - h
	}

	cells := make([]Cell, len(t.cells))
	copy(cells, t.cells)
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].Z < cells[j].Z })

	for _, cell := range cells {
		sub := c
		sub.Min.X = xs[cell.Col]
		sub.Max.X = xs[cell.Col+cell.ColSpan]
		sub.Max.Y = ys[cell.Row]
		sub.Min.Y = ys[cell.Row+cell.RowSpan]
		cell.D.Draw(sub)
	}
}
