package facet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/relias08/ggplot2/data"
)

// MarginLevel is the sentinel factor level carried by synthetic margin
// panels aggregating over a faceting dimension.
const MarginLevel = "(all)"

// Panel is one entry of the trained layout: a grid position, the
// faceting variable values it represents and the scale groups it
// belongs to. Grid positions and scale groups are 1-based.
type Panel struct {
	// ID is the dense panel number 1..N.
	ID int

	// Row and Col are the grid position, row 1 at the top.
	Row, Col int

	// RowValues and ColValues hold one value per faceting variable of
	// the respective side; margin panels carry MarginLevel.
	RowValues, ColValues []string

	// ScaleX and ScaleY are the axis scale groups: panels in the same
	// group share one axis range.
	ScaleX, ScaleY int
}

// clone returns the panel with its own copies of the value tuples, so
// the caller cannot reach the layout's internal storage through them.
func (p Panel) clone() Panel {
	p.RowValues = append([]string(nil), p.RowValues...)
	p.ColValues = append([]string(nil), p.ColValues...)
	return p
}

// Layout is the trained panel table of a Grid. It is built once by
// Train and read-only afterwards; every accessor returns copies or
// values, never aliases that would allow mutation.
type Layout struct {
	RowVars, ColVars []string
	NRows, NCols     int
	Margins          bool

	panels []Panel

	// Lookup tables from value-tuple keys to panel IDs.
	realByKey      map[string]int
	marginRowByCol map[string]int // panels in the synthetic grid row
	marginColByRow map[string]int // panels in the synthetic grid column
	grandID        int            // 0 if absent
}

// NumPanels returns the number of panels, real and margin.
func (l *Layout) NumPanels() int { return len(l.panels) }

// Panels returns a copy of the panel table in ID order.
func (l *Layout) Panels() []Panel {
	ps := make([]Panel, len(l.panels))
	for i, p := range l.panels {
		ps[i] = p.clone()
	}
	return ps
}

// Panel returns the panel with the given ID. IDs are dense 1..N;
// anything else is a programming error and panics.
func (l *Layout) Panel(id int) Panel {
	if id < 1 || id > len(l.panels) {
		panic(fmt.Sprintf("facet: panel ID %d outside 1..%d", id, len(l.panels)))
	}
	return l.panels[id-1].clone()
}

// tupleKey joins a value tuple into a lookup key.
func tupleKey(vals []string) string { return strings.Join(vals, "\x1f") }

// distinctValues returns the sorted distinct values of column col in d.
func distinctValues(d data.Source, col string) ([]string, error) {
	seen := make(map[string]bool)
	var vals []string
	for i := 0; i < d.Len(); i++ {
		v, ok := d.Value(col, i)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, col)
		}
		if !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoData, col)
	}
	sort.Strings(vals)
	return vals, nil
}

// crossLevels builds the cross product of the distinct values of vars,
// ordered lexicographically. With no vars it returns the single empty
// tuple, so a side without faceting variables still yields one grid
// row/column.
func crossLevels(d data.Source, vars []string) ([][]string, error) {
	tuples := [][]string{nil}
	for _, v := range vars {
		levels, err := distinctValues(d, v)
		if err != nil {
			return nil, err
		}
		var next [][]string
		for _, t := range tuples {
			for _, lv := range levels {
				tt := append(append([]string{}, t...), lv)
				next = append(next, tt)
			}
		}
		tuples = next
	}
	return tuples, nil
}

// marginTuple returns the all-MarginLevel tuple for n variables.
func marginTuple(n int) []string {
	t := make([]string, n)
	for i := range t {
		t[i] = MarginLevel
	}
	return t
}

// Train builds the panel layout for dataset d: the cross product of the
// observed row-variable value tuples times the observed column-variable
// tuples, plus synthetic margin panels if requested. Panel IDs are
// assigned row-major over the real cross product first, in display
// order; margin panels are appended after it.
func (g *Grid) Train(d data.Source) (*Layout, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	rowTuples, err := crossLevels(d, g.Rows)
	if err != nil {
		return nil, err
	}
	colTuples, err := crossLevels(d, g.Cols)
	if err != nil {
		return nil, err
	}
	nr, nc := len(rowTuples), len(colTuples)

	marginRow := g.Margins && len(g.Rows) > 0
	marginCol := g.Margins && len(g.Cols) > 0

	l := &Layout{
		RowVars:        append([]string{}, g.Rows...),
		ColVars:        append([]string{}, g.Cols...),
		NRows:          nr,
		NCols:          nc,
		Margins:        g.Margins,
		realByKey:      make(map[string]int),
		marginRowByCol: make(map[string]int),
		marginColByRow: make(map[string]int),
	}
	if marginRow {
		l.NRows++
	}
	if marginCol {
		l.NCols++
	}

	// Display position of the i-th row tuple: top down when AsTable,
	// bottom up otherwise. The margin row is always the last grid row.
	gridRow := func(i int) int {
		if g.AsTable {
			return i + 1
		}
		return nr - i
	}

	id := 0
	add := func(row, col int, rvals, cvals []string) Panel {
		id++
		p := Panel{ID: id, Row: row, Col: col, RowValues: rvals, ColValues: cvals}
		l.panels = append(l.panels, p)
		return p
	}

	for i, rt := range rowTuples {
		for j, ct := range colTuples {
			p := add(gridRow(i), j+1, rt, ct)
			l.realByKey[tupleKey(rt)+"\x1e"+tupleKey(ct)] = p.ID
		}
	}
	if marginRow {
		rt := marginTuple(len(g.Rows))
		for j, ct := range colTuples {
			p := add(nr+1, j+1, rt, ct)
			l.marginRowByCol[tupleKey(ct)] = p.ID
		}
	}
	if marginCol {
		ct := marginTuple(len(g.Cols))
		for i, rt := range rowTuples {
			p := add(gridRow(i), nc+1, rt, ct)
			l.marginColByRow[tupleKey(rt)] = p.ID
		}
	}
	if marginRow && marginCol {
		p := add(nr+1, nc+1, marginTuple(len(g.Rows)), marginTuple(len(g.Cols)))
		l.grandID = p.ID
	}

	// Annotate scale groups: a free axis varies across the
	// perpendicular grid dimension.
	for i := range l.panels {
		l.panels[i].ScaleX = 1
		l.panels[i].ScaleY = 1
		if g.Scales.FreeX() {
			l.panels[i].ScaleX = l.panels[i].Col
		}
		if g.Scales.FreeY() {
			l.panels[i].ScaleY = l.panels[i].Row
		}
	}

	logger.Debug("trained facet layout",
		"panels", len(l.panels), "rows", l.NRows, "cols", l.NCols,
		"margins", g.Margins, "scales", g.Scales.String())

	return l, nil
}

// rowTupleOf extracts the row-variable values of record i.
func (l *Layout) rowTupleOf(d data.Source, i int) ([]string, bool) {
	vals := make([]string, len(l.RowVars))
	for k, v := range l.RowVars {
		x, ok := d.Value(v, i)
		if !ok {
			return nil, false
		}
		vals[k] = x
	}
	return vals, true
}

// colTupleOf extracts the column-variable values of record i.
func (l *Layout) colTupleOf(d data.Source, i int) ([]string, bool) {
	vals := make([]string, len(l.ColVars))
	for k, v := range l.ColVars {
		x, ok := d.Value(v, i)
		if !ok {
			return nil, false
		}
		vals[k] = x
	}
	return vals, true
}
