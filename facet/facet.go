// Package facet splits a dataset into a row/column grid of panels and
// assembles the panels, their axes and their strip labels into one
// drawable table.
//
// The entry point is a Grid describing the faceting: which discrete
// variables split the rows and columns, whether synthetic margin panels
// are added, whether the axis scales and the panel sizes are shared
// ("fixed") or vary per row/column ("free"). Train builds the panel
// layout from a dataset, Locate assigns records to panels, and Render
// assembles the final gtable.Table handed back to the plot driver.
//
// The pipeline is a pure transformation: a layout, once trained, is
// read-only, and Render produces a fresh table on every call.
package facet

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoFacetVariables is returned when neither row nor column
	// faceting variables are given. A grid needs at least one.
	ErrNoFacetVariables = errors.New("faceting needs at least one row or column variable")

	// ErrBadScales is returned for an unknown scales setting.
	ErrBadScales = errors.New(`scales must be one of "fixed", "free_x", "free_y", "free"`)

	// ErrBadSpace is returned for an unknown space setting.
	ErrBadSpace = errors.New(`space must be one of "fixed", "free"`)

	// ErrBadFormula is returned when a facet formula cannot be parsed.
	ErrBadFormula = errors.New(`facet formula must have the form "rowvars ~ colvars"`)

	// ErrUnknownVariable is returned by Train and Locate when a
	// faceting variable is not a column of the dataset.
	ErrUnknownVariable = errors.New("faceting variable not found in data")

	// ErrNoData is returned by Train when a faceting variable has no
	// observed values, i.e. the dataset holds no records.
	ErrNoData = errors.New("faceting variable has no observed values")
)

// ScaleMode controls whether panels share one axis range per axis or
// each panel column (x) / panel row (y) gets its own.
type ScaleMode int

const (
	ScalesFixed ScaleMode = iota
	ScalesFreeX
	ScalesFreeY
	ScalesFree
)

// FreeX reports whether the x ranges vary per panel column.
func (m ScaleMode) FreeX() bool { return m == ScalesFreeX || m == ScalesFree }

// FreeY reports whether the y ranges vary per panel row.
func (m ScaleMode) FreeY() bool { return m == ScalesFreeY || m == ScalesFree }

func (m ScaleMode) String() string {
	switch m {
	case ScalesFixed:
		return "fixed"
	case ScalesFreeX:
		return "free_x"
	case ScalesFreeY:
		return "free_y"
	case ScalesFree:
		return "free"
	}
	return fmt.Sprintf("ScaleMode(%d)", int(m))
}

// ParseScaleMode parses a textual scales setting.
func ParseScaleMode(s string) (ScaleMode, error) {
	switch s {
	case "fixed":
		return ScalesFixed, nil
	case "free_x":
		return ScalesFreeX, nil
	case "free_y":
		return ScalesFreeY, nil
	case "free":
		return ScalesFree, nil
	}
	return 0, fmt.Errorf("%w, got %q", ErrBadScales, s)
}

// SpaceMode controls whether all panel rows/columns get the same size or
// a size proportional to their scale's data span.
type SpaceMode int

const (
	SpaceFixed SpaceMode = iota
	SpaceFree
)

func (m SpaceMode) String() string {
	if m == SpaceFree {
		return "free"
	}
	return "fixed"
}

// ParseSpaceMode parses a textual space setting.
func ParseSpaceMode(s string) (SpaceMode, error) {
	switch s {
	case "fixed":
		return SpaceFixed, nil
	case "free":
		return SpaceFree, nil
	}
	return 0, fmt.Errorf("%w, got %q", ErrBadSpace, s)
}

// Grid describes a faceted plot layout: the cross product of the
// distinct values of the Rows variables times those of the Cols
// variables, one panel per combination.
//
// A Grid is not modified by any method and must not be changed after
// the first call to Train.
type Grid struct {
	// Rows and Cols name the faceting variables. At least one of the
	// two lists must be non-empty.
	Rows, Cols []string

	// Margins adds synthetic "(all)" panels aggregating over the row
	// split, the column split, and both.
	Margins bool

	Scales ScaleMode
	Space  SpaceMode

	// Labeller renders strip labels. Nil means LabelValue.
	Labeller Labeller

	// AsTable places panel 1 in the top-left corner like a table.
	// If false the first panel row is at the bottom.
	AsTable bool
}

// NewGrid returns a grid faceting by the given row and column variables
// with fixed scales and space, value labels and table ordering.
func NewGrid(rows, cols []string) (*Grid, error) {
	g := &Grid{
		Rows:    append([]string{}, rows...),
		Cols:    append([]string{}, cols...),
		AsTable: true,
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// GridFromFormula returns a grid for a formula like "a ~ b", "a + b ~ c"
// or ". ~ c". A dot denotes an empty variable list on that side.
func GridFromFormula(formula string) (*Grid, error) {
	rows, cols, err := ParseFormula(formula)
	if err != nil {
		return nil, err
	}
	return NewGrid(rows, cols)
}

// ParseFormula splits a "rowvars ~ colvars" formula into its variable
// lists. Variables are separated by "+", a single "." stands for no
// variable on that side.
func ParseFormula(formula string) (rows, cols []string, err error) {
	parts := strings.Split(formula, "~")
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("%w, got %q", ErrBadFormula, formula)
	}
	side := func(s string) ([]string, error) {
		s = strings.TrimSpace(s)
		if s == "." || s == "" {
			return nil, nil
		}
		var vars []string
		for _, v := range strings.Split(s, "+") {
			v = strings.TrimSpace(v)
			if v == "" || v == "." {
				return nil, fmt.Errorf("%w, got %q", ErrBadFormula, formula)
			}
			vars = append(vars, v)
		}
		return vars, nil
	}
	if rows, err = side(parts[0]); err != nil {
		return nil, nil, err
	}
	if cols, err = side(parts[1]); err != nil {
		return nil, nil, err
	}
	return rows, cols, nil
}

func (g *Grid) validate() error {
	if len(g.Rows) == 0 && len(g.Cols) == 0 {
		return ErrNoFacetVariables
	}
	return nil
}

// labeller returns the configured labeller or the default.
func (g *Grid) labeller() Labeller {
	if g.Labeller != nil {
		return g.Labeller
	}
	return LabelValue
}
