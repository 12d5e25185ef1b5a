package facet

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// rangeExpand is the relative padding added to a data range before it
// is used for drawing, mimicking ggplot2's default scale expansion.
const rangeExpand = 0.05

// minSpan is the smallest span a scale group contributes to free-space
// sizing. Degenerate ranges are clamped to it, never treated as errors.
const minSpan = 1e-6

// Interval represents a (potentially degenerate) real interval.
// Both edges may be NaN indicating that the edge is not determined.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval [NaN, NaN].
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include the given values. NaNs are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// IsUnset reports whether either edge of i is undetermined.
func (i Interval) IsUnset() bool {
	return math.IsNaN(i.Min) || math.IsNaN(i.Max)
}

// Span returns Max - Min, or NaN for an unset interval.
func (i Interval) Span() float64 { return i.Max - i.Min }

func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// expanded returns i padded for display: unset intervals become [-1, 1],
// degenerate intervals are widened by ±0.5 around their value, and all
// intervals grow by rangeExpand relative on both sides.
func (i Interval) expanded() Interval {
	if i.IsUnset() {
		return Interval{-1, 1}
	}
	if i.Min == i.Max {
		i.Min -= 0.5
		i.Max += 0.5
	}
	ext := rangeExpand * (i.Max - i.Min)
	return Interval{i.Min - ext, i.Max + ext}
}

// clampedSpan returns the span of i, clamped to minSpan when the
// interval is unset, degenerate or inverted.
func (i Interval) clampedSpan() float64 {
	s := i.Span()
	if !(s > minSpan) {
		return minSpan
	}
	return s
}

// PanelRange is the pair of display ranges a single panel maps its data
// through. It is derived from externally trained Ranges.
type PanelRange struct {
	X, Y Interval
}

// Map maps the data coordinate (x, y) into a point of the panel canvas c.
func (pr PanelRange) Map(x, y float64, c draw.Canvas) vg.Point {
	size := c.Size()
	xu := (x - pr.X.Min) / pr.X.Span()
	yu := (y - pr.Y.Min) / pr.Y.Span()
	return vg.Point{
		X: c.Min.X + vg.Length(xu)*size.X,
		Y: c.Min.Y + vg.Length(yu)*size.Y,
	}
}

// Ranges holds the per-scale-group data ranges for the x and y axes.
// They are trained externally, by whoever owns the data values, and fed
// into sizing, axis rendering and panel mapping.
type Ranges struct {
	X, Y map[int]Interval
}

// NewRanges returns empty range maps.
func NewRanges() Ranges {
	return Ranges{X: make(map[int]Interval), Y: make(map[int]Interval)}
}

// ObserveX extends the x range of the given scale group by xs.
func (r Ranges) ObserveX(group int, xs ...float64) {
	iv, ok := r.X[group]
	if !ok {
		iv = UnsetInterval()
	}
	iv.Update(xs...)
	r.X[group] = iv
}

// ObserveY extends the y range of the given scale group by ys.
func (r Ranges) ObserveY(group int, ys ...float64) {
	iv, ok := r.Y[group]
	if !ok {
		iv = UnsetInterval()
	}
	iv.Update(ys...)
	r.Y[group] = iv
}

// XRange returns the display x range of a scale group, expanded and
// never degenerate. Groups without data cover [-1, 1].
func (r Ranges) XRange(group int) Interval {
	iv, ok := r.X[group]
	if !ok {
		iv = UnsetInterval()
	}
	return iv.expanded()
}

// YRange returns the display y range of a scale group, see XRange.
func (r Ranges) YRange(group int) Interval {
	iv, ok := r.Y[group]
	if !ok {
		iv = UnsetInterval()
	}
	return iv.expanded()
}

// PanelRange returns the display ranges panel p maps through.
func (r Ranges) PanelRange(p Panel) PanelRange {
	return PanelRange{X: r.XRange(p.ScaleX), Y: r.YRange(p.ScaleY)}
}
