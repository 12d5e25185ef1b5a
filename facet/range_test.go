package facet

import (
	"math"
	"strconv"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalExpanded(t *testing.T) {
	if got := UnsetInterval().expanded(); !got.Equal(Interval{-1, 1}) {
		t.Errorf("expanded unset = %v, want [-1,1]", got)
	}
	got := Interval{5, 5}.expanded()
	if !(got.Min < 5 && got.Max > 5) {
		t.Errorf("expanded degenerate = %v, want a proper interval around 5", got)
	}
	got = Interval{0, 10}.expanded()
	if got.Min != -0.5 || got.Max != 10.5 {
		t.Errorf("expanded [0,10] = %v, want [-0.5,10.5]", got)
	}
}

func TestIntervalClampedSpan(t *testing.T) {
	tests := []struct {
		iv   Interval
		want float64
	}{
		{Interval{0, 10}, 10},
		{Interval{5, 5}, minSpan},
		{Interval{7, 3}, minSpan},
		{UnsetInterval(), minSpan},
	}
	for i, tc := range tests {
		if got := tc.iv.clampedSpan(); got != tc.want {
			t.Errorf("%d: clampedSpan(%v) = %g, want %g", i, tc.iv, got, tc.want)
		}
	}
}

func TestRangesObserve(t *testing.T) {
	r := NewRanges()
	r.ObserveX(1, 3, 7)
	r.ObserveX(1, -2)
	r.ObserveX(2, 10)
	if iv := r.X[1]; !iv.Equal(Interval{-2, 7}) {
		t.Errorf("group 1 = %v, want [-2,7]", iv)
	}
	if iv := r.X[2]; !iv.Equal(Interval{10, 10}) {
		t.Errorf("group 2 = %v, want [10,10]", iv)
	}
	// Groups never observed still yield a usable display range.
	if iv := r.YRange(1); !iv.Equal(Interval{-1, 1}) {
		t.Errorf("unobserved YRange = %v, want [-1,1]", iv)
	}
}

func TestPanelRangeMap(t *testing.T) {
	pr := PanelRange{X: Interval{0, 10}, Y: Interval{0, 100}}
	c := draw.Canvas{
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: 0, Y: 0},
			Max: vg.Point{X: 200, Y: 100},
		},
	}
	tests := []struct {
		x, y float64
		want vg.Point
	}{
		{0, 0, vg.Point{X: 0, Y: 0}},
		{10, 100, vg.Point{X: 200, Y: 100}},
		{5, 50, vg.Point{X: 100, Y: 50}},
	}
	for i, tc := range tests {
		if got := pr.Map(tc.x, tc.y, c); got != tc.want {
			t.Errorf("%d: Map(%g,%g) = %v, want %v", i, tc.x, tc.y, got, tc.want)
		}
	}
}
