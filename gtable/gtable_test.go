package gtable

import (
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// recorder remembers the canvas it was drawn into.
type recorder struct {
	rect *vg.Rectangle
}

func (r recorder) Draw(c draw.Canvas) { *r.rect = c.Rectangle }

func TestNullShare(t *testing.T) {
	tests := []struct {
		name  string
		units []Unit
		total vg.Length
		want  float64
	}{
		{"all null", []Unit{NullUnit(1), NullUnit(1)}, 100, 50},
		{"weighted", []Unit{NullUnit(1), NullUnit(3)}, 100, 25},
		{"mixed", []Unit{Pt(40), NullUnit(2)}, 100, 30},
		{"no null", []Unit{Pt(40), Pt(60)}, 100, 0},
		{"overfull", []Unit{Pt(200), NullUnit(1)}, 100, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := nullShare(tc.units, tc.total); got != tc.want {
				t.Errorf("nullShare = %g, want %g", got, tc.want)
			}
		})
	}
}

func TestTrackLengths(t *testing.T) {
	units := []Unit{Pt(10), NullUnit(2), NullUnit(1)}
	got := trackLengths(units, 30)
	want := []vg.Length{10, 60, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("track %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAddBoundsPanic(t *testing.T) {
	tbl := New(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("out-of-bounds Add did not panic")
		}
	}()
	tbl.Add(2, 0, "oops", 0, recorder{rect: &vg.Rectangle{}})
}

func TestAddNilIgnored(t *testing.T) {
	tbl := New(1, 1)
	tbl.Add(0, 0, "empty", 0, nil)
	if len(tbl.Cells()) != 0 {
		t.Error("nil drawable was stored")
	}
}

func TestDrawPlacesCells(t *testing.T) {
	tbl := New(2, 2)
	tbl.Widths[0] = Pt(40)
	tbl.Widths[1] = NullUnit(1)
	tbl.Heights[0] = NullUnit(1)
	tbl.Heights[1] = Pt(20)

	var topLeft, bottomRight vg.Rectangle
	tbl.Add(0, 0, "a", 0, recorder{rect: &topLeft})
	tbl.Add(1, 1, "b", 0, recorder{rect: &bottomRight})

	c := draw.Canvas{
		Rectangle: vg.Rectangle{Max: vg.Point{X: 100, Y: 100}},
	}
	tbl.Draw(c)

	// Row 0 is at the top: 80 high (100 - 20pt), col 0 is 40 wide.
	want := vg.Rectangle{Min: vg.Point{X: 0, Y: 20}, Max: vg.Point{X: 40, Y: 100}}
	if topLeft != want {
		t.Errorf("cell a rect %v, want %v", topLeft, want)
	}
	want = vg.Rectangle{Min: vg.Point{X: 40, Y: 0}, Max: vg.Point{X: 100, Y: 20}}
	if bottomRight != want {
		t.Errorf("cell b rect %v, want %v", bottomRight, want)
	}
}

func TestDrawSpan(t *testing.T) {
	tbl := New(2, 3)
	for i := range tbl.Widths {
		tbl.Widths[i] = NullUnit(1)
	}
	tbl.Heights[0] = Pt(10)
	tbl.Heights[1] = NullUnit(1)

	var spanned vg.Rectangle
	tbl.AddSpan(0, 0, 1, 3, "title", 0, recorder{rect: &spanned})

	c := draw.Canvas{Rectangle: vg.Rectangle{Max: vg.Point{X: 90, Y: 50}}}
	tbl.Draw(c)

	want := vg.Rectangle{Min: vg.Point{X: 0, Y: 40}, Max: vg.Point{X: 90, Y: 50}}
	if spanned != want {
		t.Errorf("spanned rect %v, want %v", spanned, want)
	}
}

func TestDrawRespect(t *testing.T) {
	// 2 null cols over 200pt vs 2 null rows over 100pt: with Respect
	// both share the smaller 50pt-per-unit measure.
	tbl := New(2, 2)
	for i := range tbl.Widths {
		tbl.Widths[i] = NullUnit(1)
		tbl.Heights[i] = NullUnit(1)
	}
	tbl.Respect = true

	var cell vg.Rectangle
	tbl.Add(0, 0, "a", 0, recorder{rect: &cell})
	c := draw.Canvas{Rectangle: vg.Rectangle{Max: vg.Point{X: 200, Y: 100}}}
	tbl.Draw(c)

	if w := cell.Max.X - cell.Min.X; w != 50 {
		t.Errorf("respected cell width %v, want 50", w)
	}
	if h := cell.Max.Y - cell.Min.Y; h != 50 {
		t.Errorf("respected cell height %v, want 50", h)
	}
}

func TestFind(t *testing.T) {
	tbl := New(1, 2)
	r := recorder{rect: &vg.Rectangle{}}
	tbl.Add(0, 0, "panel", 0, r)
	tbl.Add(0, 1, "panel", 1, r)
	if got := len(tbl.Find("panel")); got != 2 {
		t.Errorf("Find(panel) = %d cells, want 2", got)
	}
	if got := len(tbl.Find("axis")); got != 0 {
		t.Errorf("Find(axis) = %d cells, want 0", got)
	}
}
