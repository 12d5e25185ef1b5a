package facet

import (
	"testing"
)

func TestBuildStripsTop(t *testing.T) {
	g, l := trainGearCyl(t, ScalesFixed, SpaceFixed)
	sty := DefaultStyle(12)
	s := BuildStrips(l, SideTop, g.labeller(), sty)
	if s.Bands() != 1 {
		t.Fatalf("Bands = %d, want 1 (one column variable)", s.Bands())
	}
	if len(s.Cells[0]) != l.NCols {
		t.Fatalf("band has %d cells, want one per grid column (%d)", len(s.Cells[0]), l.NCols)
	}
	if s.Thickness[0] <= 0 {
		t.Errorf("band thickness %v, want > 0", s.Thickness[0])
	}
	for i, c := range s.Cells[0] {
		cell := c.(stripCell)
		want := []string{"3", "4", "5"}[i]
		if cell.label != want {
			t.Errorf("cell %d label %q, want %q", i, cell.label, want)
		}
	}
}

func TestBuildStripsLabeller(t *testing.T) {
	g, l := trainGearCyl(t, ScalesFixed, SpaceFixed)
	g.Labeller = LabelBoth
	s := BuildStrips(l, SideRight, g.labeller(), DefaultStyle(12))
	if s.Bands() != 1 {
		t.Fatalf("Bands = %d, want 1", s.Bands())
	}
	if got := s.Cells[0][0].(stripCell).label; got != "cyl: 4" {
		t.Errorf("label %q, want %q", got, "cyl: 4")
	}
}

func TestBuildStripsEmptySide(t *testing.T) {
	// No row variables: the right strip set is a zero-thickness
	// placeholder but the column count still matches the grid.
	g, err := NewGrid(nil, []string{"gear"})
	if err != nil {
		t.Fatal(err)
	}
	l, err := g.Train(gearCylFrame(t))
	if err != nil {
		t.Fatal(err)
	}
	s := BuildStrips(l, SideRight, g.labeller(), DefaultStyle(12))
	if s.Bands() != 0 {
		t.Errorf("Bands = %d, want 0", s.Bands())
	}
	if len(s.Thickness) != 0 {
		t.Errorf("Thickness has %d entries, want 0", len(s.Thickness))
	}
}

func TestBuildStripsTwoRowVariables(t *testing.T) {
	frame := mustFrame(t, []string{"a", "b", "v"},
		[]string{"x", "1", "0"},
		[]string{"y", "2", "0"},
		[]string{"x", "2", "0"},
		[]string{"y", "1", "0"},
	)
	g, err := NewGrid([]string{"a", "b"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	l, err := g.Train(frame)
	if err != nil {
		t.Fatal(err)
	}
	if l.NRows != 4 {
		t.Fatalf("NRows = %d, want 4 (2x2 row tuples)", l.NRows)
	}
	s := BuildStrips(l, SideRight, g.labeller(), DefaultStyle(12))
	// Two row variables stack two label bands.
	if s.Bands() != 2 {
		t.Fatalf("Bands = %d, want 2", s.Bands())
	}
	if len(s.Cells[0]) != 4 || len(s.Cells[1]) != 4 {
		t.Errorf("band sizes %d/%d, want 4/4", len(s.Cells[0]), len(s.Cells[1]))
	}
	if got := s.Cells[1][0].(stripCell).label; got != "1" {
		t.Errorf("inner band first label %q, want %q", got, "1")
	}
}

func TestBuildStripsMarginLabel(t *testing.T) {
	g, err := NewGrid(nil, []string{"gear"})
	if err != nil {
		t.Fatal(err)
	}
	g.Margins = true
	l, err := g.Train(gearCylFrame(t))
	if err != nil {
		t.Fatal(err)
	}
	s := BuildStrips(l, SideTop, g.labeller(), DefaultStyle(12))
	last := s.Cells[0][len(s.Cells[0])-1].(stripCell)
	if last.label != MarginLevel {
		t.Errorf("margin strip label %q, want %q", last.label, MarginLevel)
	}
}
