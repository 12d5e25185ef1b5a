package facet

import (
	"reflect"
	"testing"
)

func TestLocateWithoutMargins(t *testing.T) {
	frame := gearCylFrame(t)
	g, err := NewGrid([]string{"cyl"}, []string{"gear"})
	if err != nil {
		t.Fatal(err)
	}
	l, err := g.Train(frame)
	if err != nil {
		t.Fatal(err)
	}
	ids, err := l.Locate(frame)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != frame.Len() {
		t.Fatalf("got %d assignments for %d records", len(ids), frame.Len())
	}
	for i, a := range ids {
		if len(a) != 1 {
			t.Errorf("record %d assigned to %d panels, want exactly 1", i, len(a))
		}
	}
	// First record is cyl=4, gear=3: the top-left panel.
	if ids[0][0] != 1 {
		t.Errorf("record 0 in panel %d, want 1", ids[0][0])
	}
}

func TestLocateWithMargins(t *testing.T) {
	frame := gearCylFrame(t)
	g, err := NewGrid([]string{"cyl"}, []string{"gear"})
	if err != nil {
		t.Fatal(err)
	}
	g.Margins = true
	l, err := g.Train(frame)
	if err != nil {
		t.Fatal(err)
	}
	ids, err := l.Locate(frame)
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range ids {
		// Real panel, row margin, column margin, grand margin.
		if len(a) != 4 {
			t.Fatalf("record %d assigned to %d panels, want 4", i, len(a))
		}
		seen := make(map[int]bool)
		for _, id := range a {
			if seen[id] {
				t.Errorf("record %d assigned twice to panel %d", i, id)
			}
			seen[id] = true
		}
	}
}

func TestLocateIdempotent(t *testing.T) {
	frame := gearCylFrame(t)
	g, err := NewGrid([]string{"cyl"}, []string{"gear"})
	if err != nil {
		t.Fatal(err)
	}
	g.Margins = true
	l, err := g.Train(frame)
	if err != nil {
		t.Fatal(err)
	}
	a, err := l.Locate(frame)
	if err != nil {
		t.Fatal(err)
	}
	b, err := l.Locate(frame)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Locate is not idempotent")
	}
}

func TestLocateDropsUnknownCombinations(t *testing.T) {
	// Train on one dataset, locate a second with a combination the
	// layout has never seen: the record is silently dropped.
	g, err := NewGrid([]string{"cyl"}, []string{"gear"})
	if err != nil {
		t.Fatal(err)
	}
	l, err := g.Train(gearCylFrame(t))
	if err != nil {
		t.Fatal(err)
	}
	other := mustFrame(t, []string{"cyl", "gear", "mpg"},
		[]string{"8", "3", "10.4"},
		[]string{"4", "4", "22.8"},
	)
	ids, err := l.Locate(other)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids[0]) != 0 {
		t.Errorf("unknown combination assigned to %v, want none", ids[0])
	}
	if len(ids[1]) != 1 {
		t.Errorf("known combination assigned to %v, want one panel", ids[1])
	}
}

func TestLocateUnknownVariable(t *testing.T) {
	g, err := NewGrid(nil, []string{"gear"})
	if err != nil {
		t.Fatal(err)
	}
	l, err := g.Train(gearCylFrame(t))
	if err != nil {
		t.Fatal(err)
	}
	noGear := mustFrame(t, []string{"cyl"}, []string{"4"})
	if _, err := l.Locate(noGear); err == nil {
		t.Error("Locate without the faceting column succeeded")
	}
}
