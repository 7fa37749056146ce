package engine

import (
	"strings"
	"testing"

	"github.com/lixenwraith/dla/parameter"
)

func TestOccupancyInsertAndLookup(t *testing.T) {
	o := NewOccupancy(10, 10)
	if o.IsOccupied(3, 4) {
		t.Fatal("Expected new grid to be empty")
	}

	o.Insert(3, 4, 7)
	if !o.IsOccupied(3, 4) {
		t.Error("Expected (3,4) occupied after insert")
	}
	if k, ok := o.Get(3, 4); !ok || k != 7 {
		t.Errorf("Expected key 7, got %d (ok=%v)", k, ok)
	}
	if o.Len() != 1 {
		t.Errorf("Expected Len 1, got %d", o.Len())
	}
	if o.IsOccupied(-1, 0) || o.IsOccupied(10, 0) {
		t.Error("Expected out-of-bounds cells to read as empty")
	}

	o.Clear()
	if o.Len() != 0 || o.IsOccupied(3, 4) {
		t.Error("Expected Clear to empty the grid")
	}
}

func TestOccupancyCollisionPanics(t *testing.T) {
	o := NewOccupancy(8, 8)
	o.Insert(2, 2, 0)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic on occupied insert")
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, "collision at (2,2)") {
			t.Errorf("Expected diagnosable collision message, got %v", r)
		}
	}()
	o.Insert(2, 2, 1)
}

func TestOccupancyOutOfBoundsInsertPanics(t *testing.T) {
	o := NewOccupancy(4, 4)
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on out-of-bounds insert")
		}
	}()
	o.Insert(4, 0, 0)
}

func TestNeighborShapes(t *testing.T) {
	if n := len(Offsets(parameter.VonNeumann)); n != 4 {
		t.Errorf("Expected 4 von Neumann offsets, got %d", n)
	}
	if n := len(Offsets(parameter.Moore)); n != 8 {
		t.Errorf("Expected 8 Moore offsets, got %d", n)
	}
	if n := len(Offsets(parameter.Extended)); n != 24 {
		t.Errorf("Expected 24 extended offsets, got %d", n)
	}

	o := NewOccupancy(10, 10)
	o.Insert(5, 4, 0) // cardinal
	o.Insert(6, 6, 1) // diagonal
	o.Insert(7, 5, 2) // radius 2

	tests := []struct {
		shape parameter.Neighborhood
		want  int
	}{
		{parameter.VonNeumann, 1},
		{parameter.Moore, 2},
		{parameter.Extended, 3},
	}
	for _, tt := range tests {
		if got := o.NeighborCount(5, 5, tt.shape, false); got != tt.want {
			t.Errorf("%s: expected %d neighbors, got %d", tt.shape, tt.want, got)
		}
	}

	got := o.Neighbors(5, 5, parameter.Moore, nil)
	if len(got) != 2 {
		t.Fatalf("Expected 2 occupied offsets, got %v", got)
	}
	if got[0] != (Point{0, -1}) || got[1] != (Point{1, 1}) {
		t.Errorf("Expected offsets [{0 -1} {1 1}], got %v", got)
	}
}

func TestNeighborCountEdgeSolid(t *testing.T) {
	o := NewOccupancy(10, 10)

	if n := o.NeighborCount(0, 0, parameter.Moore, false); n != 0 {
		t.Errorf("Expected open edge to count 0, got %d", n)
	}
	// Corner cell: 5 of 8 Moore offsets fall off the lattice
	if n := o.NeighborCount(0, 0, parameter.Moore, true); n != 5 {
		t.Errorf("Expected solid edge to count 5, got %d", n)
	}
	if n := o.NeighborCount(5, 5, parameter.Moore, true); n != 0 {
		t.Errorf("Expected interior cell unaffected by solid edge, got %d", n)
	}
}
