package parking

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ============================================================================
// Diagram Tests
// ============================================================================

func TestRender_SingleBay(t *testing.T) {
	g, err := NewGrid(1, nil, nil)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	got := NewRenderer(g).Render()
	if diff := cmp.Diff("U\n", got); diff != "" {
		t.Errorf("Diagram mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_EvenRowsAscendOddRowsDescend(t *testing.T) {
	// Lane size 3, exit at 4, disabled bay at 3. Row 1 reads indices
	// 5,4,3 right-to-left.
	g, err := NewGrid(3, []int{4}, []int{3})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	want := "UUU\nU=@\nUUU\n"
	if diff := cmp.Diff(want, NewRenderer(g).Render()); diff != "" {
		t.Errorf("Diagram mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ParkedVehiclesShowTheirTags(t *testing.T) {
	g, err := NewGrid(3, []int{4}, []int{3})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	engine := NewEngine(g)

	if _, err := engine.Park(DisabledTag); err != nil {
		t.Fatalf("Park('D') failed: %v", err)
	}
	if _, err := engine.Park('C'); err != nil {
		t.Fatalf("Park('C') failed: %v", err)
	}

	// 'D' landed on bay 3, 'C' on bay 5; the middle row renders 5,4,3.
	want := "UUU\nC=D\nUUU\n"
	if diff := cmp.Diff(want, NewRenderer(g).Render()); diff != "" {
		t.Errorf("Diagram mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ScenarioLaneSizeTwo(t *testing.T) {
	g, err := NewGrid(2, []int{0}, nil)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	engine := NewEngine(g)
	renderer := NewRenderer(g)

	if diff := cmp.Diff("=U\nUU\n", renderer.Render()); diff != "" {
		t.Errorf("Initial diagram mismatch (-want +got):\n%s", diff)
	}

	if _, err := engine.Park('C'); err != nil {
		t.Fatalf("Park failed: %v", err)
	}
	if diff := cmp.Diff("=C\nUU\n", renderer.Render()); diff != "" {
		t.Errorf("Diagram after park mismatch (-want +got):\n%s", diff)
	}

	if _, err := engine.Unpark(1); err != nil {
		t.Fatalf("Unpark failed: %v", err)
	}
	if diff := cmp.Diff("=U\nUU\n", renderer.Render()); diff != "" {
		t.Errorf("Diagram after unpark mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Lanes(t *testing.T) {
	g, err := NewGrid(2, []int{0}, []int{3})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	lanes := NewRenderer(g).Lanes()
	want := []string{"=U", "@U"}
	if diff := cmp.Diff(want, lanes); diff != "" {
		t.Errorf("Lanes mismatch (-want +got):\n%s", diff)
	}
}

// ============================================================================
// Traversal Coverage Tests
// ============================================================================

// TestRowIndices_ExhaustiveCoverage checks for every lane size that the
// snake traversal visits each bay exactly once and that each row stays
// within its contiguous index range.
func TestRowIndices_ExhaustiveCoverage(t *testing.T) {
	for laneSize := 1; laneSize <= 6; laneSize++ {
		total := laneSize * laneSize
		seen := make(map[int]int, total)

		for row := 0; row < laneSize; row++ {
			indices := rowIndices(laneSize, row)
			if len(indices) != laneSize {
				t.Fatalf("laneSize %d row %d: expected %d indices, got %d",
					laneSize, row, laneSize, len(indices))
			}

			lo, hi := row*laneSize, (row+1)*laneSize-1
			for _, i := range indices {
				if i < lo || i > hi {
					t.Errorf("laneSize %d row %d: index %d outside [%d,%d]",
						laneSize, row, i, lo, hi)
				}
				seen[i]++
			}
		}

		for i := 0; i < total; i++ {
			if seen[i] != 1 {
				t.Errorf("laneSize %d: index %d visited %d times", laneSize, i, seen[i])
			}
		}
	}
}

func TestRowIndices_Direction(t *testing.T) {
	// Even rows ascend, odd rows descend.
	got := rowIndices(3, 0)
	want := []int{0, 1, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Row 0 mismatch (-want +got):\n%s", diff)
	}

	got = rowIndices(3, 1)
	want = []int{5, 4, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Row 1 mismatch (-want +got):\n%s", diff)
	}

	got = rowIndices(3, 2)
	want = []int{6, 7, 8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Row 2 mismatch (-want +got):\n%s", diff)
	}
}
