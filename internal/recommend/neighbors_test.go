package recommend

import "testing"

func TestNearestReturnsClosestFirst(t *testing.T) {
	vectors := [][]float64{
		{0, 0},
		{1, 0},
		{5, 5},
		{0, 1},
	}
	idx := NewNeighborIndex(vectors)

	indices, distances, err := idx.Nearest([]float64{0, 0}, 3)
	if err != nil {
		t.Fatalf("Nearest returned error: %v", err)
	}

	if indices[0] != 0 || distances[0] != 0 {
		t.Errorf("closest = index %d dist %f, want index 0 dist 0", indices[0], distances[0])
	}
	for i := 1; i < len(distances); i++ {
		if distances[i] < distances[i-1] {
			t.Errorf("distances not ascending: %v", distances)
		}
	}
	for _, got := range indices {
		if got == 2 {
			t.Errorf("far vector 2 should not be in the top 3 neighbors of origin: %v", indices)
		}
	}
}

func TestNearestClampsK(t *testing.T) {
	idx := NewNeighborIndex([][]float64{{0}, {1}})

	indices, _, err := idx.Nearest([]float64{0}, 10)
	if err != nil {
		t.Fatalf("Nearest returned error: %v", err)
	}
	if len(indices) != 2 {
		t.Errorf("got %d neighbors, want 2", len(indices))
	}
}

func TestNearestDimensionMismatch(t *testing.T) {
	idx := NewNeighborIndex([][]float64{{0, 0}})

	if _, _, err := idx.Nearest([]float64{0}, 1); err == nil {
		t.Error("expected dimension mismatch error")
	}
}

func TestNearestEmptyIndex(t *testing.T) {
	idx := NewNeighborIndex(nil)

	if _, _, err := idx.Nearest([]float64{0}, 1); err == nil {
		t.Error("expected error for empty index")
	}
}
