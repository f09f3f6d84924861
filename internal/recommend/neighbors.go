package recommend

import (
	"fmt"
	"math"
	"sort"
)

// NeighborIndex answers k-nearest-neighbor queries with Euclidean
// distance over the encoded feature space. The survey dataset is small
// enough that a linear scan beats maintaining a tree structure.
type NeighborIndex struct {
	vectors [][]float64
}

func NewNeighborIndex(vectors [][]float64) *NeighborIndex {
	return &NeighborIndex{vectors: vectors}
}

// Nearest returns the indices and distances of the k closest fitted
// vectors, nearest first. Ties keep fit order.
func (idx *NeighborIndex) Nearest(query []float64, k int) ([]int, []float64, error) {
	if len(idx.vectors) == 0 {
		return nil, nil, fmt.Errorf("neighbor index is empty")
	}
	if len(query) != len(idx.vectors[0]) {
		return nil, nil, fmt.Errorf("query has %d dimensions, index has %d", len(query), len(idx.vectors[0]))
	}
	if k > len(idx.vectors) {
		k = len(idx.vectors)
	}

	type candidate struct {
		index    int
		distance float64
	}

	candidates := make([]candidate, len(idx.vectors))
	for i, v := range idx.vectors {
		candidates[i] = candidate{index: i, distance: euclidean(query, v)}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	indices := make([]int, k)
	distances := make([]float64, k)
	for i := 0; i < k; i++ {
		indices[i] = candidates[i].index
		distances[i] = candidates[i].distance
	}
	return indices, distances, nil
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
