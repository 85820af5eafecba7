package solver

import "fmt"

// wheel selects a visited vertex in random mode. The weight of a vertex is
// its number of unvisited neighbors (zero for unvisited vertices), so that a
// roll followed by a uniform draw among the unvisited neighbors of the rolled
// vertex is a uniform draw over all (visited, unvisited) adjacent pairs.
// Weights are updated in O(log n) after each extension.
type wheel struct {
	n int
	// sumWeights is a tree whose leaves n..2n-1 hold the vertex weights.
	// Node i has children 2i and 2i+1 and holds their sum, so the number of
	// candidate pairs is at index 1.
	sumWeights []float64
}

func newWheel(n int) *wheel {
	return &wheel{
		n:          n,
		sumWeights: make([]float64, n*2),
	}
}

// setWeight sets the number of candidate pairs starting at vertex v.
func (w *wheel) setWeight(v int, weight float64) {
	i := w.n + v
	w.sumWeights[i] = weight
	for p := i / 2; p > 0; p = p / 2 {
		l := p * 2
		r := l + 1
		w.sumWeights[p] = w.sumWeights[l] + w.sumWeights[r]
	}
}

func (w *wheel) totalWeight() float64 {
	if w.n == 0 {
		return 0
	}
	return w.sumWeights[1]
}

// roll returns a visited vertex selected with a probability proportional to
// its number of unvisited neighbors, using the random number r in [0, 1). It
// returns -1 when no visited vertex has an unvisited neighbor.
func (w *wheel) roll(r float64) int {
	if r < 0 || 1 <= r {
		panic(fmt.Sprintf("r must be a random number in [0, 1), got: %f", r))
	}
	if w.totalWeight() == 0 {
		return -1
	}

	x := r * w.sumWeights[1]
	i := 1
	for i < w.n {
		l := i * 2
		r := l + 1
		if x < w.sumWeights[l] {
			i = l
		} else {
			i = r
			x -= w.sumWeights[l]
		}
	}
	return i - w.n
}
