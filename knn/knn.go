package knn

import (
	"fmt"
	"math"

	"github.com/hupe1980/kvec/distance"
	"github.com/hupe1980/kvec/internal/errs"
	"github.com/hupe1980/kvec/internal/selection"
	"github.com/hupe1980/kvec/model"
)

// Distances returns the Euclidean distance from query to every training vector,
// in training order.
func Distances(query model.Vector, training []model.Vector) ([]float64, error) {
	return distancesWith(distance.Euclidean, query, training)
}

func distancesWith(fn distance.Func, query model.Vector, training []model.Vector) ([]float64, error) {
	out := make([]float64, len(training))
	for i, v := range training {
		d, err := fn(query, v)
		if err != nil {
			return nil, fmt.Errorf("training item %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}

// TopK returns the indices of the k smallest distances, nearest first.
//
// Each round scans every not yet selected index in ascending order and keeps a
// candidate whose distance is less than or equal to the running minimum, so on
// exact ties the later index is selected first.
func TopK(distances []float64, k int) ([]int, error) {
	n := len(distances)
	if n == 0 {
		return nil, ErrNoTraining
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d must be in [1, %d]", ErrInvalidK, k, n)
	}

	selected := selection.New()
	topk := make([]int, 0, k)
	for len(topk) < k {
		best := -1
		minDist := math.Inf(1)
		for j, d := range distances {
			if selected.Contains(j) {
				continue
			}
			if d <= minDist {
				minDist = d
				best = j
			}
		}
		// Only NaN distances can leave best unset.
		if best < 0 {
			return nil, errs.InvalidArgument("distances are not comparable")
		}
		selected.Add(best)
		topk = append(topk, best)
	}
	return topk, nil
}

// Rank returns the indices of the k training vectors nearest to query.
func Rank(query model.Vector, training []model.Vector, k int) ([]int, error) {
	if len(training) == 0 {
		return nil, ErrNoTraining
	}
	dists, err := Distances(query, training)
	if err != nil {
		return nil, err
	}
	return TopK(dists, k)
}

// Vote returns the majority category among the neighbors.
//
// labels[i] is the category of training item i. Categories are scanned in
// ascending order with a strict comparison, so the lowest category holding the
// maximum count wins.
func Vote(neighbors []int, labels []int, numCategories int) (int, error) {
	if len(neighbors) == 0 {
		return 0, ErrEmptyNeighbors
	}
	if numCategories <= 0 {
		return 0, ErrInvalidCategories
	}

	counts := make([]int, numCategories)
	for _, idx := range neighbors {
		if idx < 0 || idx >= len(labels) {
			return 0, fmt.Errorf("%w: neighbor %d out of range [0, %d)", errs.ErrInvalidArgument, idx, len(labels))
		}
		label := labels[idx]
		if label < 0 || label >= numCategories {
			return 0, &LabelError{Neighbor: idx, Label: label, NumCategories: numCategories}
		}
		counts[label]++
	}

	winner, maxCount := 0, 0
	for c, n := range counts {
		if n > maxCount {
			maxCount = n
			winner = c
		}
	}
	return winner, nil
}
