package knn

import (
	"fmt"

	"github.com/hupe1980/kvec/internal/selection"
	"github.com/hupe1980/kvec/model"
)

// Source supplies uniformly distributed indices. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a pseudo-random number in [0, n).
	Intn(n int) int
}

// Split partitions the indices [0, n) into a training and a test set.
//
// testSize indices are drawn uniformly without replacement and returned in
// draw order. The training indices are the remainder in ascending order.
func Split(src Source, n, testSize int) (train []int, test []int, err error) {
	if n <= 0 {
		return nil, nil, ErrNoTraining
	}
	if testSize < 0 || testSize >= n {
		return nil, nil, fmt.Errorf("%w: test size %d must be in [0, %d)", ErrInvalidTestSize, testSize, n)
	}

	drawn := selection.New()
	test = make([]int, 0, testSize)
	for len(test) < testSize {
		idx := src.Intn(n)
		if drawn.Add(idx) {
			test = append(test, idx)
		}
	}
	return drawn.Complement(n), test, nil
}

// Partition is a dataset split into training and test items.
type Partition struct {
	Train model.Dataset
	Test  model.Dataset
	// TrainIndices and TestIndices map partition positions back to the source dataset.
	TrainIndices []int
	TestIndices  []int
}

// SplitDataset splits ds with Split and copies the items into two datasets.
func SplitDataset(src Source, ds model.Dataset, testSize int) (*Partition, error) {
	train, test, err := Split(src, ds.Len(), testSize)
	if err != nil {
		return nil, err
	}
	trainDS, err := ds.Subset(train)
	if err != nil {
		return nil, err
	}
	testDS, err := ds.Subset(test)
	if err != nil {
		return nil, err
	}
	return &Partition{
		Train:        trainDS,
		Test:         testDS,
		TrainIndices: train,
		TestIndices:  test,
	}, nil
}
