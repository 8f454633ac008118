package knn

import (
	"fmt"

	"github.com/hupe1980/kvec/internal/errs"
)

var (
	// ErrInvalidK is returned when k is outside [1, n].
	ErrInvalidK = errs.InvalidArgument("invalid k")

	// ErrNoTraining is returned when the training set holds no items.
	ErrNoTraining = errs.InvalidArgument("no training data")

	// ErrEmptyNeighbors is returned when voting over an empty neighbor set.
	ErrEmptyNeighbors = errs.InvalidArgument("empty neighbor set")

	// ErrInvalidCategories is returned when the number of categories is not positive.
	ErrInvalidCategories = errs.InvalidArgument("number of categories must be positive")

	// ErrInvalidTestSize is returned when a split asks for a test set outside [0, n).
	ErrInvalidTestSize = errs.InvalidArgument("invalid test size")
)

// LabelError reports a neighbor whose label is outside [0, NumCategories).
// It matches errs.ErrInvalidArgument.
type LabelError struct {
	Neighbor      int
	Label         int
	NumCategories int
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("neighbor %d has label %d outside [0, %d)", e.Neighbor, e.Label, e.NumCategories)
}

func (e *LabelError) Unwrap() error { return errs.ErrInvalidArgument }
