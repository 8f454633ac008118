package distance

import (
	"fmt"
	"math"
	"strings"

	"github.com/hupe1980/kvec/internal/errs"
)

// ErrDimensionMismatch is returned when two vectors of different length are compared.
// It matches errs.ErrInvalidArgument (re-exported as kvec.ErrInvalidArgument).
type ErrDimensionMismatch struct {
	Left  int
	Right int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %d vs %d", e.Left, e.Right)
}

func (e *ErrDimensionMismatch) Unwrap() error { return errs.ErrInvalidArgument }

// SquaredEuclidean calculates the squared Euclidean distance between two vectors.
func SquaredEuclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Left: len(a), Right: len(b)}
	}
	return sumSquares(a, b), nil
}

// Euclidean calculates the Euclidean distance between two vectors.
// It is the square root of SquaredEuclidean over the same accumulation.
func Euclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Left: len(a), Right: len(b)}
	}
	return math.Sqrt(sumSquares(a, b)), nil
}

// sumSquares accumulates in index order; callers rely on that order for
// bit-identical tie detection.
func sumSquares(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricSquaredL2
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricSquaredL2:
		return "SquaredL2"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric parses a metric name as printed by String, case-insensitively.
// "euclidean" is accepted for MetricL2. The empty string means MetricL2.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(s) {
	case "", "l2", "euclidean":
		return MetricL2, nil
	case "squaredl2", "squared_l2":
		return MetricSquaredL2, nil
	default:
		return 0, fmt.Errorf("%w: unknown metric %q", errs.ErrInvalidArgument, s)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) (float64, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return Euclidean, nil
	case MetricSquaredL2:
		return SquaredEuclidean, nil
	default:
		return nil, fmt.Errorf("%w: unsupported metric %v", errs.ErrInvalidArgument, m)
	}
}
