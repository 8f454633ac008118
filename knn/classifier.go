package knn

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hupe1980/kvec/distance"
	"github.com/hupe1980/kvec/model"
)

// Prediction is the classification of a single query.
type Prediction struct {
	// Neighbors are training indices, nearest first.
	Neighbors []int `json:"neighbors"`
	// Distances holds the distance to each neighbor under the classifier's metric.
	Distances []float64 `json:"distances"`
	// Category is the majority category of the neighbors.
	Category int `json:"category"`
}

// Outcome pairs a query with its prediction.
type Outcome struct {
	Index      int        `json:"index"`
	Name       string     `json:"name"`
	Actual     int        `json:"actual"`
	Prediction Prediction `json:"prediction"`
	// Correct is false for unlabeled queries.
	Correct bool `json:"correct"`
}

// Report is the result of classifying a query set.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
	// Correct counts labeled queries whose prediction matches the label.
	Correct int `json:"correct"`
	// Labeled counts queries that carry a label.
	Labeled int `json:"labeled"`
}

// Accuracy returns Correct / Labeled, or 0 when no query is labeled.
func (r *Report) Accuracy() float64 {
	if r.Labeled == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Labeled)
}

// Classifier classifies query vectors against a fixed labeled training set.
// It is safe for concurrent use; it never mutates its training set.
type Classifier struct {
	training      model.Dataset
	vectors       []model.Vector
	labels        []int
	numCategories int
	k             int
	dist          distance.Func
	logger        *slog.Logger
}

// NewClassifier validates the training set and returns a classifier voting
// over the k nearest training items.
func NewClassifier(training model.Dataset, numCategories, k int, optFns ...Option) (*Classifier, error) {
	o := applyOptions(optFns)

	if training.Len() == 0 {
		return nil, ErrNoTraining
	}
	if err := training.Validate(); err != nil {
		return nil, err
	}
	if numCategories <= 0 {
		return nil, ErrInvalidCategories
	}
	if err := training.ValidateLabels(numCategories); err != nil {
		return nil, err
	}
	if k < 1 || k > training.Len() {
		return nil, fmt.Errorf("%w: k=%d must be in [1, %d]", ErrInvalidK, k, training.Len())
	}
	fn, err := distance.Provider(o.metric)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		training:      training,
		vectors:       training.Vectors(),
		labels:        training.Labels(),
		numCategories: numCategories,
		k:             k,
		dist:          fn,
		logger:        o.logger,
	}, nil
}

// K returns the number of neighbors consulted per query.
func (c *Classifier) K() int { return c.k }

// Training returns the training set.
func (c *Classifier) Training() model.Dataset { return c.training }

// Classify predicts the category of query.
func (c *Classifier) Classify(query model.Vector) (*Prediction, error) {
	dists, err := distancesWith(c.dist, query, c.vectors)
	if err != nil {
		return nil, err
	}
	neighbors, err := TopK(dists, c.k)
	if err != nil {
		return nil, err
	}
	category, err := Vote(neighbors, c.labels, c.numCategories)
	if err != nil {
		return nil, err
	}

	nd := make([]float64, len(neighbors))
	for i, idx := range neighbors {
		nd[i] = dists[idx]
	}
	return &Prediction{
		Neighbors: neighbors,
		Distances: nd,
		Category:  category,
	}, nil
}

// Evaluate classifies every query and tallies the correct predictions.
// The context is checked before each query; any failure aborts the whole run.
func (c *Classifier) Evaluate(ctx context.Context, queries model.Dataset) (*Report, error) {
	report := &Report{
		Outcomes: make([]Outcome, 0, queries.Len()),
	}
	for i, q := range queries.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pred, err := c.Classify(q.Vector)
		if err != nil {
			return nil, fmt.Errorf("query %d (%s): %w", i, q.Name, err)
		}

		out := Outcome{
			Index:      i,
			Name:       q.Name,
			Actual:     q.Category,
			Prediction: *pred,
		}
		if q.Labeled() {
			report.Labeled++
			if pred.Category == q.Category {
				out.Correct = true
				report.Correct++
			}
		}
		c.logger.DebugContext(ctx, "query classified", "query", q.Name, "predicted", pred.Category, "actual", q.Category)
		report.Outcomes = append(report.Outcomes, out)
	}
	return report, nil
}
