package knn

import (
	"context"
	"testing"

	"github.com/hupe1980/kvec/distance"
	"github.com/hupe1980/kvec/internal/errs"
	"github.com/hupe1980/kvec/model"
	"github.com/hupe1980/kvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toyDataset(t *testing.T) model.Dataset {
	t.Helper()
	raw := make([][]float64, len(toyTraining))
	for i, v := range toyTraining {
		raw[i] = v
	}
	ds, err := model.NewLabeledDataset(raw, toyLabels)
	require.NoError(t, err)
	return ds
}

func TestClassifier_Classify(t *testing.T) {
	clf, err := NewClassifier(toyDataset(t), 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, clf.K())

	pred, err := clf.Classify(model.Vector{26, 7})
	require.NoError(t, err)
	assert.Equal(t, []int{13, 15, 14}, pred.Neighbors)
	assert.Equal(t, 2, pred.Category)
	assert.InDelta(t, 3.0, pred.Distances[0], 1e-12)
	assert.Equal(t, pred.Distances[1], pred.Distances[2])

	_, err = clf.Classify(model.Vector{1, 2, 3})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestClassifier_SquaredMetric(t *testing.T) {
	clf, err := NewClassifier(toyDataset(t), 3, 3, WithMetric(distance.MetricSquaredL2))
	require.NoError(t, err)

	pred, err := clf.Classify(model.Vector{22, 15})
	require.NoError(t, err)
	assert.Equal(t, []int{6, 8, 15}, pred.Neighbors)
	assert.Equal(t, []float64{10, 16, 34}, pred.Distances)
	assert.Equal(t, 1, pred.Category)
}

func TestClassifier_Evaluate(t *testing.T) {
	clf, err := NewClassifier(toyDataset(t), 3, 3)
	require.NoError(t, err)

	queries, err := model.NewLabeledDataset([][]float64{{9, 16}, {16, 18}, {22, 15}, {26, 7}}, []int{0, 1, 2, 2})
	require.NoError(t, err)

	report, err := clf.Evaluate(context.Background(), queries)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 4)
	assert.Equal(t, 3, report.Correct)
	assert.Equal(t, 4, report.Labeled)
	assert.InDelta(t, 0.75, report.Accuracy(), 1e-12)
	assert.False(t, report.Outcomes[2].Correct)
	assert.Equal(t, 1, report.Outcomes[2].Prediction.Category)
	assert.Equal(t, "d3", report.Outcomes[2].Name)
}

func TestClassifier_EvaluateUnlabeled(t *testing.T) {
	clf, err := NewClassifier(toyDataset(t), 3, 3)
	require.NoError(t, err)

	report, err := clf.Evaluate(context.Background(), model.NewDataset([][]float64{{9, 16}}))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Labeled)
	assert.Equal(t, 0.0, report.Accuracy())
	assert.Equal(t, 0, report.Outcomes[0].Prediction.Category)
}

func TestClassifier_EvaluateCanceled(t *testing.T) {
	clf, err := NewClassifier(toyDataset(t), 3, 3)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = clf.Evaluate(ctx, model.NewDataset([][]float64{{9, 16}}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassifier_Clusters(t *testing.T) {
	ds := testutil.NewRNG(11).ClusteredDataset(60, 3, 3, 0.2)

	clf, err := NewClassifier(ds, 3, 5)
	require.NoError(t, err)

	report, err := clf.Evaluate(context.Background(), ds)
	require.NoError(t, err)
	assert.Equal(t, 60, report.Correct)
}

func TestNewClassifier_Invalid(t *testing.T) {
	ds := toyDataset(t)

	_, err := NewClassifier(model.Dataset{}, 3, 1)
	assert.ErrorIs(t, err, ErrNoTraining)

	_, err = NewClassifier(ds, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidCategories)

	_, err = NewClassifier(ds, 2, 1)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = NewClassifier(ds, 3, 19)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = NewClassifier(ds, 3, 3, WithMetric(distance.Metric(9)))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}
