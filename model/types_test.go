package model

import (
	"math"
	"testing"

	"github.com/hupe1980/kvec/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset(t *testing.T) {
	raw := [][]float64{{3, 7}, {3, 3}}
	ds := NewDataset(raw)

	require.Equal(t, 2, ds.Len())
	assert.Equal(t, 2, ds.Dim())
	assert.Equal(t, []string{"d1", "d2"}, ds.Names())
	assert.Equal(t, []int{Unlabeled, Unlabeled}, ds.Labels())
	assert.False(t, ds.Items[0].Labeled())

	// Input slices are copied.
	raw[0][0] = 100
	assert.Equal(t, 3.0, ds.Items[0].Vector[0])
}

func TestNewLabeledDataset(t *testing.T) {
	ds, err := NewLabeledDataset([][]float64{{7, 14}, {19, 16}}, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, ds.Labels())
	assert.True(t, ds.Items[1].Labeled())

	_, err = NewLabeledDataset([][]float64{{7, 14}}, []int{0, 1})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		ds      Dataset
		wantErr bool
	}{
		{"Valid", NewDataset([][]float64{{1, 2}, {3, 4}}), false},
		{"Empty", Dataset{}, true},
		{"ZeroDim", NewDataset([][]float64{{}, {}}), true},
		{"Mismatch", NewDataset([][]float64{{1, 2}, {3}}), true},
		{"NaN", NewDataset([][]float64{{1, math.NaN()}}), true},
		{"Inf", NewDataset([][]float64{{math.Inf(1), 0}}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ds.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLabels(t *testing.T) {
	ds, err := NewLabeledDataset([][]float64{{1}, {2}}, []int{0, 2})
	require.NoError(t, err)

	assert.NoError(t, ds.ValidateLabels(3))
	assert.ErrorIs(t, ds.ValidateLabels(2), errs.ErrInvalidArgument)
	assert.ErrorIs(t, ds.ValidateLabels(0), errs.ErrInvalidArgument)
	assert.ErrorIs(t, NewDataset([][]float64{{1}}).ValidateLabels(1), errs.ErrInvalidArgument)
}

func TestSubset(t *testing.T) {
	ds := NewDataset([][]float64{{1}, {2}, {3}})

	sub, err := ds.Subset([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"d3", "d1"}, sub.Names())

	sub.Items[0].Vector[0] = 42
	assert.Equal(t, 3.0, ds.Items[2].Vector[0])

	_, err = ds.Subset([]int{3})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestNormalize(t *testing.T) {
	ds := NewDataset([][]float64{{3, 4}, {0, 2}})

	norm, err := ds.Normalize()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, norm.Items[0].Vector, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 1}, norm.Items[1].Vector, 1e-12)

	// Source is untouched.
	assert.Equal(t, Vector{3, 4}, ds.Items[0].Vector)

	_, err = NewDataset([][]float64{{0, 0}}).Normalize()
	assert.ErrorIs(t, err, errs.ErrDomain)
}

func TestCategories(t *testing.T) {
	c := Categories{"north", "south"}
	assert.Equal(t, "south", c.Name(1))
	assert.Equal(t, "category(5)", c.Name(5))
	assert.Equal(t, "category(-1)", c.Name(-1))
}
