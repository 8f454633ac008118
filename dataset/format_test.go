package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/hupe1980/kvec/internal/errs"
	"github.com/hupe1980/kvec/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_KMeans(t *testing.T) {
	in := "Sapporo 43.06 141.35\n\n  Sendai\t38.27 140.87  \n"

	ds, err := Parse(strings.NewReader(in), KMeansFormat(2))
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "Sapporo", ds.Items[0].Name)
	assert.Equal(t, model.Vector{43.06, 141.35}, ds.Items[0].Vector)
	assert.Equal(t, model.Unlabeled, ds.Items[1].Category)
	assert.Equal(t, model.Vector{38.27, 140.87}, ds.Items[1].Vector)
}

func TestParse_KNN(t *testing.T) {
	in := "Tokyo 1 35.69 139.69\nOsaka 3 34.69 135.52\n"

	ds, err := Parse(strings.NewReader(in), KNNFormat(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ds.Labels())
	assert.Equal(t, []string{"Tokyo", "Osaka"}, ds.Names())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		format Format
		line   int
		reason string
	}{
		{"too few fields", "a 1\n", KMeansFormat(2), 1, "expected 3 fields, got 2"},
		{"too many fields", "a 1 2\nb 1 2 3\n", KMeansFormat(2), 2, "expected 3 fields, got 4"},
		{"non numeric", "a 1 x\n", KMeansFormat(2), 1, `component 2 "x" is not a number`},
		{"bad label", "\na one 1 2\n", KNNFormat(2), 2, `label "one" is not an integer`},
		{"negative label", "a -1 1 2\n", KNNFormat(2), 1, "label -1 is negative"},
		{"nan", "a NaN 2\n", KMeansFormat(2), 1, "not finite"},
		{"inf", "a 1 +Inf\n", KMeansFormat(2), 1, "not finite"},
		{"empty", "\n\n", KMeansFormat(2), 0, "no records"},
		{"zero dim", "a\n", KMeansFormat(0), 0, "dimension 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Parse(strings.NewReader(tt.in), tt.format)
			require.Error(t, err)
			assert.Equal(t, 0, ds.Len())
			assert.True(t, errors.Is(err, errs.ErrDataFormat))

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.line, fe.Line)
			assert.Contains(t, fe.Reason, tt.reason)
		})
	}
}

func TestFormatError_Error(t *testing.T) {
	assert.Equal(t, "dataset:3: bad", (&FormatError{Line: 3, Reason: "bad"}).Error())
	assert.Equal(t, "pref.txt:3: bad", (&FormatError{Name: "pref.txt", Line: 3, Reason: "bad"}).Error())
	assert.Equal(t, "pref.txt: no records", (&FormatError{Name: "pref.txt", Reason: "no records"}).Error())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, 3, KMeansFormat(2).Fields())
	assert.Equal(t, 4, KNNFormat(2).Fields())
	assert.Equal(t, "labeled(dim=2)", KNNFormat(2).String())
	assert.Equal(t, "unlabeled(dim=12)", KMeansFormat(12).String())
}
