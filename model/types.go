package model

import (
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/kvec/internal/errs"
)

// Unlabeled is the Category of items that carry no label.
const Unlabeled = -1

// Vector is an ordered, fixed-length sequence of real numbers.
type Vector []float64

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// Item is a feature vector paired with an identifying name and a category.
type Item struct {
	Name     string `json:"name"`
	Category int    `json:"category"`
	Vector   Vector `json:"vector"`
}

// Labeled reports whether the item carries a category label.
func (it Item) Labeled() bool {
	return it.Category >= 0
}

// Dataset is an ordered collection of items.
// Order is preserved from the source and used for display indexing.
type Dataset struct {
	Items []Item `json:"items"`
}

// NewDataset builds an unlabeled dataset from raw vectors.
// Items are named "d1", "d2", ... in input order.
func NewDataset(vectors [][]float64) Dataset {
	items := make([]Item, len(vectors))
	for i, v := range vectors {
		items[i] = Item{
			Name:     fmt.Sprintf("d%d", i+1),
			Category: Unlabeled,
			Vector:   slices.Clone(v),
		}
	}
	return Dataset{Items: items}
}

// NewLabeledDataset builds a labeled dataset from raw vectors and labels.
func NewLabeledDataset(vectors [][]float64, labels []int) (Dataset, error) {
	if len(vectors) != len(labels) {
		return Dataset{}, errs.InvalidArgument(fmt.Sprintf("vectors and labels length mismatch: %d != %d", len(vectors), len(labels)))
	}
	ds := NewDataset(vectors)
	for i := range ds.Items {
		ds.Items[i].Category = labels[i]
	}
	return ds, nil
}

// Len returns the number of items.
func (d Dataset) Len() int {
	return len(d.Items)
}

// Dim returns the vector dimension, or 0 for an empty dataset.
func (d Dataset) Dim() int {
	if len(d.Items) == 0 {
		return 0
	}
	return len(d.Items[0].Vector)
}

// Vectors returns the item vectors in dataset order.
// The returned vectors alias the dataset's storage.
func (d Dataset) Vectors() []Vector {
	out := make([]Vector, len(d.Items))
	for i := range d.Items {
		out[i] = d.Items[i].Vector
	}
	return out
}

// Labels returns the item categories in dataset order.
func (d Dataset) Labels() []int {
	out := make([]int, len(d.Items))
	for i := range d.Items {
		out[i] = d.Items[i].Category
	}
	return out
}

// Names returns the item names in dataset order.
func (d Dataset) Names() []string {
	out := make([]string, len(d.Items))
	for i := range d.Items {
		out[i] = d.Items[i].Name
	}
	return out
}

// Validate checks the dataset invariants: at least one item, dimension >= 1,
// a single shared dimension and finite components.
func (d Dataset) Validate() error {
	if len(d.Items) == 0 {
		return errs.InvalidArgument("dataset is empty")
	}
	dim := len(d.Items[0].Vector)
	if dim == 0 {
		return errs.InvalidArgument("dataset vectors have dimension 0")
	}
	for i, it := range d.Items {
		if len(it.Vector) != dim {
			return errs.InvalidArgument(fmt.Sprintf("item %d (%s) has dimension %d, expected %d", i, it.Name, len(it.Vector), dim))
		}
		for j, x := range it.Vector {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return errs.InvalidArgument(fmt.Sprintf("item %d (%s) component %d is not finite", i, it.Name, j))
			}
		}
	}
	return nil
}

// ValidateLabels checks that every item carries a label in [0, numCategories).
func (d Dataset) ValidateLabels(numCategories int) error {
	if numCategories <= 0 {
		return errs.InvalidArgument("number of categories must be positive")
	}
	for i, it := range d.Items {
		if it.Category < 0 || it.Category >= numCategories {
			return errs.InvalidArgument(fmt.Sprintf("item %d (%s) has category %d outside [0, %d)", i, it.Name, it.Category, numCategories))
		}
	}
	return nil
}

// Subset returns a new dataset holding copies of the items at the given indices,
// in the order given.
func (d Dataset) Subset(indices []int) (Dataset, error) {
	items := make([]Item, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(d.Items) {
			return Dataset{}, errs.InvalidArgument(fmt.Sprintf("index %d out of range [0, %d)", idx, len(d.Items)))
		}
		it := d.Items[idx]
		it.Vector = it.Vector.Clone()
		items[i] = it
	}
	return Dataset{Items: items}, nil
}

// Normalize returns a copy of the dataset with every vector scaled to unit L2 norm.
// A zero vector cannot be normalized and yields a domain error.
func (d Dataset) Normalize() (Dataset, error) {
	items := make([]Item, len(d.Items))
	for i, it := range d.Items {
		var sum2 float64
		for _, x := range it.Vector {
			sum2 += x * x
		}
		if sum2 == 0 {
			return Dataset{}, errs.Domain(fmt.Sprintf("item %d (%s) has zero norm", i, it.Name))
		}
		norm := math.Sqrt(sum2)
		v := make(Vector, len(it.Vector))
		for j, x := range it.Vector {
			v[j] = x / norm
		}
		it.Vector = v
		items[i] = it
	}
	return Dataset{Items: items}, nil
}

// Categories holds category names indexed by label.
type Categories []string

// Name returns the name of the given category, or a placeholder when out of range.
func (c Categories) Name(category int) string {
	if category < 0 || category >= len(c) {
		return fmt.Sprintf("category(%d)", category)
	}
	return c[category]
}
