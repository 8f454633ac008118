// Package selection tracks sets of selected item indices.
//
// It replaces list-membership scans in the samplers and the top-k extractor
// with a Roaring bitmap while leaving iteration order to the caller.
package selection

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a set of non-negative item indices backed by a 32-bit Roaring bitmap.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Add adds an index to the set. It reports whether the index was newly added.
func (s *Set) Add(idx int) bool {
	return s.rb.CheckedAdd(uint32(idx))
}

// Contains reports whether the index is in the set.
func (s *Set) Contains(idx int) bool {
	return s.rb.Contains(uint32(idx))
}

// Len returns the number of indices in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// Sorted returns the indices in ascending order.
func (s *Set) Sorted() []int {
	out := make([]int, 0, s.Len())
	it := s.rb.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Complement returns the indices in [0, n) not in the set, ascending.
func (s *Set) Complement(n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !s.Contains(i) {
			out = append(out, i)
		}
	}
	return out
}
