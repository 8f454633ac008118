package testutil

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/kvec/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// RandomVectors generates random vectors with values in range [0, 1).
func (r *RNG) RandomVectors(num int, dimensions int) []model.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([]model.Vector, num)
	for i := range vectors {
		vec := make(model.Vector, dimensions)
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}
	return vectors
}

// ClusteredDataset generates a labeled dataset with num items spread around
// `clusters` well separated centers. Item i belongs to cluster i % clusters
// and carries that cluster as its category.
func (r *RNG) ClusteredDataset(num, dim, clusters int, spread float64) model.Dataset {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([]model.Vector, clusters)
	for c := range centers {
		center := make(model.Vector, dim)
		for j := range center {
			center[j] = float64(c*10) + r.rand.Float64()
		}
		centers[c] = center
	}

	items := make([]model.Item, num)
	for i := range items {
		c := i % clusters
		vec := make(model.Vector, dim)
		for j := range vec {
			vec[j] = centers[c][j] + r.rand.NormFloat64()*spread
		}
		items[i] = model.Item{
			Name:     fmt.Sprintf("p%d", i+1),
			Category: c,
			Vector:   vec,
		}
	}
	return model.Dataset{Items: items}
}

// Sequence is a scripted index source. Intn returns the scripted values in
// order, cycling when exhausted, reduced modulo n.
type Sequence struct {
	values []int
	pos    int
	mu     sync.Mutex
}

// NewSequence creates a Sequence over the given values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn returns the next scripted value modulo n.
func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

// Calls returns how many values have been drawn.
func (s *Sequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// ExactTopK returns the indices of the k smallest distances using a stable
// sort. Among equal distances the higher index ranks first, matching the
// neighbor ranker's tie-break.
func ExactTopK(distances []float64, k int) []int {
	idx := make([]int, len(distances))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		da, db := distances[idx[a]], distances[idx[b]]
		if da != db {
			return da < db
		}
		return idx[a] > idx[b]
	})
	if k > len(idx) {
		k = len(idx)
	}
	return idx[:k]
}
