package kmeans

import (
	"context"
	"math/rand"
	"testing"

	"github.com/hupe1980/kvec/distance"
	"github.com/hupe1980/kvec/internal/errs"
	"github.com/hupe1980/kvec/model"
	"github.com/hupe1980/kvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vecs(raw ...[]float64) []model.Vector {
	out := make([]model.Vector, len(raw))
	for i, r := range raw {
		out[i] = model.Vector(r)
	}
	return out
}

// wordDocuments is the 4x12 word-document matrix of the classic example.
var wordDocuments = vecs(
	[]float64{3, 7, 6, 3, 0, 0, 0, 0, 0, 0, 0, 0},
	[]float64{3, 3, 0, 3, 9, 2, 0, 0, 0, 0, 0, 0},
	[]float64{0, 0, 0, 0, 0, 1, 3, 6, 5, 9, 0, 0},
	[]float64{0, 0, 0, 0, 0, 3, 0, 4, 6, 0, 5, 5},
)

func TestInitCentroids(t *testing.T) {
	vectors := vecs([]float64{0, 0}, []float64{1, 1}, []float64{2, 2}, []float64{3, 3})

	// Draws of already selected indices are rejected.
	centroids, indices, err := InitCentroids(testutil.NewSequence(1, 1, 1, 3), vectors, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, indices)
	assert.Equal(t, vecs([]float64{1, 1}, []float64{3, 3}), centroids)

	// Centroids are copies.
	centroids[0][0] = 99
	assert.Equal(t, 1.0, vectors[1][0])
}

func TestInitCentroids_InvalidK(t *testing.T) {
	vectors := vecs([]float64{0}, []float64{1})

	_, _, err := InitCentroids(testutil.NewSequence(0), vectors, 3)
	assert.ErrorIs(t, err, ErrInvalidK)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.ErrorContains(t, err, "exceeds dataset size")

	_, _, err = InitCentroids(testutil.NewSequence(0), vectors, 0)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, _, err = InitCentroids(testutil.NewSequence(0), nil, 1)
	assert.ErrorIs(t, err, ErrNoVectors)
}

func TestInitCentroids_AllDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	vectors := testutil.NewRNG(3).RandomVectors(20, 2)

	_, indices, err := InitCentroids(rng, vectors, 20)
	require.NoError(t, err)
	seen := map[int]bool{}
	for _, idx := range indices {
		assert.False(t, seen[idx], "index %d selected twice", idx)
		seen[idx] = true
	}
	assert.Len(t, seen, 20)
}

func TestAssign(t *testing.T) {
	vectors := vecs([]float64{3, 7}, []float64{3, 3}, []float64{0, 1}, []float64{0, 3})
	centroids := vecs([]float64{3, 7}, []float64{0, 1})

	clusters, err := Assign(vectors, centroids)
	require.NoError(t, err)
	assert.Equal(t, []Cluster{{0}, {1, 2, 3}}, clusters)
}

func TestAssign_TieGoesToLaterCentroid(t *testing.T) {
	vectors := vecs([]float64{1, 0}, []float64{5, 5})
	centroids := vecs([]float64{0, 0}, []float64{2, 0}, []float64{5, 5})

	clusters, err := Assign(vectors, centroids)
	require.NoError(t, err)
	assert.Equal(t, []Cluster{{}, {0}, {1}}, clusters)

	// Identical centroids: everything lands in the last one.
	clusters, err = Assign(vectors, vecs([]float64{0, 0}, []float64{0, 0}))
	require.NoError(t, err)
	assert.Empty(t, clusters[0])
	assert.Equal(t, Cluster{0, 1}, clusters[1])
}

func TestAssign_Errors(t *testing.T) {
	_, err := Assign(vecs([]float64{1}), nil)
	assert.ErrorIs(t, err, ErrNoCentroids)

	_, err = Assign(vecs([]float64{1, 2}), vecs([]float64{1}))
	var dm *distance.ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestAssign_Minimizer(t *testing.T) {
	rng := testutil.NewRNG(42)
	vectors := rng.RandomVectors(50, 3)
	centroids := rng.RandomVectors(5, 3)

	clusters, err := Assign(vectors, centroids)
	require.NoError(t, err)

	total := 0
	for c, members := range clusters {
		total += len(members)
		for _, idx := range members {
			own, err := distance.Euclidean(vectors[idx], centroids[c])
			require.NoError(t, err)
			for other := range centroids {
				d, err := distance.Euclidean(vectors[idx], centroids[other])
				require.NoError(t, err)
				assert.GreaterOrEqual(t, d, own, "item %d closer to centroid %d than to %d", idx, other, c)
			}
		}
	}
	assert.Equal(t, len(vectors), total)
}

func TestUpdate(t *testing.T) {
	vectors := vecs([]float64{3, 7}, []float64{3, 3}, []float64{0, 1}, []float64{0, 3})

	centroids, err := Update(vectors, []Cluster{{0}, {1, 2, 3}}, nil, EmptyClusterFail)
	require.NoError(t, err)
	require.Len(t, centroids, 2)
	assert.Equal(t, model.Vector{3, 7}, centroids[0])
	assert.InDeltaSlice(t, []float64{1, 7.0 / 3}, centroids[1], 1e-12)
}

func TestUpdate_EmptyCluster(t *testing.T) {
	vectors := vecs([]float64{1, 1}, []float64{2, 2})
	previous := vecs([]float64{1, 1}, []float64{9, 9})

	_, err := Update(vectors, []Cluster{{0, 1}, {}}, previous, EmptyClusterFail)
	require.Error(t, err)
	var ec *EmptyClusterError
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, 1, ec.Cluster)
	assert.ErrorIs(t, err, errs.ErrDomain)
	assert.ErrorContains(t, err, "empty cluster encountered during centroid update")

	centroids, err := Update(vectors, []Cluster{{0, 1}, {}}, previous, EmptyClusterKeep)
	require.NoError(t, err)
	assert.Equal(t, model.Vector{1.5, 1.5}, centroids[0])
	assert.Equal(t, model.Vector{9, 9}, centroids[1])

	// The retained centroid is a copy.
	centroids[1][0] = 0
	assert.Equal(t, 9.0, previous[1][0])

	_, err = Update(vectors, []Cluster{{}}, nil, EmptyClusterKeep)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestUpdate_InvalidMember(t *testing.T) {
	_, err := Update(vecs([]float64{1}), []Cluster{{3}}, nil, EmptyClusterFail)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Update(nil, []Cluster{{0}}, nil, EmptyClusterFail)
	assert.ErrorIs(t, err, ErrNoVectors)
}

func TestEqual(t *testing.T) {
	a := vecs([]float64{1, 2}, []float64{3, 4})
	b := vecs([]float64{1, 2}, []float64{3, 4.0000001})

	assert.True(t, Equal(a, a, 0))
	assert.False(t, Equal(a, b, 0))
	assert.True(t, Equal(a, b, 1e-6))
	assert.False(t, Equal(a, a[:1], 0))
	assert.False(t, Equal(a, vecs([]float64{1, 2}, []float64{3}), 0))
}

func TestParseEmptyClusterPolicy(t *testing.T) {
	p, err := ParseEmptyClusterPolicy("keep")
	require.NoError(t, err)
	assert.Equal(t, EmptyClusterKeep, p)

	p, err = ParseEmptyClusterPolicy("")
	require.NoError(t, err)
	assert.Equal(t, EmptyClusterFail, p)
	assert.Equal(t, "fail", p.String())

	_, err = ParseEmptyClusterPolicy("reseed")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestRun_WordDocuments(t *testing.T) {
	res, err := Run(context.Background(), testutil.NewSequence(0, 2), wordDocuments, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, res.Initial)
	assert.Equal(t, []Cluster{{0, 1}, {2, 3}}, res.Clusters)
	assert.Equal(t, 2, res.Iterations)
	assert.InDeltaSlice(t, []float64{3, 5, 3, 3, 4.5, 1, 0, 0, 0, 0, 0, 0}, res.Centroids[0], 1e-12)
}

func TestRun_Planar(t *testing.T) {
	vectors := vecs([]float64{3, 7}, []float64{3, 3}, []float64{0, 1}, []float64{0, 3})

	res, err := Run(context.Background(), testutil.NewSequence(0, 2), vectors, 2)
	require.NoError(t, err)
	assert.Equal(t, []Cluster{{0}, {1, 2, 3}}, res.Clusters)
}

func TestRun_FixedPoint(t *testing.T) {
	rng := testutil.NewRNG(11)
	vectors := rng.RandomVectors(40, 2)

	res, err := Run(context.Background(), rand.New(rand.NewSource(5)), vectors, 3, WithEmptyClusterPolicy(EmptyClusterKeep))
	require.NoError(t, err)

	clusters, next, err := Iterate(vectors, res.Centroids, EmptyClusterKeep)
	require.NoError(t, err)
	assert.Equal(t, res.Centroids, next)
	assert.Equal(t, res.Clusters, clusters)
}

func TestRun_EmptyCluster(t *testing.T) {
	vectors := vecs([]float64{0, 0}, []float64{0, 0}, []float64{5, 5})

	_, err := Run(context.Background(), testutil.NewSequence(0, 1), vectors, 2)
	var ec *EmptyClusterError
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, 0, ec.Cluster)

	res, err := Run(context.Background(), testutil.NewSequence(0, 1), vectors, 2, WithEmptyClusterPolicy(EmptyClusterKeep))
	require.NoError(t, err)
	assert.Equal(t, []Cluster{{0, 1}, {2}}, res.Clusters)
	assert.Equal(t, vecs([]float64{0, 0}, []float64{5, 5}), res.Centroids)
}

func TestRun_MaxIterations(t *testing.T) {
	_, err := Run(context.Background(), testutil.NewSequence(0, 2), wordDocuments, 2, WithMaxIterations(1))
	assert.ErrorIs(t, err, ErrNotConverged)
	assert.ErrorIs(t, err, errs.ErrDomain)

	res, err := Run(context.Background(), testutil.NewSequence(0, 2), wordDocuments, 2, WithMaxIterations(2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Iterations)
}

func TestRun_Hook(t *testing.T) {
	var seen []Iteration
	res, err := Run(context.Background(), testutil.NewSequence(0, 2), wordDocuments, 2,
		WithIterationHook(func(it Iteration) { seen = append(seen, it) }),
	)
	require.NoError(t, err)
	require.Len(t, seen, res.Iterations)
	assert.False(t, seen[0].Converged)
	assert.True(t, seen[len(seen)-1].Converged)
	assert.Equal(t, 1, seen[0].Index)
}

func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, testutil.NewSequence(0, 2), wordDocuments, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidInput(t *testing.T) {
	ctx := context.Background()

	_, err := Run(ctx, testutil.NewSequence(0), nil, 1)
	assert.ErrorIs(t, err, ErrNoVectors)

	_, err = Run(ctx, testutil.NewSequence(0), vecs([]float64{1, 2}, []float64{1}), 1)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Run(ctx, testutil.NewSequence(0), wordDocuments, 5)
	assert.ErrorIs(t, err, ErrInvalidK)
}
