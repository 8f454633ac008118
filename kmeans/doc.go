// Package kmeans implements Lloyd's k-means clustering over small in-memory
// datasets, together with the intra/inter-cluster variance evaluation.
//
// The loop alternates Assign and Update until the recomputed centroids are
// element-wise equal to the previous ones:
//
//	src := rand.New(rand.NewSource(seed))
//	res, err := kmeans.Run(ctx, src, ds.Vectors(), 8)
//	eval, err := kmeans.Evaluate(ds.Vectors(), res.Centroids, res.Clusters)
//
// Tie-breaking is part of the observable behavior: an item equidistant from
// several centroids joins the highest-indexed one.
//
// Exact floating-point equality can in principle oscillate forever; use
// WithMaxIterations or WithTolerance to bound a run.
package kmeans
