// Package kvec provides k-means clustering and k-nearest-neighbor classification
// over small, fully in-memory datasets of real-valued feature vectors.
//
// The algorithms live in the kmeans and knn packages. This package ties them
// together with logging, metrics and seeded randomness so that a dataset can be
// clustered or classified in one call.
//
// # Clustering
//
//	ds := dataset.Prefectures()
//	res, _ := kvec.Cluster(ctx, ds, 3, kvec.WithSeed(42))
//	for c, members := range res.Clusters {
//	    fmt.Println(c, members)
//	}
//
// Cluster runs Lloyd's algorithm until the centroids stop changing. Ties in the
// assignment step go to the higher-indexed centroid. An empty cluster fails the
// run unless kmeans.EmptyClusterKeep is selected.
//
// # Classification
//
//	report, _ := kvec.Classify(ctx, dataset.ToyTraining(), dataset.ToyQueries(), 3, 3)
//	fmt.Println(report.Correct, report.Labeled)
//
// Neighbors are ranked by Euclidean distance. Ties in ranking go to the later
// training item, ties in voting go to the lowest category index.
//
// # Errors
//
// Every error returned by kvec and its subpackages matches one of
// ErrInvalidArgument, ErrDomain or ErrDataFormat via errors.Is.
package kvec
