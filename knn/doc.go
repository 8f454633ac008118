// Package knn implements k-nearest-neighbor classification by exhaustive
// distance ranking and majority vote.
//
// Ranking is a full linear scan followed by repeated-minimum extraction. On
// exact distance ties the later training item is selected first. Voting counts
// neighbor categories and picks the lowest-numbered category among those with
// the maximum count.
//
//	clf, err := knn.NewClassifier(training, len(categories), 3)
//	pred, err := clf.Classify(query)
//	fmt.Println(categories.Name(pred.Category))
package knn
