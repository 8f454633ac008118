// Package dataset reads feature vectors from whitespace-delimited text.
//
// Each non-blank line is one record:
//
//	<name> <f1> ... <fd>           KMeansFormat(d)
//	<name> <label> <f1> ... <fd>   KNNFormat(d)
//
// Files may be compressed; the codec is chosen by extension (".zst", ".lz4").
// A Loader reads them from any blobstore.BlobStore, retrying transient
// failures and reserving memory with a resource.Controller.
//
// The package also ships the small reference datasets used by the demo: the
// word-document matrix, the three-category toy set and the 47 prefectures.
package dataset
