// Package model defines the data types shared by the k-means and k-NN pipelines.
//
// # Data Types
//
//   - Vector: fixed-length feature vector ([]float64)
//   - Item: a named vector with an optional category label
//   - Dataset: ordered collection of items sharing one dimension
//   - Categories: category names indexed by label
//
// Datasets are loaded once and treated as read-only. Operations that derive
// new data (Subset, Normalize) return fresh copies.
package model
