// Package report renders clustering and classification results for the console
// and as JSON documents.
//
// Printer reproduces the classic fixed-width layout: vectors as
// `v(name)=[  x.xx  y.yy]^t`, centroids with five-wide fields, cluster
// membership by item name and a per-query verdict with a success tally.
// Colors are applied through lipgloss and degrade to plain text when the
// writer is not a terminal.
package report
