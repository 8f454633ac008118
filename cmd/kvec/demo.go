package main

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/kvec"
	"github.com/hupe1980/kvec/dataset"
	"github.com/hupe1980/kvec/kmeans"
	"github.com/hupe1980/kvec/report"
)

type demoDocument struct {
	Clustering     report.ClusteringDocument     `json:"clustering"`
	Classification report.ClassificationDocument `json:"classification"`
}

func newDemoCmd(a *app) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Cluster the word-document matrix and classify the toy queries",
		Long: `demo runs both algorithms on the built-in literal datasets.

The four rows of the word-document matrix are scaled to unit length and
clustered into two clusters. The four toy queries d101 to d104 are then
classified against the 18-item toy training set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			policy, err := kmeans.ParseEmptyClusterPolicy(a.cfg.KMeans.EmptyCluster)
			if err != nil {
				return err
			}

			docs := dataset.WordDocuments()
			var iterations []kmeans.Iteration
			clustering, err := kvec.Cluster(ctx, docs, 2, append(a.options(),
				kvec.WithNormalize(),
				kvec.WithIterationHook(func(it kmeans.Iteration) { iterations = append(iterations, it) }),
				kvec.WithKMeansOptions(kmeans.WithEmptyClusterPolicy(policy)),
			)...)
			if err != nil {
				return err
			}

			training, queries := dataset.ToyTraining(), dataset.ToyQueries()
			r, err := kvec.Classify(ctx, training, queries, len(dataset.ToyCategories), k, a.options()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return report.WriteJSON(out, a.codec, demoDocument{
					Clustering:     report.NewClusteringDocument(a.runID, docs, clustering.Result, clustering.Evaluation),
					Classification: report.NewClassificationDocument(a.runID, training, dataset.ToyCategories, k, r),
				})
			}

			p := report.NewPrinter(out)
			p.Dataset("word-document matrix", docs, nil)
			p.Initialization(docs, clustering.Result)
			for _, it := range iterations {
				p.Iteration(docs, it)
			}
			p.Clusters(docs, clustering.Clusters)
			if clustering.Evaluation != nil {
				p.Evaluation(clustering.Evaluation)
			}

			p.Dataset("toy training set", training, dataset.ToyCategories)
			p.Dataset("toy queries", queries, nil)
			p.Classification(training, dataset.ToyCategories, k, r)
			return p.Err()
		},
	}

	cmd.Flags().IntVar(&k, "k", 3, "number of neighbors for the toy queries")
	return cmd
}
