package main

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/kvec"
	"github.com/hupe1980/kvec/dataset"
	"github.com/hupe1980/kvec/distance"
	"github.com/hupe1980/kvec/knn"
	"github.com/hupe1980/kvec/report"
)

func newKNNCmd(a *app) *cobra.Command {
	var (
		name          string
		dim           int
		k             int
		numCategories int
		testSize      int
		metric        string
		normalize     bool
	)

	cmd := &cobra.Command{
		Use:   "knn",
		Short: "Classify a random test split of a labeled dataset with k-NN",
		Example: `  kvec knn --k 3 --test-size 10
  kvec knn --source s3 --bucket datasets --dataset regions.txt.lz4 --num-categories 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nc := &a.cfg.KNN
			flags := cmd.Flags()
			if flags.Changed("dataset") {
				nc.Dataset = name
			}
			if flags.Changed("dim") {
				nc.Dim = dim
			}
			if flags.Changed("k") {
				nc.K = k
			}
			if flags.Changed("num-categories") {
				nc.NumCategories = numCategories
			}
			if flags.Changed("test-size") {
				nc.TestSize = testSize
			}
			if flags.Changed("metric") {
				nc.Metric = metric
			}
			if flags.Changed("normalize") {
				nc.Normalize = normalize
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			m, err := distance.ParseMetric(nc.Metric)
			if err != nil {
				return err
			}
			ds, err := a.load(cmd.Context(), nc.Dataset, dataset.KNNFormat(nc.Dim))
			if err != nil {
				return err
			}

			opts := append(a.options(), kvec.WithKNNOptions(knn.WithMetric(m)))
			if nc.Normalize {
				opts = append(opts, kvec.WithNormalize())
			}
			part, r, err := kvec.SplitAndClassify(cmd.Context(), ds, nc.NumCategories, nc.K, nc.TestSize, opts...)
			if err != nil {
				return err
			}
			a.logger.DebugContext(cmd.Context(), "run metrics", "stats", a.metrics.GetStats())

			categories := categoriesFor(nc.Dataset)
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return report.WriteJSON(out, a.codec, report.NewClassificationDocument(a.runID, part.Train, categories, nc.K, r))
			}

			p := report.NewPrinter(out)
			p.Dataset("training set", part.Train, categories)
			p.Dataset("test set", part.Test, categories)
			p.Classification(part.Train, categories, nc.K, r)
			return p.Err()
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&name, "dataset", dataset.PrefecturesName, "dataset name within the source")
	fs.IntVar(&dim, "dim", 2, "number of features per record")
	fs.IntVar(&k, "k", 3, "number of neighbors")
	fs.IntVar(&numCategories, "num-categories", 7, "number of label categories")
	fs.IntVar(&testSize, "test-size", 10, "number of items drawn as queries")
	fs.StringVar(&metric, "metric", "l2", "distance metric (l2, squaredl2)")
	fs.BoolVar(&normalize, "normalize", false, "scale vectors to unit length first")
	return cmd
}
