package main

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/kvec"
	"github.com/hupe1980/kvec/dataset"
	"github.com/hupe1980/kvec/kmeans"
	"github.com/hupe1980/kvec/model"
	"github.com/hupe1980/kvec/report"
)

func newKMeansCmd(a *app) *cobra.Command {
	var (
		name          string
		dim           int
		labeled       bool
		k             int
		maxIterations int
		tolerance     float64
		emptyCluster  string
		normalize     bool
	)

	cmd := &cobra.Command{
		Use:   "kmeans",
		Short: "Cluster a dataset with k-means",
		Example: `  kvec kmeans --k 3
  kvec kmeans --source local --path ./data --dataset points.txt.zst --dim 2 --labeled=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kc := &a.cfg.KMeans
			flags := cmd.Flags()
			if flags.Changed("dataset") {
				kc.Dataset = name
			}
			if flags.Changed("dim") {
				kc.Dim = dim
			}
			if flags.Changed("labeled") {
				kc.Labeled = labeled
			}
			if flags.Changed("k") {
				kc.K = k
			}
			if flags.Changed("max-iterations") {
				kc.MaxIterations = maxIterations
			}
			if flags.Changed("tolerance") {
				kc.Tolerance = tolerance
			}
			if flags.Changed("empty-cluster") {
				kc.EmptyCluster = emptyCluster
			}
			if flags.Changed("normalize") {
				kc.Normalize = normalize
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ds, err := a.load(cmd.Context(), kc.Dataset, dataset.Format{Dim: kc.Dim, Labeled: kc.Labeled})
			if err != nil {
				return err
			}
			return a.runKMeans(cmd, ds, kc.Dataset)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&name, "dataset", dataset.PrefecturesName, "dataset name within the source")
	fs.IntVar(&dim, "dim", 2, "number of features per record")
	fs.BoolVar(&labeled, "labeled", true, "records carry a label column")
	fs.IntVar(&k, "k", 3, "number of clusters")
	fs.IntVar(&maxIterations, "max-iterations", 0, "iteration cap; 0 runs until convergence")
	fs.Float64Var(&tolerance, "tolerance", 0, "convergence tolerance; 0 requires exact equality")
	fs.StringVar(&emptyCluster, "empty-cluster", "fail", "empty cluster policy (fail, keep)")
	fs.BoolVar(&normalize, "normalize", false, "scale vectors to unit length first")
	return cmd
}

func (a *app) runKMeans(cmd *cobra.Command, ds model.Dataset, title string) error {
	kc := a.cfg.KMeans
	policy, err := kmeans.ParseEmptyClusterPolicy(kc.EmptyCluster)
	if err != nil {
		return err
	}

	var iterations []kmeans.Iteration
	opts := append(a.options(),
		kvec.WithIterationHook(func(it kmeans.Iteration) { iterations = append(iterations, it) }),
		kvec.WithKMeansOptions(
			kmeans.WithMaxIterations(kc.MaxIterations),
			kmeans.WithTolerance(kc.Tolerance),
			kmeans.WithEmptyClusterPolicy(policy),
		),
	)
	if kc.Normalize {
		opts = append(opts, kvec.WithNormalize())
	}

	res, err := kvec.Cluster(cmd.Context(), ds, kc.K, opts...)
	if err != nil {
		return err
	}
	a.logger.DebugContext(cmd.Context(), "run metrics", "stats", a.metrics.GetStats())

	out := cmd.OutOrStdout()
	if a.jsonOutput() {
		return report.WriteJSON(out, a.codec, report.NewClusteringDocument(a.runID, ds, res.Result, res.Evaluation))
	}

	p := report.NewPrinter(out)
	p.Dataset(title, ds, nil)
	p.Initialization(ds, res.Result)
	for _, it := range iterations {
		p.Iteration(ds, it)
	}
	p.Clusters(ds, res.Clusters)
	if res.Evaluation != nil {
		p.Evaluation(res.Evaluation)
	}
	return p.Err()
}
