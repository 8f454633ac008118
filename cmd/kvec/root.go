package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hupe1980/kvec"
	"github.com/hupe1980/kvec/codec"
	"github.com/hupe1980/kvec/internal/config"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfgFile string
	cfg     *config.Config
	runID   string
	logger  *kvec.Logger
	metrics *kvec.BasicMetricsCollector
	codec   codec.Codec
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	var (
		logLevel  string
		logFormat string
		seed      int64
		output    string
		source    string
		path      string
		bucket    string
		prefix    string
		endpoint  string
	)

	root := &cobra.Command{
		Use:   "kvec",
		Short: "k-means clustering and k-NN classification of small vector datasets",
		Long: `kvec clusters datasets with Lloyd's k-means and classifies them with
k-nearest-neighbor majority voting.

Datasets are whitespace-separated text records, optionally compressed with
zstd (.zst) or lz4 (.lz4), read from the built-in store, a local directory,
S3 or MinIO.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if a.cfgFile != "" {
				loaded, err := config.Load(a.cfgFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if flags.Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("output") {
				cfg.Output.Format = output
			}
			if flags.Changed("source") {
				cfg.Source.Kind = source
			}
			if flags.Changed("path") {
				cfg.Source.Path = path
			}
			if flags.Changed("bucket") {
				cfg.Source.Bucket = bucket
			}
			if flags.Changed("prefix") {
				cfg.Source.Prefix = prefix
			}
			if flags.Changed("endpoint") {
				cfg.Source.Endpoint = endpoint
			}
			return a.init(cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML configuration file")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	pf.Int64Var(&seed, "seed", 0, "random seed; 0 draws a fresh seed")
	pf.StringVarP(&output, "output", "o", "text", "result format (text, json)")
	pf.StringVar(&source, "source", config.SourceBuiltin, "dataset source (builtin, local, s3, minio)")
	pf.StringVar(&path, "path", ".", "root directory of the local source")
	pf.StringVar(&bucket, "bucket", "", "bucket of the s3 or minio source")
	pf.StringVar(&prefix, "prefix", "", "key prefix of the s3 or minio source")
	pf.StringVar(&endpoint, "endpoint", "", "endpoint of the s3 or minio source")

	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		newKMeansCmd(a),
		newKNNCmd(a),
		newDemoCmd(a),
		newVersionCmd(a),
	)
	return root
}

// init validates cfg and builds the logger, codec and run id.
func (a *app) init(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	if cfg.Log.Format == "json" {
		a.logger = kvec.NewJSONLogger(a.stderr, level)
	} else {
		a.logger = kvec.NewTextLogger(a.stderr, level)
	}
	a.logger = a.logger.WithRunID(a.runID)
	a.metrics = &kvec.BasicMetricsCollector{}

	c, ok := codec.ByName(cfg.Output.Codec)
	if !ok {
		return fmt.Errorf("unknown output codec %q (want one of %s)", cfg.Output.Codec, strings.Join(codec.Names(), ", "))
	}
	a.codec = c
	return nil
}

// options returns the library options shared by every run.
func (a *app) options() []kvec.Option {
	opts := []kvec.Option{
		kvec.WithLogger(a.logger),
		kvec.WithMetricsCollector(a.metrics),
	}
	if a.cfg.Seed != 0 {
		opts = append(opts, kvec.WithSeed(a.cfg.Seed))
	}
	return opts
}

func (a *app) jsonOutput() bool {
	return a.cfg.Output.Format == "json"
}
