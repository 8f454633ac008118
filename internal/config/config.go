// Package config loads the kvec command configuration from YAML.
//
// Values of the form ${NAME} or $NAME in string fields are replaced by the
// environment before validation. Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/kvec/distance"
	"github.com/hupe1980/kvec/kmeans"
)

// Source kinds.
const (
	SourceBuiltin = "builtin"
	SourceLocal   = "local"
	SourceS3      = "s3"
	SourceMinIO   = "minio"
)

// Config is the root configuration.
type Config struct {
	Seed   int64        `yaml:"seed"`
	Log    LogConfig    `yaml:"log"`
	Source SourceConfig `yaml:"source"`
	KMeans KMeansConfig `yaml:"kmeans"`
	KNN    KNNConfig    `yaml:"knn"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// SourceConfig locates datasets.
type SourceConfig struct {
	Kind string `yaml:"kind"`

	// Path is the root directory for local sources.
	Path string `yaml:"path"`

	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`

	Retries            uint64        `yaml:"retries"`
	Backoff            time.Duration `yaml:"backoff"`
	MemoryLimitBytes   int64         `yaml:"memory_limit_bytes"`
	MaxConcurrentLoads int64         `yaml:"max_concurrent_loads"`
	IOLimitBytesPerSec int64         `yaml:"io_limit_bytes_per_sec"`
}

// KMeansConfig holds clustering parameters.
type KMeansConfig struct {
	Dataset string `yaml:"dataset"`
	Dim     int    `yaml:"dim"`
	// Labeled reports whether records carry a label column. Labels are ignored
	// by clustering.
	Labeled       bool    `yaml:"labeled"`
	K             int     `yaml:"k"`
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
	EmptyCluster  string  `yaml:"empty_cluster"`
	Normalize     bool    `yaml:"normalize"`
}

// KNNConfig holds classification parameters.
type KNNConfig struct {
	Dataset       string `yaml:"dataset"`
	Dim           int    `yaml:"dim"`
	K             int    `yaml:"k"`
	NumCategories int    `yaml:"num_categories"`
	TestSize      int    `yaml:"test_size"`
	Metric        string `yaml:"metric"`
	Normalize     bool   `yaml:"normalize"`
}

// OutputConfig selects the result rendering.
type OutputConfig struct {
	// Format is text or json.
	Format string `yaml:"format"`
	// Codec names the JSON codec; see codec.ByName.
	Codec string `yaml:"codec"`
}

// Default returns the configuration used when no file is given: the built-in
// prefecture dataset, k=3 clusters and 3 neighbors over 7 regions.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Source: SourceConfig{
			Kind:               SourceBuiltin,
			Path:               ".",
			Retries:            5,
			Backoff:            time.Second,
			MaxConcurrentLoads: 1,
		},
		KMeans: KMeansConfig{
			Dataset:      "prefectures.txt",
			Dim:          2,
			Labeled:      true,
			K:            3,
			EmptyCluster: "fail",
		},
		KNN: KNNConfig{
			Dataset:       "prefectures.txt",
			Dim:           2,
			K:             3,
			NumCategories: 7,
			TestSize:      10,
			Metric:        "l2",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load reads path over the defaults, expands environment variables and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults, expands environment variables and
// validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) expandEnvVars() {
	c.Source.Path = os.ExpandEnv(c.Source.Path)
	c.Source.Bucket = os.ExpandEnv(c.Source.Bucket)
	c.Source.Prefix = os.ExpandEnv(c.Source.Prefix)
	c.Source.Region = os.ExpandEnv(c.Source.Region)
	c.Source.Endpoint = os.ExpandEnv(c.Source.Endpoint)
	c.Source.AccessKey = os.ExpandEnv(c.Source.AccessKey)
	c.Source.SecretKey = os.ExpandEnv(c.Source.SecretKey)
	c.KMeans.Dataset = os.ExpandEnv(c.KMeans.Dataset)
	c.KNN.Dataset = os.ExpandEnv(c.KNN.Dataset)
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	var errsList []error

	if _, err := c.Log.SlogLevel(); err != nil {
		errsList = append(errsList, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errsList = append(errsList, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	switch c.Source.Kind {
	case SourceBuiltin, SourceLocal:
	case SourceS3, SourceMinIO:
		if c.Source.Bucket == "" {
			errsList = append(errsList, fmt.Errorf("source.bucket is required for %s sources", c.Source.Kind))
		}
		if c.Source.Kind == SourceMinIO && c.Source.Endpoint == "" {
			errsList = append(errsList, errors.New("source.endpoint is required for minio sources"))
		}
	default:
		errsList = append(errsList, fmt.Errorf("unknown source.kind %q", c.Source.Kind))
	}
	if c.Source.Backoff < 0 {
		errsList = append(errsList, errors.New("source.backoff must not be negative"))
	}
	if c.Source.MemoryLimitBytes < 0 || c.Source.IOLimitBytesPerSec < 0 || c.Source.MaxConcurrentLoads < 0 {
		errsList = append(errsList, errors.New("source limits must not be negative"))
	}

	if c.KMeans.K < 1 {
		errsList = append(errsList, fmt.Errorf("kmeans.k must be positive, got %d", c.KMeans.K))
	}
	if c.KMeans.Dim < 1 {
		errsList = append(errsList, fmt.Errorf("kmeans.dim must be positive, got %d", c.KMeans.Dim))
	}
	if c.KMeans.MaxIterations < 0 {
		errsList = append(errsList, errors.New("kmeans.max_iterations must not be negative"))
	}
	if c.KMeans.Tolerance < 0 {
		errsList = append(errsList, errors.New("kmeans.tolerance must not be negative"))
	}
	if _, err := kmeans.ParseEmptyClusterPolicy(c.KMeans.EmptyCluster); err != nil {
		errsList = append(errsList, fmt.Errorf("kmeans.empty_cluster: %w", err))
	}

	if c.KNN.K < 1 {
		errsList = append(errsList, fmt.Errorf("knn.k must be positive, got %d", c.KNN.K))
	}
	if c.KNN.Dim < 1 {
		errsList = append(errsList, fmt.Errorf("knn.dim must be positive, got %d", c.KNN.Dim))
	}
	if c.KNN.NumCategories < 1 {
		errsList = append(errsList, fmt.Errorf("knn.num_categories must be positive, got %d", c.KNN.NumCategories))
	}
	if c.KNN.TestSize < 0 {
		errsList = append(errsList, errors.New("knn.test_size must not be negative"))
	}
	if _, err := distance.ParseMetric(c.KNN.Metric); err != nil {
		errsList = append(errsList, fmt.Errorf("knn.metric: %w", err))
	}

	if c.Output.Format != "text" && c.Output.Format != "json" {
		errsList = append(errsList, fmt.Errorf("output.format must be text or json, got %q", c.Output.Format))
	}

	return errors.Join(errsList...)
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
