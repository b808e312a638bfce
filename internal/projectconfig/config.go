// Package projectconfig provides the ProjectConfig struct and loader for
// .gauss.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by Load.
const FileName = ".gauss.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultSampleCount = 10
	DefaultWorkers     = 4

	DefaultFormat    = "auto"
	DefaultPrecision = 6

	DefaultConfidence = 0.95
)

// DefaultQuantiles are the probabilities reported by gauss describe.
var DefaultQuantiles = []float64{0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99}

// SamplingConfig holds defaults for gauss sample.
type SamplingConfig struct {
	Count   int     `yaml:"count,omitempty"`
	Workers int     `yaml:"workers,omitempty"`
	Seed    *uint64 `yaml:"seed,omitempty"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format    string `yaml:"format,omitempty"`
	Precision int    `yaml:"precision,omitempty"`
}

// DescribeConfig holds defaults for gauss describe.
type DescribeConfig struct {
	Confidence float64   `yaml:"confidence,omitempty"`
	Quantiles  []float64 `yaml:"quantiles,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .gauss.yaml.
type ProjectConfig struct {
	Sampling SamplingConfig `yaml:"sampling,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Describe DescribeConfig `yaml:"describe,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Sampling: SamplingConfig{
			Count:   DefaultSampleCount,
			Workers: DefaultWorkers,
		},
		Output: OutputConfig{
			Format:    DefaultFormat,
			Precision: DefaultPrecision,
		},
		Describe: DescribeConfig{
			Confidence: DefaultConfidence,
			Quantiles:  append([]float64(nil), DefaultQuantiles...),
		},
	}
}

// Load finds .gauss.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .gauss.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for range 10 {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Sampling
	if src.Sampling.Count != 0 {
		dst.Sampling.Count = src.Sampling.Count
	}
	if src.Sampling.Workers != 0 {
		dst.Sampling.Workers = src.Sampling.Workers
	}
	if src.Sampling.Seed != nil {
		dst.Sampling.Seed = src.Sampling.Seed
	}

	// Output
	if src.Output.Format != "" {
		dst.Output.Format = src.Output.Format
	}
	if src.Output.Precision != 0 {
		dst.Output.Precision = src.Output.Precision
	}

	// Describe
	if src.Describe.Confidence != 0 {
		dst.Describe.Confidence = src.Describe.Confidence
	}
	if len(src.Describe.Quantiles) > 0 {
		dst.Describe.Quantiles = src.Describe.Quantiles
	}
}
