// Package worksheet evaluates YAML files that name distributions, derive new
// ones through algebraic steps and query their density, CDF and quantiles.
package worksheet

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DistributionSpec is a base distribution declared in a worksheet.
type DistributionSpec struct {
	Mean     float64 `yaml:"mean"`
	Variance float64 `yaml:"variance"`
}

// Step derives a named distribution from earlier ones. Params are decoded
// according to Op.
type Step struct {
	Name   string         `yaml:"name"`
	Op     string         `yaml:"op"`
	Params map[string]any `yaml:"params"`
}

// Query lists points at which to evaluate a distribution.
type Query struct {
	Of  string    `yaml:"of"`
	PDF []float64 `yaml:"pdf,omitempty"`
	CDF []float64 `yaml:"cdf,omitempty"`
	PPF []float64 `yaml:"ppf,omitempty"`
}

// Worksheet is a parsed worksheet file.
type Worksheet struct {
	Distributions map[string]DistributionSpec `yaml:"distributions"`
	Steps         []Step                      `yaml:"steps,omitempty"`
	Queries       []Query                     `yaml:"queries,omitempty"`
}

// ValidationError lists schema violations found in a worksheet.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid worksheet:\n  " + strings.Join(e.Problems, "\n  ")
}

// Parse validates data against the worksheet schema and decodes it.
func Parse(data []byte) (*Worksheet, error) {
	if problems := Validate(data); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	var w Worksheet
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parsing worksheet: %w", err)
	}
	return &w, nil
}

// Load reads and parses the worksheet at path.
func Load(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet: %w", err)
	}
	return Parse(data)
}
