// Package pipeline orchestrates the preprocessing transforms: it fits a
// one-hot encoder and optional min-max scaler and target label encoder
// on a training CSV, applies the fitted state to further inputs, and
// persists the state between the two.
package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tabprep/pkg/base"
)

// ScaleConfig selects min-max scaling of the encoded features into the
// range [Min, Max].
type ScaleConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Config describes a preprocessing pipeline. NumericColumns is the
// explicit allow-list deciding which feature columns are parsed as
// numbers; every other feature column is treated as categorical and
// one-hot encoded.
type Config struct {
	TargetColumn   string       `yaml:"target_column"`
	NumericColumns []string     `yaml:"numeric_columns"`
	EncodeTarget   bool         `yaml:"encode_target"`
	Scale          *ScaleConfig `yaml:"scale"`
}

// LoadConfig reads and validates a yaml pipeline configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration for structural problems and
// reports them as InvalidParameters.
func (c *Config) Validate() error {
	if c.TargetColumn == "" {
		return base.NewError(base.InvalidParameters, "target column must not be empty")
	}
	for _, column := range c.NumericColumns {
		if column == c.TargetColumn {
			return base.Errorf(base.InvalidParameters,
				"target column %s must not be listed in numeric columns", c.TargetColumn)
		}
	}
	if c.Scale != nil && c.Scale.Min >= c.Scale.Max {
		return base.Errorf(base.InvalidParameters,
			"scale range [%g, %g] is empty", c.Scale.Min, c.Scale.Max)
	}
	return nil
}
