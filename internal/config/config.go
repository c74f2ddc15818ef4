package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ramp-metrics/internal/model"
	"ramp-metrics/internal/ramp"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration shape (YAML).
type Config struct {
	// Input is the path to the study JSON export.
	Input string `yaml:"input"`
	// ClustersFile optionally points at the thermal cluster descriptions
	// used for must-run derivation. Relative paths are resolved against the
	// config file directory when that resolves to an existing file.
	ClustersFile string `yaml:"clusters_file"`
	// Output is the directory CSV results are written into.
	Output string `yaml:"output"`

	Run RunConfig `yaml:"run"`
}

// RunConfig holds the pipeline parameters.
type RunConfig struct {
	TimeStep      string `yaml:"time_step"`
	Synthesis     bool   `yaml:"synthesis"`
	IgnoreMustRun bool   `yaml:"ignore_must_run"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.Output == "" {
		c.Output = "results"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the config without validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ClustersFile != "" && !filepath.IsAbs(c.ClustersFile) {
		cand := filepath.Join(filepath.Dir(path), c.ClustersFile)
		if _, err := os.Stat(cand); err == nil {
			c.ClustersFile = cand
		}
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Input == "" {
		return errors.New("input is required")
	}
	if _, err := model.ParseTimeStep(c.Run.TimeStep); err != nil {
		return fmt.Errorf("run config invalid: %w", err)
	}
	return nil
}

// ToParams converts the run section into pipeline parameters, attaching the
// cluster descriptions loaded by the caller (nil is allowed).
func (r RunConfig) ToParams(clusters []model.Cluster) (ramp.Params, error) {
	step, err := model.ParseTimeStep(r.TimeStep)
	if err != nil {
		return ramp.Params{}, err
	}
	return ramp.Params{
		TimeStep:      step,
		Synthesis:     r.Synthesis,
		IgnoreMustRun: r.IgnoreMustRun,
		Clusters:      clusters,
	}, nil
}
