package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region config

// Config is the YAML-configured shape of one dataset build.
type Config struct {
	DBPath    string `yaml:"db_path"`
	OutputDir string `yaml:"output_dir"`

	Sweep SweepSection `yaml:"sweep"`

	// XValues are the evaluation points for the π(x) comparison table.
	XValues []float64 `yaml:"x_values"`
	// MaxZeroHeight limits which zeros feed the explicit formula;
	// 0 uses every zero the sweep found.
	MaxZeroHeight float64 `yaml:"max_zero_height"`

	Tolerance ToleranceSection `yaml:"tolerance"`
}

// SweepSection configures the zero sweep stage.
type SweepSection struct {
	TStart    float64 `yaml:"t_start"`
	TEnd      float64 `yaml:"t_end"`
	Step      float64 `yaml:"step"`
	RefineTol float64 `yaml:"refine_tol"`
	Workers   int     `yaml:"workers"`
}

// ToleranceSection mirrors zeta.ToleranceConfig.
type ToleranceSection struct {
	AbsTol   float64 `yaml:"abs_tol"`
	MaxTerms int     `yaml:"max_terms"`
	MinTerms int     `yaml:"min_terms"`
}

// #endregion config

// #region load

// LoadConfig reads and validates a YAML pipeline config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	if c.DBPath == "" {
		c.DBPath = "riemann.db"
	}
	if c.OutputDir == "" {
		c.OutputDir = "data"
	}
	if c.Sweep.TStart == 0 && c.Sweep.TEnd == 0 {
		c.Sweep.TStart = 10
		c.Sweep.TEnd = 50
	}
	if c.Sweep.Step == 0 {
		c.Sweep.Step = 0.05
	}
	if len(c.XValues) == 0 {
		c.XValues = []float64{10, 50, 100, 500, 1000, 5000}
	}
	return c
}

// #endregion load
