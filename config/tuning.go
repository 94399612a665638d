package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/patterndex/model"
	"github.com/jsphweid/patterndex/score"
	"github.com/jsphweid/patterndex/summary"
)

// TuningConfig overrides scoring constants. Every field is optional; unset
// fields fall back to the built-in defaults.
type TuningConfig struct {
	DensityClamp   *float64 `json:"density_clamp,omitempty"`
	DominanceRatio *float64 `json:"dominance_ratio,omitempty"`

	// Weights maps a pattern label such as "Dense HS" to its multiplier.
	Weights map[string]float64 `json:"weights,omitempty"`
}

func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig reads and validates a tuning file.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *TuningConfig) Validate() error {
	if c.DensityClamp != nil && *c.DensityClamp <= 0 {
		return fmt.Errorf("density_clamp must be positive, got %f", *c.DensityClamp)
	}
	if c.DominanceRatio != nil {
		if *c.DominanceRatio <= 0 || *c.DominanceRatio > 1 {
			return fmt.Errorf("dominance_ratio must be in (0, 1], got %f", *c.DominanceRatio)
		}
	}
	for label, w := range c.Weights {
		p, err := model.ParsePattern(label)
		if err != nil {
			return fmt.Errorf("weights: %w", err)
		}
		if p.IsNone() || p.Sub == model.SubAll {
			return fmt.Errorf("weights: %q is not a measure pattern", label)
		}
		if w < 0 {
			return fmt.Errorf("weights: %q must be non-negative, got %f", label, w)
		}
	}
	return nil
}

func (c *TuningConfig) GetDensityClamp() float64 {
	if c.DensityClamp == nil {
		return score.DefaultMaxDensity
	}
	return *c.DensityClamp
}

func (c *TuningConfig) GetDominanceRatio() float64 {
	if c.DominanceRatio == nil {
		return summary.DefaultRatio
	}
	return *c.DominanceRatio
}

// GetWeights returns the default weight table with any overrides applied.
// Labels are assumed valid; Validate rejects the rest.
func (c *TuningConfig) GetWeights() score.Weights {
	weights := score.DefaultWeights()
	for label, w := range c.Weights {
		if p, err := model.ParsePattern(label); err == nil {
			weights[p] = w
		}
	}
	return weights
}

func (c *TuningConfig) Scorer() score.Scorer {
	return score.Scorer{Weights: c.GetWeights(), MaxDensity: c.GetDensityClamp()}
}
