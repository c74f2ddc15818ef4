// Package study loads and saves simulation dataset exports: the area and
// district tables of a study, its thermal cluster descriptions, and CSV
// exports of computed results.
package study

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ramp-metrics/internal/model"
)

// LoadStudyJSON reads a study export holding an areas and/or districts table.
func LoadStudyJSON(path string) (*model.Collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read study file: %w", err)
	}
	var c model.Collection
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to parse study file: %w", err)
	}
	if c.Areas != nil && c.Areas.TimeStep == "" {
		c.Areas.TimeStep = model.StepHourly
	}
	if c.Districts != nil && c.Districts.TimeStep == "" {
		c.Districts.TimeStep = model.StepHourly
	}
	return &c, nil
}

// SaveStudyJSON writes a collection as an indented JSON study export.
func SaveStudyJSON(c *model.Collection, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal study: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write study file: %w", err)
	}
	return nil
}
