package models

import (
	"fmt"
	"math"
	"time"
)

// RegressionModel is a trained single-feature linear regression that maps
// harness size (cm) to boot size.
type RegressionModel struct {
	Name        string     `json:"name" yaml:"name"`
	Formula     string     `json:"formula" yaml:"formula"`
	Feature     string     `json:"feature" yaml:"feature"`
	Intercept   float64    `json:"intercept" yaml:"intercept"`
	Coefficient float64    `json:"coefficient" yaml:"coefficient"`
	MinInput    *float64   `json:"min_input,omitempty" yaml:"min_input,omitempty"`
	MaxInput    *float64   `json:"max_input,omitempty" yaml:"max_input,omitempty"`
	TrainedAt   *time.Time `json:"trained_at,omitempty" yaml:"trained_at,omitempty"`
}

// Validate checks that the artifact is usable for prediction
func (m *RegressionModel) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("model name is empty")
	}
	if math.IsNaN(m.Intercept) || math.IsInf(m.Intercept, 0) {
		return fmt.Errorf("model %s: intercept is not finite", m.Name)
	}
	if math.IsNaN(m.Coefficient) || math.IsInf(m.Coefficient, 0) {
		return fmt.Errorf("model %s: coefficient is not finite", m.Name)
	}
	if m.MinInput != nil && m.MaxInput != nil && *m.MinInput > *m.MaxInput {
		return fmt.Errorf("model %s: min_input %.2f exceeds max_input %.2f", m.Name, *m.MinInput, *m.MaxInput)
	}
	return nil
}

// Predict evaluates the regression for a single input.
// Inputs outside the declared training range, and non-finite results, are rejected.
func (m *RegressionModel) Predict(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("input %v is not finite", x)
	}
	if m.MinInput != nil && x < *m.MinInput {
		return 0, fmt.Errorf("input %.2f below trained range (min %.2f)", x, *m.MinInput)
	}
	if m.MaxInput != nil && x > *m.MaxInput {
		return 0, fmt.Errorf("input %.2f above trained range (max %.2f)", x, *m.MaxInput)
	}

	y := m.Intercept + m.Coefficient*x
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("prediction for %.2f is not finite", x)
	}
	return y, nil
}
