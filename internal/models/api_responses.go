package models

import "time"

// AdviceRequest represents the request body for a boot size check.
// BootSize stays a string so the advisor can tell empty input from malformed input.
type AdviceRequest struct {
	HarnessSize *float64 `json:"harness_size" binding:"required"`
	BootSize    string   `json:"boot_size"`
}

// AdviceResponse wraps the advisory returned for a boot size check
type AdviceResponse struct {
	HarnessSize float64  `json:"harness_size"`
	Advisory    Advisory `json:"advisory"`
}

// ModelInfoResponse describes the model backing the estimator
type ModelInfoResponse struct {
	Source      string     `json:"source"`
	Name        string     `json:"name"`
	Formula     string     `json:"formula,omitempty"`
	Feature     string     `json:"feature,omitempty"`
	Intercept   float64    `json:"intercept,omitempty"`
	Coefficient float64    `json:"coefficient,omitempty"`
	TrainedAt   *time.Time `json:"trained_at,omitempty"`
	LoadedAt    *time.Time `json:"loaded_at,omitempty"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
