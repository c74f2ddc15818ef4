package models

import "ramp-metrics/internal/model"

// RampRequest represents the request body for a ramp computation.
// Data carries the study tables; a request may hold areas, districts or both.
type RampRequest struct {
	Data     *model.Collection `json:"data" binding:"required"`
	Clusters []model.Cluster   `json:"clusters,omitempty"`
	Options  RampOptions       `json:"options"`
}

// RampOptions contains the pipeline parameters.
type RampOptions struct {
	TimeStep      string `json:"time_step,omitempty"` // default: "hourly"
	Synthesis     bool   `json:"synthesis,omitempty"`
	IgnoreMustRun bool   `json:"ignore_must_run,omitempty"`
}
