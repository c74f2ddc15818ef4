package models

import "ramp-metrics/internal/model"

// RampResponse represents the response of a ramp computation.
type RampResponse struct {
	Status  string            `json:"status"`
	Summary RampSummary       `json:"summary"`
	Result  *model.Collection `json:"result"`
}

// RampSummary contains row counts and the attributes of the result.
type RampSummary struct {
	AreaRows     int    `json:"area_rows"`
	DistrictRows int    `json:"district_rows"`
	TimeStep     string `json:"time_step"`
	Synthesis    bool   `json:"synthesis"`
}

// TimeStepsResponse lists the supported output granularities.
type TimeStepsResponse struct {
	TimeSteps []string `json:"time_steps"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
