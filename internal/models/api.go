package models

import (
	json "github.com/goccy/go-json"
)

// SaveRequest is the POST /api/save payload. Data is kept raw: only the
// date format and data presence are checked, the day's shape is not.
type SaveRequest struct {
	Date string          `json:"date" validate:"required|regexp:^\\d{4}-\\d{2}-\\d{2}$" message:"regexp:date must match YYYY-MM-DD"`
	Data json.RawMessage `json:"data" validate:"required"`
}

// ImportRequest is the POST /api/import payload. Data must decode to a
// Document mapping.
type ImportRequest struct {
	Data json.RawMessage `json:"data"`
}

// ErrorResponse is the uniform failure envelope. Endpoints is populated
// only by the route-miss handler.
type ErrorResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Error     string            `json:"error,omitempty"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints,omitempty"`
}
