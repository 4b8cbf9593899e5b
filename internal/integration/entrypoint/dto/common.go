// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an API error response. Fields carries the
// per-field validation messages when the error is a validation failure.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse represents a simple confirmation response.
type MessageResponse struct {
	Message string `json:"message"`
}
