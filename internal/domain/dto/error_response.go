package dto

import "time"

// ErrorResponse is the standard JSON error body returned by the API.
//
// Fields:
//   - Message: short, user-facing description of the failure.
//   - ErrorDetails: optional underlying error text (omitted when empty).
//   - Timestamp: server time at which the error was produced.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"Failed to render dashboard"`
	ErrorDetails string    `json:"error,omitempty" example:"context deadline exceeded"`
	Timestamp    time.Time `json:"timestamp" example:"2025-08-25T10:23:54Z"`
}

// Error implements the error interface so an ErrorResponse can be
// propagated like any other error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error, stamped with the current time.
func NewErrorResponse(message string, err error) *ErrorResponse {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &ErrorResponse{
		Message:      message,
		ErrorDetails: details,
		Timestamp:    time.Now(),
	}
}
