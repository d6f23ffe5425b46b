package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"flight-service/internal/apperrors"
)

type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Fields    interface{} `json:"fields,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func SuccessResponse(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	WriteJSON(w, statusCode, APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// ErrorResponse writes the failure envelope with an explicit status, for
// failures that carry no domain error: auth rejections, malformed bodies.
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, APIResponse{
		Success:   false,
		Message:   "request failed",
		Error:     message,
		Timestamp: time.Now().UTC(),
	})
}

// WriteError maps a domain error onto its HTTP status: validation and
// constraint failures are client errors, missing resources are 404,
// anything else is a 500.
func WriteError(w http.ResponseWriter, err error) {
	resp := APIResponse{
		Success:   false,
		Message:   "request failed",
		Error:     err.Error(),
		Timestamp: time.Now().UTC(),
	}

	statusCode := http.StatusInternalServerError

	var validationErr *apperrors.ValidationError
	var constraintErr *apperrors.ConstraintError
	switch {
	case errors.As(err, &validationErr):
		statusCode = http.StatusBadRequest
		resp.Error = validationErr.Message
		if len(validationErr.Fields) > 0 {
			resp.Fields = validationErr.Fields
		}
	case errors.As(err, &constraintErr):
		statusCode = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
	default:
		resp.Error = "internal server error"
	}

	WriteJSON(w, statusCode, resp)
}
