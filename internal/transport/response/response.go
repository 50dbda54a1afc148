package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kwatari/article-quadrant/internal/apperr"
)

// Envelope represents a standard API response
type Envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Data    interface{}    `json:"data,omitempty"`
	Error   *apperr.Report `json:"error,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, envelope Envelope) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(envelope)
}

// WriteData writes a success response carrying a payload
func WriteData(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    data,
	})
}

// WriteMessage writes a success response carrying only a message
func WriteMessage(w http.ResponseWriter, message string) error {
	return WriteJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: message,
	})
}

// WriteError writes a structured error response. The error is converted into
// its report form so raw internals never cross the API boundary.
func WriteError(w http.ResponseWriter, err error) error {
	report := apperr.ReportFor(err)
	return WriteJSON(w, statusFor(err), Envelope{
		Success: false,
		Error:   &report,
	})
}

// WriteBadRequest writes a 400 validation error for malformed request bodies
func WriteBadRequest(w http.ResponseWriter, message, field string) error {
	return WriteError(w, apperr.NewValidation(message, field, nil))
}

func statusFor(err error) int {
	var validationErr *apperr.ValidationError
	var networkErr *apperr.NetworkError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &networkErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
