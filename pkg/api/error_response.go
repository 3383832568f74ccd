package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// ErrorResponse represents a standard JSON error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Code    int    `json:"code"`
}

// WriteJSONError writes a JSON error response with the given status code and message
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeError(w, ErrorResponse{Message: message, Code: statusCode})
}

// WriteDomainError maps a store or view error to its HTTP status
func WriteDomainError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, ErrorResponse{Message: ve.Reason, Field: ve.Field, Code: http.StatusUnprocessableEntity})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrIndexOutOfRange):
		writeError(w, ErrorResponse{Message: err.Error(), Code: http.StatusNotFound})
	default:
		writeError(w, ErrorResponse{Message: err.Error(), Code: http.StatusInternalServerError})
	}
}

func writeError(w http.ResponseWriter, response ErrorResponse) {
	response.Error = http.StatusText(response.Code)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.Code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("ERROR: Failed to encode error response: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: Failed to encode response: %v", err)
	}
}
