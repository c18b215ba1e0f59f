package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/mockify/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidAIMode  = "INVALID_AI_MODE"
	CodeStatsNotFound  = "STATS_NOT_FOUND"
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidFile    = "INVALID_FILE"
	CodeCorruptedFile  = "CORRUPTED_FILE"
	CodeAIError        = "AI_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidAIMode):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAIMode, "AI mode must be 'local' or 'cloud'"}}
	case errors.Is(err, model.ErrStatsNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeStatsNotFound, "No interview stats recorded"}}
	case errors.Is(err, model.ErrItemNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
	case errors.Is(err, model.ErrUnsupportedResume):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidFile, "Invalid file: use txt, pdf or docx"}}
	case errors.Is(err, model.ErrUnreadableResume):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeCorruptedFile, "Corrupted file: no text could be read"}}
	case errors.Is(err, model.ErrResumeAnalysisFailed):
		return &httpError{http.StatusBadGateway, APIError{CodeAIError, "AI Error: the model reply could not be read"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates a not found error
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
