package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
	"github.com/osse101/ShopKeeper_Go/internal/logger"
	"github.com/osse101/ShopKeeper_Go/internal/shop"
	"github.com/osse101/ShopKeeper_Go/internal/validation"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Details carries the
// underlying cause for import and file errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ValidationErrorResponse lists the form fields that were rejected
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// ItemsResponse wraps an ordered item list
type ItemsResponse struct {
	Items []shop.ItemView `json:"items"`
	Count int             `json:"count"`
}

func newItemsResponse(items []shop.ItemView) ItemsResponse {
	if items == nil {
		items = []shop.ItemView{}
	}
	return ItemsResponse{Items: items, Count: len(items)}
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed command and maps its error to a status
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	if errors.Is(err, domain.ErrValidation) {
		log.Debug(LogMsgRequestFailed, "operation", opName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidForm,
			Fields: validation.FieldErrors(err),
		})
		return
	}

	status, resp := mapServiceError(err)
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgRequestFailed, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgRequestFailed, "operation", opName, "error", err)
	}
	respondJSON(w, status, resp)
}

// mapServiceError converts domain errors to an HTTP status and a response
// body users can act on
func mapServiceError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrorResponse{Error: ErrMsgItemNotFound}
	case errors.Is(err, domain.ErrNoSelection):
		return http.StatusConflict, ErrorResponse{Error: ErrMsgNoSelection}
	case errors.Is(err, domain.ErrParse):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ErrMsgInvalidJSON, Details: err.Error()}
	case errors.Is(err, domain.ErrFormat):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ErrMsgDataFormat, Details: err.Error()}
	case errors.Is(err, domain.ErrIO):
		return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgFileFailed, Details: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgInvalidRequestSummary, Details: err.Error()}
	}
	return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
}
