package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/voice-transcriber/internal/apperr"
	"github.com/sbilibin2017/voice-transcriber/internal/logger"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable message
	// default: Transcription failed.
	Error string `json:"error"`

	// Technical detail of the failure, when available
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a plain success message
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Deleted successfully.
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status code and writes it as ErrorResponse.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	resp := ErrorResponse{Error: "Internal server error"}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		resp.Error = appErr.Message
		switch appErr.Kind {
		case apperr.KindPayloadInvalid, apperr.KindRecognitionFailed, apperr.KindStorageUnavailable, apperr.KindInvalidInput:
			resp.Details = appErr.Details()
		}
	}

	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Errorw("request failed", "status", status, "err", err)
	}
	writeJSON(w, status, resp)
}
