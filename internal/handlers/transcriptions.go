package handlers

//go:generate mockgen -source=transcriptions.go -destination=transcriptions_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/voice-transcriber/internal/apperr"
	"github.com/sbilibin2017/voice-transcriber/internal/middlewares"
	"github.com/sbilibin2017/voice-transcriber/internal/models"
)

// TranscriptionLister lists the caller's transcriptions.
type TranscriptionLister interface {
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Transcription, error)
}

// TranscriptionDeleter deletes one of the caller's transcriptions.
type TranscriptionDeleter interface {
	DeleteByID(ctx context.Context, userID, id uuid.UUID) error
}

var errNoUser = apperr.New(apperr.KindUnauthorized, "Unauthorized access.")

// NewListTranscriptionsHandler returns the caller's transcriptions, newest first.
// @Summary List transcriptions
// @Description Returns the authenticated user's transcriptions, newest first
// @Tags transcriptions
// @Produce json
// @Success 200 {array} models.Transcription
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch transcriptions"
// @Router /transcriptions [get]
// @Security BearerAuth
func NewListTranscriptionsHandler(svc TranscriptionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, r, errNoUser)
			return
		}

		items, err := svc.ListByOwner(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// NewDeleteTranscriptionHandler deletes a transcription owned by the caller.
// @Summary Delete a transcription
// @Tags transcriptions
// @Produce json
// @Param id path string true "Transcription ID"
// @Success 200 {object} handlers.MessageResponse "Deleted successfully."
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not authorized."
// @Failure 404 {object} handlers.ErrorResponse "Transcription not found."
// @Router /transcriptions/{id} [delete]
// @Security BearerAuth
func NewDeleteTranscriptionHandler(svc TranscriptionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, r, errNoUser)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, apperr.New(apperr.KindNotFound, "Transcription not found."))
			return
		}

		if err := svc.DeleteByID(r.Context(), userID, id); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Deleted successfully."})
	}
}
