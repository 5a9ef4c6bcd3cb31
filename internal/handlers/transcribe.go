package handlers

//go:generate mockgen -source=transcribe.go -destination=transcribe_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/voice-transcriber/internal/middlewares"
	"github.com/sbilibin2017/voice-transcriber/internal/models"
)

// AudioIngestor pulls the audio payload out of a multipart request.
type AudioIngestor interface {
	Ingest(w http.ResponseWriter, r *http.Request) (*models.AudioUpload, error)
}

// Transcriber runs recognition and stores the result.
type Transcriber interface {
	Transcribe(ctx context.Context, userID uuid.UUID, upload *models.AudioUpload, language string, sourceType models.SourceType) (*models.Transcription, error)
}

// NewTranscribeHandler accepts an audio file and returns the stored transcription.
// @Summary Transcribe audio
// @Description Uploads an audio file (max 25 MiB, audio/* only), transcribes it and stores the result
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file"
// @Param language formData string false "Language code" default(en-US)
// @Param sourceType formData string false "upload or record" default(upload)
// @Success 201 {object} models.Transcription
// @Failure 400 {object} handlers.ErrorResponse "No file / bad type / too large"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Transcription failed."
// @Router /transcribe [post]
// @Security BearerAuth
func NewTranscribeHandler(ingestor AudioIngestor, svc Transcriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, r, errNoUser)
			return
		}

		upload, err := ingestor.Ingest(w, r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		record, err := svc.Transcribe(r.Context(), userID, upload,
			r.FormValue("language"), models.SourceType(r.FormValue("sourceType")))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, record)
	}
}
