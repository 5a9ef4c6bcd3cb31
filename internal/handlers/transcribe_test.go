package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/voice-transcriber/internal/apperr"
	"github.com/sbilibin2017/voice-transcriber/internal/audio"
	"github.com/sbilibin2017/voice-transcriber/internal/models"
	"github.com/sbilibin2017/voice-transcriber/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadRequest(t *testing.T, fileName, contentType string, data []byte, values map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range values {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="audio"; filename="`+fileName+`"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestTranscribeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	wav := bytes.Repeat([]byte{0x01}, 10*1024)

	t.Run("forwards form values", func(t *testing.T) {
		svc := NewMockTranscriber(ctrl)
		svc.EXPECT().
			Transcribe(gomock.Any(), userID, gomock.Any(), "de-DE", models.SourceRecord).
			DoAndReturn(func(_ context.Context, uid uuid.UUID, upload *models.AudioUpload, lang string, st models.SourceType) (*models.Transcription, error) {
				assert.Equal(t, "memo.webm", upload.FileName)
				assert.Equal(t, "audio/webm", upload.MIMEType)
				return &models.Transcription{ID: uuid.New(), FileName: upload.FileName, TranscriptionText: "hallo", Language: lang, SourceType: st, UserID: uid}, nil
			})

		req := newUploadRequest(t, "memo.webm", "audio/webm", wav, map[string]string{"language": "de-DE", "sourceType": "record"})
		rr := httptest.NewRecorder()
		NewTranscribeHandler(audio.NewIngestor(audio.DefaultMaxBytes), svc).ServeHTTP(rr, withUser(req, userID))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp map[string]any
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "hallo", resp["transcriptionText"])
		assert.Equal(t, "record", resp["sourceType"])
	})

	t.Run("missing file never reaches the service", func(t *testing.T) {
		svc := NewMockTranscriber(ctrl)

		req := newUploadRequest(t, "", "", nil, map[string]string{"language": "en-US"})
		rr := httptest.NewRecorder()
		NewTranscribeHandler(audio.NewIngestor(audio.DefaultMaxBytes), svc).ServeHTTP(rr, withUser(req, userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"No audio file uploaded."}`, rr.Body.String())
	})

	t.Run("non-audio file rejected", func(t *testing.T) {
		svc := NewMockTranscriber(ctrl)

		req := newUploadRequest(t, "notes.txt", "text/plain", []byte("hello"), nil)
		rr := httptest.NewRecorder()
		NewTranscribeHandler(audio.NewIngestor(audio.DefaultMaxBytes), svc).ServeHTTP(rr, withUser(req, userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("ingestor error", func(t *testing.T) {
		ingestor := NewMockAudioIngestor(ctrl)
		ingestor.EXPECT().Ingest(gomock.Any(), gomock.Any()).
			Return(nil, apperr.Wrap(apperr.KindPayloadInvalid, "Upload failed", errors.New("file too large")))
		svc := NewMockTranscriber(ctrl)

		rr := httptest.NewRecorder()
		NewTranscribeHandler(ingestor, svc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/transcribe", nil), userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Upload failed","details":"file too large"}`, rr.Body.String())
	})

	t.Run("recognition failure", func(t *testing.T) {
		svc := NewMockTranscriber(ctrl)
		svc.EXPECT().Transcribe(gomock.Any(), userID, gomock.Any(), "", models.SourceType("")).
			Return(nil, apperr.Wrap(apperr.KindRecognitionFailed, "Transcription failed.", errors.New("quota exceeded")))

		req := newUploadRequest(t, "clip.wav", "audio/wav", wav, nil)
		rr := httptest.NewRecorder()
		NewTranscribeHandler(audio.NewIngestor(audio.DefaultMaxBytes), svc).ServeHTTP(rr, withUser(req, userID))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Transcription failed.","details":"quota exceeded"}`, rr.Body.String())
	})

	t.Run("missing user in context", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewTranscribeHandler(NewMockAudioIngestor(ctrl), NewMockTranscriber(ctrl)).
			ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/transcribe", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestTranscribeHandler_WithService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	wav := bytes.Repeat([]byte{0x01}, 10*1024)

	recognizer := services.NewMockRecognizer(ctrl)
	writer := services.NewMockTranscriptionWriter(ctrl)
	reader := services.NewMockTranscriptionReader(ctrl)
	svc := services.NewTranscriptionService(recognizer, writer, reader, nil)
	handler := NewTranscribeHandler(audio.NewIngestor(audio.DefaultMaxBytes), svc)

	t.Run("wav upload with defaults", func(t *testing.T) {
		recognizer.EXPECT().
			Transcribe(gomock.Any(), wav, models.EncodingProfile{Encoding: audio.EncodingLinear16}, "en-US").
			Return("hello world", nil)
		writer.EXPECT().
			Save(gomock.Any(), models.NewTranscription{
				UserID:            userID,
				FileName:          "clip.wav",
				TranscriptionText: "hello world",
				Language:          "en-US",
				SourceType:        models.SourceUpload,
			}).
			DoAndReturn(func(_ context.Context, nt models.NewTranscription) (*models.Transcription, error) {
				return &models.Transcription{
					ID:                uuid.New(),
					FileName:          nt.FileName,
					TranscriptionText: nt.TranscriptionText,
					Language:          nt.Language,
					SourceType:        nt.SourceType,
					UserID:            nt.UserID,
					CreatedAt:         time.Now(),
				}, nil
			})

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, withUser(newUploadRequest(t, "clip.wav", "audio/wav", wav, nil), userID))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp map[string]any
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "hello world", resp["transcriptionText"])
		assert.Equal(t, "upload", resp["sourceType"])
		assert.Equal(t, "en-US", resp["language"])
		assert.Equal(t, userID.String(), resp["user"])
	})

	t.Run("engine failure stores nothing", func(t *testing.T) {
		recognizer.EXPECT().
			Transcribe(gomock.Any(), wav, gomock.Any(), "en-US").
			Return("", errors.New("unavailable"))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, withUser(newUploadRequest(t, "clip.wav", "audio/wav", wav, nil), userID))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Transcription failed.","details":"unavailable"}`, rr.Body.String())
	})
}
