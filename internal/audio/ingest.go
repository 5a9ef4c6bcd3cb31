package audio

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/sbilibin2017/voice-transcriber/internal/apperr"
	"github.com/sbilibin2017/voice-transcriber/internal/models"
)

// FieldName is the multipart field that carries the audio file.
const FieldName = "audio"

// DefaultMaxBytes is the largest accepted audio payload (25 MiB).
const DefaultMaxBytes int64 = 25 << 20

// formOverhead leaves room for multipart boundaries and the text fields.
const formOverhead int64 = 1 << 20

// Ingestor accepts one audio file per multipart request and buffers it in memory.
type Ingestor struct {
	maxBytes int64
}

// NewIngestor creates an Ingestor. A non-positive maxBytes selects DefaultMaxBytes.
func NewIngestor(maxBytes int64) *Ingestor {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Ingestor{maxBytes: maxBytes}
}

// Ingest parses the multipart body of r and returns the audio payload.
// The remaining form values stay available through r.FormValue.
func (i *Ingestor) Ingest(w http.ResponseWriter, r *http.Request) (*models.AudioUpload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, i.maxBytes+formOverhead)

	if err := r.ParseMultipartForm(i.maxBytes + formOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperr.Wrap(apperr.KindPayloadInvalid, "Upload failed", errors.New("file too large"))
		}
		return nil, apperr.Wrap(apperr.KindPayloadInvalid, "Upload failed", err)
	}

	file, header, err := r.FormFile(FieldName)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, apperr.New(apperr.KindPayloadInvalid, "No audio file uploaded.")
		}
		return nil, apperr.Wrap(apperr.KindPayloadInvalid, "Upload failed", err)
	}
	defer file.Close()

	if header.Size > i.maxBytes {
		return nil, apperr.Wrap(apperr.KindPayloadInvalid, "Upload failed", errors.New("file too large"))
	}

	contentType := header.Header.Get("Content-Type")
	if !IsAudio(contentType) {
		return nil, apperr.Wrap(apperr.KindPayloadInvalid, "Upload failed", errors.New("only audio files allowed"))
	}

	data, err := io.ReadAll(io.LimitReader(file, i.maxBytes+1))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPayloadInvalid, "Upload failed", err)
	}
	if int64(len(data)) > i.maxBytes {
		return nil, apperr.Wrap(apperr.KindPayloadInvalid, "Upload failed", errors.New("file too large"))
	}

	return &models.AudioUpload{
		Data:     data,
		MIMEType: contentType,
		FileName: header.Filename,
	}, nil
}

// IsAudio reports whether contentType declares an audio/* media type.
func IsAudio(contentType string) bool {
	return strings.HasPrefix(mediaType(contentType), "audio/")
}

// mediaType lower-cases contentType and drops any parameters.
func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt, _, _ = strings.Cut(contentType, ";")
	}
	return strings.ToLower(strings.TrimSpace(mt))
}
