package services

//go:generate mockgen -source=transcription.go -destination=transcription_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/voice-transcriber/internal/apperr"
	"github.com/sbilibin2017/voice-transcriber/internal/audio"
	"github.com/sbilibin2017/voice-transcriber/internal/logger"
	"github.com/sbilibin2017/voice-transcriber/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	ErrTranscriptionNotFound = apperr.New(apperr.KindNotFound, "Transcription not found.")
	ErrNotOwner              = apperr.New(apperr.KindForbidden, "Not authorized.")
	ErrInvalidSourceType     = apperr.New(apperr.KindInvalidInput, "sourceType must be 'upload' or 'record'.")
)

// Recognizer turns audio into text.
type Recognizer interface {
	Transcribe(ctx context.Context, audio []byte, profile models.EncodingProfile, language string) (string, error)
}

// TranscriptionWriter defines write operations for transcriptions.
type TranscriptionWriter interface {
	Save(ctx context.Context, t models.NewTranscription) (*models.Transcription, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

// TranscriptionReader defines read operations for transcriptions.
type TranscriptionReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transcription, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transcription, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PublishTimeout bounds a single event write so a slow broker cannot stall a response.
const PublishTimeout = 3 * time.Second

// CommitHook defers fn until the transaction carried by ctx commits.
type CommitHook func(ctx context.Context, fn func())

// TranscriptionOption configures a TranscriptionService.
type TranscriptionOption func(*TranscriptionService)

// WithCommitHook makes events wait for hook, so nothing is published for a rolled-back change.
func WithCommitHook(hook CommitHook) TranscriptionOption {
	return func(s *TranscriptionService) {
		s.afterCommit = hook
	}
}

// TranscriptionService runs the recognize-then-persist pipeline and owner-scoped record access.
type TranscriptionService struct {
	recognizer  Recognizer
	writer      TranscriptionWriter
	reader      TranscriptionReader
	kafkaWriter KafkaWriter
	afterCommit CommitHook
}

// NewTranscriptionService creates a new TranscriptionService. kafkaWriter may be nil.
// Without WithCommitHook events are published as soon as the store call returns.
func NewTranscriptionService(
	recognizer Recognizer,
	writer TranscriptionWriter,
	reader TranscriptionReader,
	kafkaWriter KafkaWriter,
	opts ...TranscriptionOption,
) *TranscriptionService {
	s := &TranscriptionService{
		recognizer:  recognizer,
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
		afterCommit: func(_ context.Context, fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transcribe recognizes the uploaded audio and stores the result for userID.
// Nothing is stored when recognition fails or the request is already cancelled.
func (s *TranscriptionService) Transcribe(
	ctx context.Context,
	userID uuid.UUID,
	upload *models.AudioUpload,
	language string,
	sourceType models.SourceType,
) (*models.Transcription, error) {
	log := logger.FromContext(ctx)

	if language == "" {
		language = models.DefaultLanguage
	}
	if sourceType == "" {
		sourceType = models.SourceUpload
	}
	if !sourceType.Valid() {
		return nil, ErrInvalidSourceType
	}

	profile := audio.ResolveEncoding(upload.MIMEType)
	log.Infow("transcribing audio",
		"userID", userID, "file", upload.FileName, "size", len(upload.Data),
		"mime", upload.MIMEType, "encoding", profile.Encoding, "language", language)

	text, err := s.recognizer.Transcribe(ctx, upload.Data, profile, language)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			err = apperr.Wrap(apperr.KindRecognitionFailed, "Transcription failed.", err)
		}
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		log.Warnw("request cancelled before persisting transcription", "userID", userID, "err", err)
		return nil, apperr.Wrap(apperr.KindInternal, "Request cancelled.", err)
	}

	return s.Create(ctx, models.NewTranscription{
		UserID:            userID,
		FileName:          upload.FileName,
		TranscriptionText: text,
		Language:          language,
		SourceType:        sourceType,
	})
}

// Create persists a transcription record.
func (s *TranscriptionService) Create(ctx context.Context, t models.NewTranscription) (*models.Transcription, error) {
	saved, err := s.writer.Save(ctx, t)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save transcription", "userID", t.UserID, "error", err)
		return nil, apperr.Wrap(apperr.KindStorageUnavailable, "Failed to save transcription.", err)
	}

	s.publish(ctx, models.TranscriptionEvent{
		Event:           models.EventTranscriptionCreated,
		TranscriptionID: saved.ID.String(),
		UserID:          saved.UserID.String(),
		Language:        saved.Language,
		SourceType:      string(saved.SourceType),
		Timestamp:       time.Now().Unix(),
	})

	return saved, nil
}

// ListByOwner returns the user's transcriptions, newest first.
func (s *TranscriptionService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Transcription, error) {
	items, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list transcriptions", "userID", userID, "error", err)
		return nil, apperr.Wrap(apperr.KindStorageUnavailable, "Failed to fetch transcriptions.", err)
	}
	if items == nil {
		items = []models.Transcription{}
	}
	return items, nil
}

// DeleteByID removes a transcription owned by userID.
// Ownership is checked on the fetched record, not inferred from the query.
func (s *TranscriptionService) DeleteByID(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	item, err := s.reader.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get transcription", "id", id, "error", err)
		return apperr.Wrap(apperr.KindStorageUnavailable, "Delete failed.", err)
	}
	if item == nil {
		return ErrTranscriptionNotFound
	}
	if item.UserID != userID {
		log.Warnw("delete by non-owner rejected", "id", id, "userID", userID, "ownerID", item.UserID)
		return ErrNotOwner
	}

	n, err := s.writer.DeleteByID(ctx, id)
	if err != nil {
		log.Errorw("failed to delete transcription", "id", id, "error", err)
		return apperr.Wrap(apperr.KindStorageUnavailable, "Delete failed.", err)
	}
	if n == 0 {
		return ErrTranscriptionNotFound
	}

	s.publish(ctx, models.TranscriptionEvent{
		Event:           models.EventTranscriptionDeleted,
		TranscriptionID: id.String(),
		UserID:          userID.String(),
		Timestamp:       time.Now().Unix(),
	})

	return nil
}

// publish writes an event to Kafka once the surrounding transaction commits.
// Failures are logged and never fail the caller.
func (s *TranscriptionService) publish(ctx context.Context, event models.TranscriptionEvent) {
	if s.kafkaWriter == nil {
		logger.FromContext(ctx).Debugw("Kafka writer not configured, skipping publishing", "event", event.Event, "transcription_id", event.TranscriptionID)
		return
	}
	s.afterCommit(ctx, func() { s.writeEvent(ctx, event) })
}

func (s *TranscriptionService) writeEvent(ctx context.Context, event models.TranscriptionEvent) {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal event for Kafka", "transcription_id", event.TranscriptionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()

	if err := s.kafkaWriter.WriteMessages(writeCtx, msg); err != nil {
		log.Errorw("Failed to publish event to Kafka", "event", event.Event, "transcription_id", event.TranscriptionID, "error", err)
		return
	}
	log.Infow("Event published to Kafka", "event", event.Event, "transcription_id", event.TranscriptionID)
}
