package models

import (
	"time"

	"github.com/google/uuid"
)

// SourceType tells how the audio reached the service.
type SourceType string

const (
	SourceUpload SourceType = "upload"
	SourceRecord SourceType = "record"
)

// Valid reports whether s is one of the known source types.
func (s SourceType) Valid() bool {
	return s == SourceUpload || s == SourceRecord
}

// NoSpeechDetected is stored when the engine returns no segments.
const NoSpeechDetected = "[No speech detected]"

// DefaultLanguage is used when the client does not send a language code.
const DefaultLanguage = "en-US"

// Transcription is a persisted transcription owned by exactly one user.
// swagger:model Transcription
type Transcription struct {
	ID                uuid.UUID  `json:"_id" db:"transcription_id"`
	FileName          string     `json:"fileName" db:"file_name"`
	TranscriptionText string     `json:"transcriptionText" db:"transcription_text"`
	Language          string     `json:"language" db:"language"`
	SourceType        SourceType `json:"sourceType" db:"source_type"`
	UserID            uuid.UUID  `json:"user" db:"user_id"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
}

// NewTranscription is the input to the store's create operation.
type NewTranscription struct {
	UserID            uuid.UUID
	FileName          string
	TranscriptionText string
	Language          string
	SourceType        SourceType
}
