package models

// Transcription event names.
const (
	EventTranscriptionCreated = "transcription.created"
	EventTranscriptionDeleted = "transcription.deleted"
)

// TranscriptionEvent is published to Kafka whenever a transcription is created or deleted.
type TranscriptionEvent struct {
	Event           string `json:"event"`            // Event name
	TranscriptionID string `json:"transcription_id"` // Affected transcription
	UserID          string `json:"user_id"`          // Owner
	Language        string `json:"language,omitempty"`
	SourceType      string `json:"source_type,omitempty"`
	Timestamp       int64  `json:"timestamp"` // Unix seconds
}
