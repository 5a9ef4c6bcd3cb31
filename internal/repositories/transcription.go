package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/voice-transcriber/internal/logger"
	"github.com/sbilibin2017/voice-transcriber/internal/models"
)

const transcriptionColumns = `transcription_id, file_name, transcription_text, language, source_type, user_id, created_at`

// TranscriptionWriteRepository handles transcription write operations
type TranscriptionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTranscriptionWriteRepository(db *sqlx.DB, txGetter TxGetter) *TranscriptionWriteRepository {
	return &TranscriptionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a transcription and returns the stored row with its server-assigned fields.
func (r *TranscriptionWriteRepository) Save(ctx context.Context, t models.NewTranscription) (*models.Transcription, error) {
	query := `
		INSERT INTO transcriptions (transcription_id, file_name, transcription_text, language, source_type, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + transcriptionColumns

	args := []any{uuid.New(), t.FileName, t.TranscriptionText, t.Language, string(t.SourceType), t.UserID}

	var saved models.Transcription
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logger.FromContext(ctx).Infow("query executed",
		"query", oneLine(query),
		"user_id", t.UserID,
		"file_name", t.FileName,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteByID removes a transcription and reports how many rows were deleted.
func (r *TranscriptionWriteRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `DELETE FROM transcriptions WHERE transcription_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.FromContext(ctx).Infow("query executed",
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// TranscriptionReadRepository handles transcription read operations
type TranscriptionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTranscriptionReadRepository(db *sqlx.DB, txGetter TxGetter) *TranscriptionReadRepository {
	return &TranscriptionReadRepository{db: db, txGetter: txGetter}
}

// ListByUserID returns the user's transcriptions, newest first.
func (r *TranscriptionReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transcription, error) {
	query := `
		SELECT ` + transcriptionColumns + `
		FROM transcriptions
		WHERE user_id = $1
		ORDER BY created_at DESC, transcription_id DESC
	`

	items := []models.Transcription{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &items, query, userID)

	logger.FromContext(ctx).Debugw("query executed",
		"query", oneLine(query),
		"args", []any{userID},
		"result", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns a transcription regardless of owner, or nil if it does not exist.
func (r *TranscriptionReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transcription, error) {
	query := `
		SELECT ` + transcriptionColumns + `
		FROM transcriptions
		WHERE transcription_id = $1
	`

	var t models.Transcription
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &t, query, id)

	logger.FromContext(ctx).Debugw("query executed",
		"query", oneLine(query),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
