package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/voice-transcriber/internal/middlewares"
	"github.com/sbilibin2017/voice-transcriber/internal/models"
	"github.com/sbilibin2017/voice-transcriber/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteTranscriptionHandler_EventFollowsCommit(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	tests := []struct {
		name          string
		commitErr     error
		wantStatus    int
		wantPublished bool
	}{
		{name: "committed delete publishes", wantStatus: http.StatusOK, wantPublished: true},
		{name: "failed commit publishes nothing", commitErr: sql.ErrConnDone, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := services.NewMockTranscriptionReader(ctrl)
			writer := services.NewMockTranscriptionWriter(ctrl)
			kafkaWriter := services.NewMockKafkaWriter(ctrl)
			svc := services.NewTranscriptionService(nil, writer, reader, kafkaWriter,
				services.WithCommitHook(middlewares.AfterCommit))

			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectBegin()
			if tt.commitErr != nil {
				mock.ExpectCommit().WillReturnError(tt.commitErr)
			} else {
				mock.ExpectCommit()
			}

			reader.EXPECT().GetByID(gomock.Any(), id).Return(&models.Transcription{ID: id, UserID: owner}, nil)
			writer.EXPECT().DeleteByID(gomock.Any(), id).Return(int64(1), nil)
			if tt.wantPublished {
				kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			}

			handler := middlewares.TxMiddleware(sqlx.NewDb(db, "sqlmock"))(NewDeleteTranscriptionHandler(svc))

			req := httptest.NewRequest(http.MethodDelete, "/api/transcriptions/"+id.String(), nil)
			req = withUser(withURLParam(req, "id", id.String()), owner)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
