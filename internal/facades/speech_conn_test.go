package facades

import (
	"context"
	"testing"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/sbilibin2017/voice-transcriber/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpeechConn_Insecure(t *testing.T) {
	addr := serveMockSpeech(t, &mockSpeechServer{
		resp: &speechpb.RecognizeResponse{
			Results: []*speechpb.SpeechRecognitionResult{
				{Alternatives: []*speechpb.SpeechRecognitionAlternative{{Transcript: "over the wire"}}},
			},
		},
	})

	conn, err := NewSpeechConn(context.Background(), addr, true)
	require.NoError(t, err)
	defer conn.Close()

	facade := NewSpeechRecognitionFacade(speechpb.NewSpeechClient(conn), "test-project", 0)
	text, err := facade.Transcribe(context.Background(), []byte{1, 2, 3}, models.EncodingProfile{Encoding: "LINEAR16"}, "en-US")

	require.NoError(t, err)
	assert.Equal(t, "over the wire", text)
}
