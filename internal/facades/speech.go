package facades

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/sbilibin2017/voice-transcriber/internal/apperr"
	"github.com/sbilibin2017/voice-transcriber/internal/logger"
	"github.com/sbilibin2017/voice-transcriber/internal/models"
)

// RecognitionModel is the long-form model requested from the engine.
const RecognitionModel = "latest_long"

// PhraseBoost is a domain term the engine should prefer.
type PhraseBoost struct {
	Value string
	Boost float32
}

// DefaultPhrases are the domain-vocabulary boosts sent with every request.
var DefaultPhrases = []PhraseBoost{
	{Value: "MERN stack", Boost: 20},
	{Value: "MongoDB", Boost: 20},
	{Value: "Express.js", Boost: 20},
	{Value: "React", Boost: 20},
	{Value: "Node.js", Boost: 20},
}

// SpeechRecognitionFacade calls the speech engine over gRPC and normalizes its response.
type SpeechRecognitionFacade struct {
	client    speechpb.SpeechClient
	projectID string
	timeout   time.Duration
	phrases   []PhraseBoost
}

// NewSpeechRecognitionFacade creates a facade. A zero timeout leaves the call bounded only by ctx.
func NewSpeechRecognitionFacade(client speechpb.SpeechClient, projectID string, timeout time.Duration) *SpeechRecognitionFacade {
	return &SpeechRecognitionFacade{
		client:    client,
		projectID: projectID,
		timeout:   timeout,
		phrases:   DefaultPhrases,
	}
}

// Transcribe sends audio to the engine and returns the joined transcript.
// An empty result yields models.NoSpeechDetected; a failed call yields KindRecognitionFailed.
func (f *SpeechRecognitionFacade) Transcribe(ctx context.Context, audio []byte, profile models.EncodingProfile, language string) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req := f.buildRequest(audio, profile, language)

	start := time.Now()
	resp, err := f.client.Recognize(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Errorw("speech recognition failed",
			"encoding", profile.Encoding, "language", language, "duration", time.Since(start), "error", err)
		return "", apperr.Wrap(apperr.KindRecognitionFailed, "Transcription failed.", err)
	}

	text := joinTranscripts(resp)
	logger.FromContext(ctx).Infow("speech recognition completed",
		"encoding", profile.Encoding, "language", language,
		"segments", len(resp.GetResults()), "duration", time.Since(start))

	return text, nil
}

func (f *SpeechRecognitionFacade) buildRequest(audio []byte, profile models.EncodingProfile, language string) *speechpb.RecognizeRequest {
	encoding := speechpb.RecognitionConfig_ENCODING_UNSPECIFIED
	if v, ok := speechpb.RecognitionConfig_AudioEncoding_value[profile.Encoding]; ok {
		encoding = speechpb.RecognitionConfig_AudioEncoding(v)
	}

	phrases := make([]*speechpb.PhraseSet_Phrase, 0, len(f.phrases))
	for _, p := range f.phrases {
		phrases = append(phrases, &speechpb.PhraseSet_Phrase{Value: p.Value, Boost: p.Boost})
	}

	return &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   encoding,
			SampleRateHertz:            profile.SampleRateHertz,
			LanguageCode:               language,
			Model:                      RecognitionModel,
			EnableAutomaticPunctuation: true,
			Adaptation: &speechpb.SpeechAdaptation{
				PhraseSets: []*speechpb.PhraseSet{{
					Name:    fmt.Sprintf("projects/%s/locations/global/phraseSets/project-jargon", f.projectID),
					Phrases: phrases,
				}},
			},
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	}
}

// joinTranscripts concatenates the top alternative of each segment.
func joinTranscripts(resp *speechpb.RecognizeResponse) string {
	results := resp.GetResults()
	if len(results) == 0 {
		return models.NoSpeechDetected
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		alts := r.GetAlternatives()
		if len(alts) == 0 {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, alts[0].GetTranscript())
	}
	text := strings.Join(lines, "\n")
	if strings.TrimSpace(text) == "" {
		return models.NoSpeechDetected
	}
	return text
}
