package audio

import "github.com/sbilibin2017/voice-transcriber/internal/models"

// Engine encoding names.
const (
	EncodingUnspecified = "ENCODING_UNSPECIFIED"
	EncodingLinear16    = "LINEAR16"
	EncodingFLAC        = "FLAC"
	EncodingMP3         = "MP3"
	EncodingWebMOpus    = "WEBM_OPUS"
)

const opusSampleRate = 48000

var encodings = map[string]models.EncodingProfile{
	"audio/webm": {Encoding: EncodingWebMOpus, SampleRateHertz: opusSampleRate},
	"audio/ogg":  {Encoding: EncodingWebMOpus, SampleRateHertz: opusSampleRate},
	"audio/wav":  {Encoding: EncodingLinear16},
	"audio/mpeg": {Encoding: EncodingMP3},
	"audio/flac": {Encoding: EncodingFLAC},
}

// ResolveEncoding maps a MIME type to an engine encoding profile.
// Unknown types resolve to EncodingUnspecified and are left to the engine.
func ResolveEncoding(mimeType string) models.EncodingProfile {
	if p, ok := encodings[mediaType(mimeType)]; ok {
		return p
	}
	return models.EncodingProfile{Encoding: EncodingUnspecified}
}
