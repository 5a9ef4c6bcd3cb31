package models

// AudioUpload is an audio payload accepted by the ingestion guard.
type AudioUpload struct {
	Data     []byte
	MIMEType string
	FileName string
}

// EncodingProfile is the codec configuration a recognition engine needs.
type EncodingProfile struct {
	Encoding        string // engine encoding name, e.g. "LINEAR16"
	SampleRateHertz int32  // 0 means let the engine detect it
}
