package facades

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/credentials/oauth"

	"github.com/sbilibin2017/voice-transcriber/internal/logger"
)

// DefaultSpeechAddr is the public Speech-to-Text endpoint.
const DefaultSpeechAddr = "speech.googleapis.com:443"

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// maxAudioMsgSize leaves room for a 25 MiB upload plus the request envelope.
const maxAudioMsgSize = 32 << 20

// NewSpeechConn creates a client connection to the speech engine at addr.
// With insecureConn the connection is plaintext and unauthenticated, for local emulators.
// Otherwise it uses TLS and Application Default Credentials.
func NewSpeechConn(ctx context.Context, addr string, insecureConn bool) (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		grpc.WithDefaultCallOptions(grpc.MaxCallSendMsgSize(maxAudioMsgSize)),
	}

	if insecureConn {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	} else {
		ts, err := google.DefaultTokenSource(ctx, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("speech: default credentials: %w", err)
		}
		opts = append(opts,
			grpc.WithTransportCredentials(credentials.NewClientTLSFromCert(nil, "")),
			grpc.WithPerRPCCredentials(oauth.TokenSource{TokenSource: ts}),
		)
	}

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("speech: failed to create client for %s: %w", addr, err)
	}

	logger.Log.Infow("speech client created", "addr", addr, "insecure", insecureConn)
	return conn, nil
}
