package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/voice-transcriber/internal/apperr"
	"github.com/sbilibin2017/voice-transcriber/internal/logger"
)

// TokenGetter extracts the bearer token from a request.
type TokenGetter interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Verifier resolves a token to the id of an existing user.
type Verifier interface {
	Verify(ctx context.Context, tokenString string) (uuid.UUID, error)
}

type userIDKey struct{}

// ErrorResponse is the JSON body written when authentication fails.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware rejects requests without a valid bearer token and stores the user id in the context.
func AuthMiddleware(tokenGetter TokenGetter, verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokenGetter.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Warnw("authorization failed", "err", err)
				writeUnauthorized(w, "No token provided.")
				return
			}

			userID, err := verifier.Verify(ctx, tokenString)
			if err != nil {
				log.Warnw("authorization failed", "err", err)
				if !errors.Is(err, apperr.ErrUnauthorized) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(apperr.Status(err))
					json.NewEncoder(w).Encode(ErrorResponse{Error: "Authentication failed."})
					return
				}
				message := "Unauthorized access."
				var appErr *apperr.Error
				if errors.As(err, &appErr) && appErr.Message != "" {
					message = appErr.Message
				}
				writeUnauthorized(w, message)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WithUserID stores the authenticated user id in ctx.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
