package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/voice-transcriber/internal/apperr"
	"github.com/sbilibin2017/voice-transcriber/internal/jwt"
	"github.com/sbilibin2017/voice-transcriber/internal/logger"
	"github.com/sbilibin2017/voice-transcriber/internal/models"
	"github.com/sbilibin2017/voice-transcriber/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = apperr.New(apperr.KindConflict, "Username already exists.")
	ErrInvalidCredentials = apperr.New(apperr.KindUnauthorized, "Invalid credentials.")
	ErrUserNotFound       = apperr.New(apperr.KindUnauthorized, "User not found.")
	ErrInvalidToken       = apperr.New(apperr.KindUnauthorized, "Unauthorized access.")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error)
}

// UserCache remembers user ids that were recently confirmed to exist.
type UserCache interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
	Remember(ctx context.Context, userID uuid.UUID) error
}

// JWTProvider issues and parses bearer tokens.
type JWTProvider interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type credentials struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=6,max=72"`
}

// credentialsMessage describes the first failed credentials rule.
func credentialsMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid username or password."
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}

// AuthService handles registration, login and token verification.
type AuthService struct {
	reader UserReader
	writer UserWriter
	cache  UserCache
	jwt    JWTProvider
}

// NewAuthService creates a new AuthService instance. cache may be nil.
func NewAuthService(reader UserReader, writer UserWriter, cache UserCache, jwt JWTProvider) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		cache:  cache,
		jwt:    jwt,
	}
}

// Register creates a new user and returns a token for it.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.AuthResult, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)

	if err := validate.Struct(credentials{Username: username, Password: password}); err != nil {
		log.Warnw("invalid registration input", "username", username, "err", err)
		return nil, apperr.Wrap(apperr.KindInvalidInput, credentialsMessage(err), err)
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return nil, apperr.Wrap(apperr.KindStorageUnavailable, "Registration failed.", err)
	}
	if existing != nil {
		log.Warnw("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperr.Wrap(apperr.KindInvalidInput, "Password is too long.", err)
	}
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, apperr.Wrap(apperr.KindInternal, "Registration failed.", err)
	}

	user, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			log.Warnw("user already exists", "username", username)
			return nil, ErrUserAlreadyExists
		}
		log.Errorw("failed to save user", "err", err)
		return nil, apperr.Wrap(apperr.KindStorageUnavailable, "Registration failed.", err)
	}

	return svc.issue(ctx, user)
}

// Login verifies the password and returns a fresh token.
// Unknown users and wrong passwords produce the same error.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.AuthResult, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return nil, apperr.Wrap(apperr.KindStorageUnavailable, "Login failed.", err)
	}
	if user == nil {
		log.Warnw("login for unknown user", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warnw("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return svc.issue(ctx, user)
}

// Verify resolves a bearer token to the id of an existing user.
func (svc *AuthService) Verify(ctx context.Context, tokenString string) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	claims, err := svc.jwt.GetClaims(ctx, tokenString)
	if err != nil {
		log.Warnw("token rejected", "err", err)
		return uuid.Nil, ErrInvalidToken
	}

	if svc.cache != nil {
		ok, err := svc.cache.Exists(ctx, claims.UserID)
		if err != nil {
			log.Warnw("user cache lookup failed", "userID", claims.UserID, "err", err)
		} else if ok {
			return claims.UserID, nil
		}
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		log.Errorw("failed to get user", "userID", claims.UserID, "err", err)
		return uuid.Nil, apperr.Wrap(apperr.KindStorageUnavailable, "Authentication failed.", err)
	}
	if user == nil {
		log.Warnw("token for missing user", "userID", claims.UserID)
		return uuid.Nil, ErrUserNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Remember(ctx, user.UserID); err != nil {
			log.Warnw("failed to cache user", "userID", user.UserID, "err", err)
		}
	}

	return user.UserID, nil
}

func (svc *AuthService) issue(ctx context.Context, user *models.UserDB) (*models.AuthResult, error) {
	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "err", err)
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to issue token.", err)
	}

	return &models.AuthResult{
		UserID:   user.UserID,
		Username: user.Username,
		Token:    token,
	}, nil
}
