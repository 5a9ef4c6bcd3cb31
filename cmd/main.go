package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/voice-transcriber/docs"
	"github.com/sbilibin2017/voice-transcriber/internal/audio"
	"github.com/sbilibin2017/voice-transcriber/internal/facades"
	"github.com/sbilibin2017/voice-transcriber/internal/handlers"
	"github.com/sbilibin2017/voice-transcriber/internal/jwt"
	"github.com/sbilibin2017/voice-transcriber/internal/logger"
	"github.com/sbilibin2017/voice-transcriber/internal/middlewares"
	"github.com/sbilibin2017/voice-transcriber/internal/migrations"
	"github.com/sbilibin2017/voice-transcriber/internal/repositories"
	"github.com/sbilibin2017/voice-transcriber/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost        string
	AppPort        string
	LogLevel       string
	MaxUploadBytes int64

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers []string
	KafkaTopic   string

	SpeechAddr          string
	SpeechProjectID     string
	SpeechInsecure      bool
	SpeechTimeoutSecond int

	JWTSecretKey string
	JWTExpSecond int
}

// @title voice-transcriber API
// @version 1.0.0
// @description Authenticated audio transcription service
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, speech and JWT configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var firstErr error
	getInt := func(key, defaultValue string) int {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}
	getBool := func(key, defaultValue string) bool {
		v, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}

	cfg := &config{
		// Application
		AppHost:        getEnv("APP_HOST", "localhost"),
		AppPort:        getEnv("APP_PORT", "8080"),
		LogLevel:       getEnv("APP_LOG_LEVEL", "info"),
		MaxUploadBytes: int64(getInt("APP_MAX_UPLOAD_BYTES", strconv.FormatInt(audio.DefaultMaxBytes, 10))),

		// PostgreSQL
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "database"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),

		// Redis
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),
		RedisExpSecond:    getInt("REDIS_EXP_SECOND", "60"),

		// Kafka
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "transcriptions"),

		// Speech engine
		SpeechAddr:          getEnv("SPEECH_ADDR", facades.DefaultSpeechAddr),
		SpeechProjectID:     getEnv("SPEECH_PROJECT_ID", ""),
		SpeechInsecure:      getBool("SPEECH_INSECURE", "false"),
		SpeechTimeoutSecond: getInt("SPEECH_TIMEOUT_SECOND", "120"),

		// JWT
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExpSecond: getInt("JWT_EXP_SECOND", strconv.Itoa(int(jwt.DefaultExpiration.Seconds()))),
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// newRouter wires the HTTP routes. del is wrapped in a per-request transaction.
func newRouter(
	cfg *config,
	authMiddleware func(http.Handler) http.Handler,
	txMiddleware func(http.Handler) http.Handler,
	register, login, health, list, transcribe, del http.HandlerFunc,
) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/healthz", health)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", register)
		r.Post("/auth/login", login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/transcriptions", list)
			r.Post("/transcribe", transcribe)
			r.With(txMiddleware).Delete("/transcriptions/{id}", del)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, database, Redis, Kafka, speech client, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka publishing is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: services.PublishTimeout,
			MaxAttempts:  3,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka writer initialized", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Connect to the speech engine
	conn, err := facades.NewSpeechConn(ctx, cfg.SpeechAddr, cfg.SpeechInsecure)
	if err != nil {
		return err
	}
	defer conn.Close()
	speechFacade := facades.NewSpeechRecognitionFacade(
		speechpb.NewSpeechClient(conn),
		cfg.SpeechProjectID,
		time.Duration(cfg.SpeechTimeoutSecond)*time.Second,
	)

	// Initialize JWT service
	jwtService := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	userCacheRepo := repositories.NewUserCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
	transcriptionWriteRepo := repositories.NewTranscriptionWriteRepository(db, middlewares.GetTxFromContext)
	transcriptionReadRepo := repositories.NewTranscriptionReadRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, userCacheRepo, jwtService)
	transcriptionService := services.NewTranscriptionService(
		speechFacade, transcriptionWriteRepo, transcriptionReadRepo, kafkaWriter,
		services.WithCommitHook(middlewares.AfterCommit),
	)

	// Initialize handlers
	ingestor := audio.NewIngestor(cfg.MaxUploadBytes)
	r := newRouter(cfg,
		middlewares.AuthMiddleware(jwtService, authService),
		middlewares.TxMiddleware(db),
		handlers.NewRegisterHandler(authService),
		handlers.NewLoginHandler(authService),
		handlers.NewHealthHandler(db),
		handlers.NewListTranscriptionsHandler(transcriptionService),
		handlers.NewTranscribeHandler(ingestor, transcriptionService),
		handlers.NewDeleteTranscriptionHandler(transcriptionService),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
