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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/kazzanonim/anonlink/internal/facades"
	"github.com/kazzanonim/anonlink/internal/handlers"
	"github.com/kazzanonim/anonlink/internal/jwt"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/middlewares"
	"github.com/kazzanonim/anonlink/internal/repositories"
	"github.com/kazzanonim/anonlink/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const cooldownWindow = 5 * time.Minute

// @title anonlink API
// @version 1.0.0
// @description Service for receiving anonymous messages through shareable links
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		ipLookupURL, ipLookupTimeout,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		ipLookupURL, ipLookupTimeout,
		jwtSecret, jwtExp,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, IP lookup, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, kafkaTopic string,
	ipLookupURL string, ipLookupTimeout time.Duration,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "anonlink")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config, empty brokers disable event publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "anonlink.messages.accepted")

	// Sender IP lookup config
	ipLookupURL = getEnv("IP_LOOKUP_URL", "https://api.ipify.org?format=json")
	ipLookupTimeoutSecond, err := strconv.Atoi(getEnv("IP_LOOKUP_TIMEOUT_SECOND", "3"))
	if err != nil {
		return
	}
	ipLookupTimeout = time.Duration(ipLookupTimeoutSecond) * time.Second

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, kafkaTopic string,
	ipLookupURL string, ipLookupTimeout time.Duration,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for accepted-message events, optional
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize facades
	senderIP := facades.NewSenderIPFacadeWithClient(
		&http.Client{Timeout: ipLookupTimeout}, ipLookupURL)

	// Initialize repositories
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db, middlewares.GetTxFromContext)
	attemptReadRepo := repositories.NewLoginAttemptReadRepository(db)
	attemptWriteRepo := repositories.NewLoginAttemptWriteRepository(db)
	linkReadRepo := repositories.NewLinkReadRepository(db)
	linkWriteRepo := repositories.NewLinkWriteRepository(db, middlewares.GetTxFromContext)
	messageReadRepo := repositories.NewMessageReadRepository(db)
	messageWriteRepo := repositories.NewMessageWriteRepository(db, middlewares.GetTxFromContext)
	cooldownRepo := repositories.NewCooldownRepository(rdb, cooldownWindow)

	// Initialize services
	authService := services.NewAuthService(
		profileReadRepo, profileWriteRepo, attemptReadRepo, attemptWriteRepo, jwtSvc)
	linkService := services.NewLinkService(linkReadRepo, linkWriteRepo)
	messageService := services.NewMessageService(
		linkReadRepo, messageWriteRepo, messageReadRepo, cooldownRepo, senderIP, kafkaWriter)
	dashboardService := services.NewDashboardService(linkReadRepo, messageReadRepo)
	profileService := services.NewProfileService(profileReadRepo, profileWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	loginStatusHandler := handlers.NewLoginStatusHandler(authService)
	resolveLinkHandler := handlers.NewResolveLinkHandler(linkService)
	sendMessageHandler := handlers.NewSendMessageHandler(messageService)
	cooldownHandler := handlers.NewCooldownHandler(messageService, senderIP)
	createLinkHandler := handlers.NewCreateLinkHandler(linkService, jwtSvc)
	listLinksHandler := handlers.NewListLinksHandler(linkService, jwtSvc)
	listMessagesHandler := handlers.NewListMessagesHandler(messageService, linkService, jwtSvc)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, jwtSvc)
	getProfileHandler := handlers.NewGetProfileHandler(profileService, jwtSvc)
	updateProfileHandler := handlers.NewUpdateProfileHandler(profileService, jwtSvc)

	txMiddleware := middlewares.TxMiddleware(db)
	authMiddleware := middlewares.AuthMiddleware(jwtSvc)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Route("/api/v1", func(r chi.Router) {
		r.With(txMiddleware).Post("/register", registerHandler)
		r.With(txMiddleware).Post("/login", loginHandler)
		r.Get("/login/attempts", loginStatusHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/links", listLinksHandler)
			r.With(txMiddleware).Post("/links", createLinkHandler)
			r.Get("/messages", listMessagesHandler)
			r.Get("/dashboard", dashboardHandler)
			r.Get("/profile", getProfileHandler)
			r.With(txMiddleware).Put("/profile", updateProfileHandler)
		})
	})

	// Anonymous message page routes
	r.Route("/m/{slug}", func(r chi.Router) {
		r.Get("/", resolveLinkHandler)
		// Single-insert route; no transaction wrapper, so a successful Save
		// is already committed before the cooldown record is written.
		r.Post("/messages", sendMessageHandler)
		r.Get("/cooldown", cooldownHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
