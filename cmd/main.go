package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/movie-catalog/internal/handlers"

	"github.com/sbilibin2017/movie-catalog/internal/jwt"
	"github.com/sbilibin2017/movie-catalog/internal/logger"
	"github.com/sbilibin2017/movie-catalog/internal/migrations"
	"github.com/sbilibin2017/movie-catalog/internal/repositories"
	"github.com/sbilibin2017/movie-catalog/internal/services"
	"github.com/sbilibin2017/movie-catalog/internal/storage"

	"github.com/sbilibin2017/movie-catalog/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title movie-catalog API
// @version 1.0.0
// @description Service for managing a personal movie catalog with poster uploads
// @host localhost:8080
// @BasePath /
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
		redisPoolSize, redisMinIdleConns,
		jwtSecret, jwtExp,
		storageBackend, uploadDir, uploadBaseURL,
		s3Endpoint, s3Region, s3Bucket, s3AccessKey, s3SecretKey, s3PublicBaseURL,
		kafkaAddr, kafkaTopic, staticDir,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		jwtSecret, jwtExp,
		storageBackend, uploadDir, uploadBaseURL,
		s3Endpoint, s3Region, s3Bucket, s3AccessKey, s3SecretKey, s3PublicBaseURL,
		kafkaAddr, kafkaTopic, staticDir,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, JWT, storage, Kafka, and static page
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	jwtSecretKey string, jwtExpSecond int,
	storageBackend, uploadDir, uploadBaseURL string,
	s3Endpoint, s3Region, s3Bucket, s3AccessKey, s3SecretKey, s3PublicBaseURL string,
	kafkaAddr, kafkaTopic, staticDir string,
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
	pgDB = getEnv("POSTGRES_DB", "database")
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
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Poster storage config
	storageBackend = getEnv("STORAGE_BACKEND", "local")
	uploadDir = getEnv("UPLOAD_DIR", "uploads")
	uploadBaseURL = getEnv("UPLOAD_BASE_URL", "/uploads")
	s3Endpoint = getEnv("S3_ENDPOINT", "")
	s3Region = getEnv("S3_REGION", "us-east-1")
	s3Bucket = getEnv("S3_BUCKET", "posters")
	s3AccessKey = getEnv("S3_ACCESS_KEY", "")
	s3SecretKey = getEnv("S3_SECRET_KEY", "")
	s3PublicBaseURL = getEnv("S3_PUBLIC_BASE_URL", "")

	// Kafka config; an empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "movie-events")

	// Static pages served behind the navigation guard
	staticDir = getEnv("STATIC_DIR", "")

	return
}

// run initializes the logger, database, Redis, storage backend, Kafka writer,
// and HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	jwtSecretKey string, jwtExpSecond int,
	storageBackend, uploadDir, uploadBaseURL string,
	s3Endpoint, s3Region, s3Bucket, s3AccessKey, s3SecretKey, s3PublicBaseURL string,
	kafkaAddr, kafkaTopic, staticDir string,
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
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply migrations
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Initialize JWT service
	tokenTTL := time.Duration(jwtExpSecond) * time.Second
	jwtService := jwt.New(jwtSecretKey, tokenTTL)

	// Initialize poster storage
	var fileStorage services.FileStorer
	switch storageBackend {
	case "s3":
		s3Storage, err := storage.NewS3Storage(ctx, storage.S3Config{
			Endpoint:      s3Endpoint,
			Region:        s3Region,
			Bucket:        s3Bucket,
			AccessKey:     s3AccessKey,
			SecretKey:     s3SecretKey,
			PublicBaseURL: s3PublicBaseURL,
		})
		if err != nil {
			logger.Log.Errorw("S3 storage initialization failed", "error", err)
			return err
		}
		fileStorage = s3Storage
	default:
		fileStorage = storage.NewLocalStorage(storage.LocalConfig{
			Dir:     uploadDir,
			BaseURL: uploadBaseURL,
		})
	}

	// Initialize Kafka writer; nil disables event publishing
	var eventWriter services.EventWriter
	if kafkaAddr != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		eventWriter = writer
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	movieReadRepo := repositories.NewMovieReadRepository(db)
	movieWriteRepo := repositories.NewMovieWriteRepository(db)
	sessionRepo := repositories.NewSessionCacheRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService, sessionRepo)
	movieService := services.NewMovieService(movieReadRepo, movieWriteRepo, fileStorage, eventWriter)

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, tokenTTL)
	logoutHandler := handlers.NewLogoutHandler(authService)
	userIDHandler := handlers.NewUserIDHandler(authService)
	movieCreateHandler := handlers.NewMovieCreateHandler(movieService)
	movieListHandler := handlers.NewMovieListHandler(movieService)
	movieGetHandler := handlers.NewMovieGetHandler(movieService)
	movieUpdateHandler := handlers.NewMovieUpdateHandler(movieService)
	movieDeleteHandler := handlers.NewMovieDeleteHandler(movieService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public auth routes
	r.Post("/auth/signup", signupHandler)
	r.Post("/auth/login", loginHandler)
	r.Post("/auth/logout", logoutHandler)
	r.Post("/auth/user", userIDHandler)

	// Protected movie routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtService, sessionRepo))

		r.Get("/movies", movieListHandler)
		r.Get("/movies/{id}", movieGetHandler)

		// Mutations run inside a database transaction
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))

			r.Post("/movies", movieCreateHandler)
			r.Put("/movies", movieUpdateHandler)
			r.Delete("/movies", movieDeleteHandler)
		})
	})

	// Poster files for the local storage backend
	if storageBackend != "s3" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
	}

	// Navigation pages behind the guard
	if staticDir != "" {
		r.Group(func(r chi.Router) {
			r.Use(middlewares.GuardMiddleware(jwtService))

			r.Get("/", servePage(staticDir, "index.html"))
			r.Get("/auth/login", servePage(staticDir, "login.html"))
			r.Get("/auth/signup", servePage(staticDir, "signup.html"))
		})
	}

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

// servePage serves one static page from the configured directory.
func servePage(dir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(dir, name))
	}
}
