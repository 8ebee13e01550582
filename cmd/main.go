package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
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
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/sbilibin2017/gif-contest/docs"
	"github.com/sbilibin2017/gif-contest/internal/facades"
	"github.com/sbilibin2017/gif-contest/internal/handlers"
	"github.com/sbilibin2017/gif-contest/internal/health"
	"github.com/sbilibin2017/gif-contest/internal/jwt"
	"github.com/sbilibin2017/gif-contest/internal/logger"
	"github.com/sbilibin2017/gif-contest/internal/middlewares"
	"github.com/sbilibin2017/gif-contest/internal/repositories"
	"github.com/sbilibin2017/gif-contest/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	healthInterval = 15 * time.Second
	healthTimeout  = 2 * time.Second

	// defaultJWTSecretKey is only accepted with APP_LOG_LEVEL=debug.
	defaultJWTSecretKey = "my_super_secret_key"
)

// flags holds command-line options.
type flags struct {
	configPath  string
	tokenFor    string // print a bearer token for this adapter and exit
	healthcheck bool   // probe a running instance over gRPC and exit
}

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	GRPCPort string
	LogLevel string

	StoreDriver string
	SQLitePath  string
	Postgres    repositories.PostgresConfig

	RedisHost         string // empty disables the leaderboard cache
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	LeaderboardTTL    time.Duration
	LeaderboardLimit  int

	KafkaBrokers []string // empty disables events
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration
}

// @title gif-contest API
// @version 1.0.0
// @description Voting and ranking backend for the animated image contest
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	f := parseFlags()

	cfg, err := parseConfig(f.configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	switch {
	case f.tokenFor != "":
		token, err := issueToken(cfg, f.tokenFor)
		if err != nil {
			log.Fatalf("failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	case f.healthcheck:
		if err := probe(context.Background(), "127.0.0.1:"+cfg.GRPCPort); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	printBuildInfo()
	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags.
func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "c", "config.env", "Path to configuration file")
	flag.StringVar(&f.tokenFor, "token", "", "Print a bearer token for the named adapter and exit")
	flag.BoolVar(&f.healthcheck, "healthcheck", false, "Check the health of a running instance and exit")
	flag.Parse()
	return f
}

// parseConfig loads environment variables from a file (if present) and applies defaults.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		if n, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Storage config
	cfg.StoreDriver = getEnv("STORE_DRIVER", "sqlite")
	cfg.SQLitePath = getEnv("SQLITE_PATH", "contest.db")
	cfg.Postgres = repositories.PostgresConfig{
		Host:         getEnv("POSTGRES_HOST", "localhost"),
		Port:         getInt("POSTGRES_PORT", "5432"),
		User:         getEnv("POSTGRES_USER", "user"),
		Password:     getEnv("POSTGRES_PASSWORD", "password"),
		DB:           getEnv("POSTGRES_DB", "contest"),
		MaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		MaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")
	cfg.LeaderboardTTL = time.Duration(getInt("LEADERBOARD_CACHE_TTL_SECOND", "30")) * time.Second
	cfg.LeaderboardLimit = getInt("LEADERBOARD_LIMIT", strconv.Itoa(services.DefaultLeaderboardLimit))

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "contest-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", defaultJWTSecretKey)
	cfg.JWTExp = time.Duration(getInt("JWT_EXP_SECOND", "86400")) * time.Second

	if err != nil {
		return config{}, err
	}
	if cfg.StoreDriver != "sqlite" && cfg.StoreDriver != "postgres" {
		return config{}, fmt.Errorf("STORE_DRIVER: unsupported value %q", cfg.StoreDriver)
	}
	return cfg, nil
}

// checkJWTSecret refuses the built-in signing key outside local debugging.
func checkJWTSecret(cfg config) error {
	if cfg.JWTSecretKey != defaultJWTSecretKey {
		return nil
	}
	if cfg.LogLevel != "debug" {
		return errors.New("JWT_SECRET_KEY: the default key is only allowed with APP_LOG_LEVEL=debug")
	}
	logger.Log.Warnw("using the default JWT secret key, adapter tokens are forgeable", "key", "JWT_SECRET_KEY")
	return nil
}

func newJWT(cfg config) *jwt.JWT {
	return jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))
}

// issueToken signs a bearer token an adapter can use against the API.
func issueToken(cfg config, subject string) (string, error) {
	return newJWT(cfg).Generate(context.Background(), subject)
}

// probe asks a running instance whether it is serving.
func probe(ctx context.Context, addr string) error {
	facade, conn, err := facades.DialHealth(addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	ok, err := facade.Serving(ctx, health.ServiceName)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("service is not serving")
	}
	return nil
}

// openStore connects to the configured database and applies the schema.
func openStore(ctx context.Context, cfg config) (*sqlx.DB, error) {
	if cfg.StoreDriver == "postgres" {
		logger.Log.Infow("connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
		return repositories.OpenPostgres(ctx, cfg.Postgres)
	}
	logger.Log.Infow("opening SQLite database", "path", cfg.SQLitePath)
	return repositories.OpenSQLite(ctx, cfg.SQLitePath)
}

// newRouter mounts the adapter API under /api/v1 behind bearer auth.
func newRouter(cfg config, identity *services.IdentityService, voting *services.VotingService, tokener middlewares.Tokener) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))

		r.Put("/users/{externalID}", handlers.NewResolveUserHandler(identity))
		r.Get("/users/{externalID}", handlers.NewGetUserInfoHandler(voting))
		r.Delete("/users/{externalID}", handlers.NewDeleteUserHandler(voting))
		r.Get("/users/{externalID}/submission", handlers.NewHasSubmittedHandler(voting))
		r.Get("/users/{externalID}/candidates", handlers.NewCandidatesHandler(voting))
		r.Post("/submissions", handlers.NewSubmitHandler(voting))
		r.Post("/votes", handlers.NewCastVoteHandler(voting))
		r.Get("/leaderboard", handlers.NewLeaderboardHandler(voting))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, storage, optional Redis and Kafka, the HTTP API and the
// gRPC health endpoint, then blocks until ctx is cancelled or a signal arrives.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	if err := checkJWTSecret(cfg); err != nil {
		logger.Log.Errorw("refusing to start", "error", err)
		return err
	}

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	checker := health.NewChecker(grpchealth.NewServer(), healthTimeout)
	checker.Register("store", db.PingContext)

	// Initialize repositories
	txGetter := repositories.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)

	// Initialize services
	identity := services.NewIdentityService(userReadRepo, userWriteRepo)
	opts := []services.VotingOption{services.WithDefaultLimit(cfg.LeaderboardLimit)}

	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		opts = append(opts, services.WithLeaderboardCache(
			repositories.NewLeaderboardCacheRepository(rdb, cfg.LeaderboardTTL),
		))
		checker.Register("cache", func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		logger.Log.Infow("leaderboard cache enabled", "addr", rdb.Options().Addr, "ttl", cfg.LeaderboardTTL)
	}

	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           50 * time.Millisecond,
		}
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Log.Errorw("failed to close Kafka writer", "error", err)
			}
		}()
		opts = append(opts, services.WithKafkaWriter(writer))
		logger.Log.Infow("event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	voting := services.NewVotingService(identity, services.Stores{
		Users:            userReadRepo,
		UserWriter:       userWriteRepo,
		Submissions:      repositories.NewSubmissionReadRepository(db, txGetter),
		SubmissionWriter: repositories.NewSubmissionWriteRepository(db, txGetter),
		Votes:            repositories.NewVoteReadRepository(db, txGetter),
		VoteWriter:       repositories.NewVoteWriteRepository(db, txGetter),
		Leaderboard:      repositories.NewLeaderboardReadRepository(db),
		Tx:               repositories.NewTxManager(db),
	}, opts...)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, identity, voting, newJWT(cfg)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcLis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("gRPC listen: %w", err)
	}
	grpcSrv := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, checker.Server())

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go checker.Run(ctxShutdown, healthInterval)

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", grpcLis.Addr())
		if err := grpcSrv.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcSrv.GracefulStop()

	logger.Log.Info("Servers stopped gracefully")
	return serveErr
}
