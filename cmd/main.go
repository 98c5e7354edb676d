package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	_ "github.com/sbilibin2017/gw-social-graph/docs"
	"github.com/sbilibin2017/gw-social-graph/internal/config"
	"github.com/sbilibin2017/gw-social-graph/internal/handlers"
	"github.com/sbilibin2017/gw-social-graph/internal/jwt"
	"github.com/sbilibin2017/gw-social-graph/internal/logger"
	"github.com/sbilibin2017/gw-social-graph/internal/middlewares"
	"github.com/sbilibin2017/gw-social-graph/internal/migrations"
	"github.com/sbilibin2017/gw-social-graph/internal/repositories"
	"github.com/sbilibin2017/gw-social-graph/internal/router"
	"github.com/sbilibin2017/gw-social-graph/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-social-graph API
// @version 1.0.0
// @description User accounts and follow graph service
// @host localhost:8080
// @BasePath /
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
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the application configuration.
func parseConfig(path string) (*config.Config, error) {
	return config.Load(path)
}

// run initializes the logger, database, Redis and HTTP server, then serves until ctx is
// cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if cfg.Postgres.Migrate {
		if err := migrations.Up(cfg.PostgresDSN()); err != nil {
			return err
		}
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer rdb.Close()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newHandler(cfg, db, rdb),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newHandler builds repositories, services and handlers on top of db and rdb and
// returns the routed HTTP handler.
func newHandler(cfg *config.Config, db *sqlx.DB, rdb *redis.Client) http.Handler {
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWTExpiration()),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	followingReadRepo := repositories.NewFollowingReadRepository(db, middlewares.GetTxFromContext)
	followingWriteRepo := repositories.NewFollowingWriteRepository(db, middlewares.GetTxFromContext)
	tokenRepo := repositories.NewTokenRevocationRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, tokenRepo)
	accountService := services.NewAccountService(userReadRepo, userWriteRepo)
	followingService := services.NewFollowingService(userReadRepo, followingReadRepo, followingWriteRepo)

	pagination := handlers.Pagination{
		PageSize:    cfg.Pagination.PageSize,
		MaxPageSize: cfg.Pagination.MaxPageSize,
	}

	return router.New(
		router.Handlers{
			Register:      handlers.NewRegisterHandler(authService),
			Login:         handlers.NewLoginHandler(authService),
			Logout:        handlers.NewLogoutHandler(authService),
			GetAccount:    handlers.NewGetAccountHandler(accountService),
			UpdateAccount: handlers.NewUpdateAccountHandler(accountService),
			GetProfile:    handlers.NewGetProfileHandler(accountService),
			UpdateProfile: handlers.NewUpdateProfileHandler(accountService),
			ListFollowing: handlers.NewListFollowingHandler(followingService, pagination),
			ListFollowers: handlers.NewListFollowersHandler(followingService, pagination),
			Follow:        handlers.NewFollowHandler(followingService),
			Unfollow:      handlers.NewUnfollowHandler(followingService),
		},
		router.Middlewares{
			Logging: middlewares.LoggingMiddleware(logger.Log),
			Auth:    middlewares.AuthMiddleware(tokens, tokenRepo),
			Tx:      middlewares.TxMiddleware(db),
		},
	)
}
