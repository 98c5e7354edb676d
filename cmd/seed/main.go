// Command seed fills the database with fake users and follow edges for local development.
package main

import (
	"context"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-social-graph/internal/config"
	"github.com/sbilibin2017/gw-social-graph/internal/jwt"
	"github.com/sbilibin2017/gw-social-graph/internal/logger"
	"github.com/sbilibin2017/gw-social-graph/internal/migrations"
	"github.com/sbilibin2017/gw-social-graph/internal/repositories"
	"github.com/sbilibin2017/gw-social-graph/internal/seed"
	"github.com/sbilibin2017/gw-social-graph/internal/services"
)

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	numUsers := flag.Int("users", 50, "Number of users to create")
	numFollows := flag.Int("follows", 10, "Maximum number of users each seeded user follows")
	password := flag.String("password", seed.DefaultPassword, "Password of every seeded user")
	randSeed := flag.Int64("seed", 0, "Random seed, 0 picks one")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	if cfg.Postgres.Migrate {
		if err := migrations.Up(cfg.PostgresDSN()); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
	}

	userReadRepo := repositories.NewUserReadRepository(db, nil)
	userWriteRepo := repositories.NewUserWriteRepository(db, nil)
	followingReadRepo := repositories.NewFollowingReadRepository(db, nil)
	followingWriteRepo := repositories.NewFollowingWriteRepository(db, nil)

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWTExpiration()),
	)

	// no logout happens while seeding, so there is no revocation store
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, nil)
	accountService := services.NewAccountService(userReadRepo, userWriteRepo)
	followingService := services.NewFollowingService(userReadRepo, followingReadRepo, followingWriteRepo)

	s := seed.NewSeeder(authService, accountService, followingService, seed.Options{
		Users:          *numUsers,
		FollowsPerUser: *numFollows,
		Password:       *password,
		Seed:           *randSeed,
	})

	res, err := s.Run(ctx)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	logger.Log.Infow("seeding finished", "users", len(res.Users), "follows", res.Follows)
	log.Printf("All seeded users have the password: %s", *password)
}
