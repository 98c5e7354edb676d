package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-social-graph/internal/logger"
	"github.com/sbilibin2017/gw-social-graph/internal/migrations"
	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	require.NoError(t, logger.Initialize("debug"))
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	require.Eventually(t, func() bool {
		db, err = sqlx.Connect("pgx", dsn)
		return err == nil
	}, 30*time.Second, 500*time.Millisecond)

	require.NoError(t, migrations.Up(dsn))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func createTestUser(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()
	repo := NewUserWriteRepository(db, nil)
	id, err := repo.Create(context.Background(), &models.UserDB{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Name:         username,
		IsActive:     true,
	})
	require.NoError(t, err)
	return id
}
