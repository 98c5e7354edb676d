package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-social-graph/internal/logger"
	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

func TestUserRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	ctx := context.Background()
	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db, nil)

	user := &models.UserDB{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		Name:         "alice",
		IsActive:     true,
	}

	t.Run("Create and GetByID", func(t *testing.T) {
		id, err := writeRepo.Create(ctx, user)
		require.NoError(t, err)
		assert.NotZero(t, id)
		user.ID = id

		got, err := readRepo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.Equal(t, "hashed", got.PasswordHash)
		assert.True(t, got.IsActive)
		assert.False(t, got.IsStaff)
		assert.Nil(t, got.Avatar)
	})

	t.Run("GetByUsername and GetByEmail", func(t *testing.T) {
		got, err := readRepo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)

		got, err = readRepo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("Missing user returns nil", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, got)

		got, err = readRepo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		_, err := writeRepo.Create(ctx, &models.UserDB{
			Username: "alice", Email: "other@example.com", PasswordHash: "x", Name: "alice",
		})
		assert.ErrorIs(t, err, models.ErrDuplicateUsername)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		_, err := writeRepo.Create(ctx, &models.UserDB{
			Username: "alice2", Email: "alice@example.com", PasswordHash: "x", Name: "alice2",
		})
		assert.ErrorIs(t, err, models.ErrDuplicateEmail)
	})

	t.Run("Update sets and clears fields", func(t *testing.T) {
		err := writeRepo.Update(ctx, user.ID, map[string]any{
			"description": "hello",
			"location":    "Paris",
		})
		require.NoError(t, err)

		got, err := readRepo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Description)
		assert.Equal(t, "hello", *got.Description)
		require.NotNil(t, got.Location)
		assert.Equal(t, "Paris", *got.Location)

		err = writeRepo.Update(ctx, user.ID, map[string]any{"location": nil})
		require.NoError(t, err)

		got, err = readRepo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Location)
		require.NotNil(t, got.Description)
	})

	t.Run("Update missing user", func(t *testing.T) {
		err := writeRepo.Update(ctx, 999999, map[string]any{"name": "x"})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("Update to a taken username", func(t *testing.T) {
		bobID := createTestUser(t, db, "bob")
		err := writeRepo.Update(ctx, bobID, map[string]any{"username": "alice"})
		assert.ErrorIs(t, err, models.ErrDuplicateUsername)
	})

	t.Run("Update rejects invalid gender", func(t *testing.T) {
		err := writeRepo.Update(ctx, user.ID, map[string]any{"gender": "unknown"})
		assert.Error(t, err)
	})
}

func TestUserWriteRepository_UpdateQuery(t *testing.T) {
	require.NoError(t, logger.Initialize("debug"))

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := sqlx.NewDb(sqlDB, "sqlmock")
	repo := NewUserWriteRepository(db, nil)

	t.Run("columns are sorted and updated_at is set", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(
			`UPDATE users SET location = $1, name = $2, updated_at = NOW() WHERE id = $3`,
		)).WithArgs("Paris", "Alice", int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), 7, map[string]any{"name": "Alice", "location": "Paris"})
		assert.NoError(t, err)
	})

	t.Run("unknown column is rejected without a query", func(t *testing.T) {
		err := repo.Update(context.Background(), 7, map[string]any{"is_staff": true})
		assert.Error(t, err)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		err := repo.Update(context.Background(), 7, nil)
		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_UsesTransactionFromContext(t *testing.T) {
	require.NoError(t, logger.Initialize("debug"))

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := sqlx.NewDb(sqlDB, "sqlmock")

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	var calls int
	repo := NewUserReadRepository(db, func(ctx context.Context) *sqlx.Tx {
		calls++
		return tx
	})

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1 LIMIT 1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "name"}).
			AddRow(int64(1), "alice", "alice@example.com", "hash", "Alice"))
	mock.ExpectRollback()

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, 1, calls)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
