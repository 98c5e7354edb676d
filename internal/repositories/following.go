package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

// FollowingWriteRepository handles follow edge write operations
type FollowingWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFollowingWriteRepository(db *sqlx.DB, txGetter TxGetter) *FollowingWriteRepository {
	return &FollowingWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts the edge userID -> followingUserID. It reports false without error
// when the edge already exists.
func (r *FollowingWriteRepository) Create(ctx context.Context, userID, followingUserID int64) (bool, error) {
	const query = `
		INSERT INTO followings (user_id, following_user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, following_user_id) DO NOTHING
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, userID, followingUserID)

	logQuery(ctx, query, []any{userID, followingUserID}, id, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, translatePgError(err)
	}
	return true, nil
}

// Delete removes the edge userID -> followingUserID and returns the number of deleted rows.
func (r *FollowingWriteRepository) Delete(ctx context.Context, userID, followingUserID int64) (int64, error) {
	const query = `
		DELETE FROM followings
		WHERE user_id = $1 AND following_user_id = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, followingUserID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{userID, followingUserID}, rowsAffected, err)

	return rowsAffected, err
}

// FollowingReadRepository handles follow edge read operations
type FollowingReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFollowingReadRepository(db *sqlx.DB, txGetter TxGetter) *FollowingReadRepository {
	return &FollowingReadRepository{db: db, txGetter: txGetter}
}

// Exists reports whether the edge userID -> followingUserID exists.
func (r *FollowingReadRepository) Exists(ctx context.Context, userID, followingUserID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM followings WHERE user_id = $1 AND following_user_id = $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, userID, followingUserID)

	logQuery(ctx, query, []any{userID, followingUserID}, exists, err)

	return exists, err
}

// CountFollowing returns how many users userID follows.
func (r *FollowingReadRepository) CountFollowing(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM followings WHERE user_id = $1`
	return r.count(ctx, query, userID)
}

// CountFollowers returns how many users follow userID.
func (r *FollowingReadRepository) CountFollowers(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM followings WHERE following_user_id = $1`
	return r.count(ctx, query, userID)
}

// ListFollowing returns the users userID follows, ordered by username.
func (r *FollowingReadRepository) ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]models.UserSummary, error) {
	const query = `
		SELECT u.id, u.username, u.name, u.avatar
		FROM followings f
		JOIN users u ON u.id = f.following_user_id
		WHERE f.user_id = $1
		ORDER BY u.username ASC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, userID, limit, offset)
}

// ListFollowers returns the users following userID, ordered by username.
func (r *FollowingReadRepository) ListFollowers(ctx context.Context, userID int64, limit, offset int) ([]models.UserSummary, error) {
	const query = `
		SELECT u.id, u.username, u.name, u.avatar
		FROM followings f
		JOIN users u ON u.id = f.user_id
		WHERE f.following_user_id = $1
		ORDER BY u.username ASC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, userID, limit, offset)
}

func (r *FollowingReadRepository) count(ctx context.Context, query string, userID int64) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, userID)

	logQuery(ctx, query, []any{userID}, count, err)

	return count, err
}

func (r *FollowingReadRepository) list(ctx context.Context, query string, userID int64, limit, offset int) ([]models.UserSummary, error) {
	users := []models.UserSummary{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, userID, limit, offset)

	logQuery(ctx, query, []any{userID, limit, offset}, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}
