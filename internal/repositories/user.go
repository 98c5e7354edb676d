package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

const userColumns = `id, username, email, password_hash, name, first_name, last_name, phone_number,
	date_of_birth, gender, country, location, site, avatar, header, description,
	is_active, is_staff, created_at, updated_at`

// updatableUserColumns lists the columns Update may touch.
var updatableUserColumns = map[string]struct{}{
	"username":      {},
	"email":         {},
	"name":          {},
	"first_name":    {},
	"last_name":     {},
	"phone_number":  {},
	"date_of_birth": {},
	"gender":        {},
	"country":       {},
	"location":      {},
	"site":          {},
	"avatar":        {},
	"header":        {},
	"description":   {},
}

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByUsername returns the user with the given username, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	return r.getOne(ctx, "username = $1", username)
}

// GetByEmail returns the user with the given email, or nil if there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getOne(ctx, "email = $1", email)
}

func (r *UserReadRepository) getOne(ctx context.Context, where string, arg any) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where + ` LIMIT 1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(ctx, query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new user and returns its id.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.UserDB) (int64, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, name, is_active, is_staff, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query,
		user.Username, user.Email, user.PasswordHash, user.Name, user.IsActive, user.IsStaff)

	logQuery(ctx, query, []any{user.Username, user.Email, "***", user.Name, user.IsActive, user.IsStaff}, id, err)

	if err != nil {
		return 0, translatePgError(err)
	}
	return id, nil
}

// Update sets the given columns of user id. Only columns in updatableUserColumns are accepted.
// Returns sql.ErrNoRows if the user does not exist.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	columns := make([]string, 0, len(fields))
	for column := range fields {
		if _, ok := updatableUserColumns[column]; !ok {
			return fmt.Errorf("column %q is not updatable", column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	sets := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, column := range columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, fields[column])
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s, updated_at = NOW() WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		return translatePgError(err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
