package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-social-graph/internal/logger"
	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

// Postgres SQLSTATE codes
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the request transaction when there is one, otherwise the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs the query in a single line together with its args, result and error.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Infow(
		"query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// translatePgError maps constraint violations to model errors.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case "users_username_key":
			return fmt.Errorf("%w: %s", models.ErrDuplicateUsername, pgErr.Detail)
		case "users_email_key":
			return fmt.Errorf("%w: %s", models.ErrDuplicateEmail, pgErr.Detail)
		case "unique_followers":
			return fmt.Errorf("%w: %s", models.ErrDuplicateFollowing, pgErr.Detail)
		}
	case pgCheckViolation:
		if pgErr.ConstraintName == "self_not_follow" {
			return models.ErrSelfFollow
		}
	}
	return err
}
