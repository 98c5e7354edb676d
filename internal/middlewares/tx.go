package middlewares

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-social-graph/internal/logger"
)

// TxBeginner starts transactions. Satisfied by *sqlx.DB.
type TxBeginner interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// TxMiddleware runs the handler inside one database transaction. The response is buffered:
// a status below 400 commits and then flushes the response, anything else rolls back.
func TxMiddleware(db TxBeginner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					_ = tx.Rollback()
					panic(rec)
				}
			}()

			buf := &bufferedResponseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(buf, r.WithContext(setTxToContext(r.Context(), tx)))

			if buf.status >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					log.Errorw("failed to rollback transaction", "error", err)
				}
				buf.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				log.Errorw("failed to commit transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			buf.flush()
		})
	}
}

// bufferedResponseWriter holds back the status and body until the transaction outcome is known.
// Headers go straight to the underlying writer's map since they are not sent before WriteHeader.
type bufferedResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (b *bufferedResponseWriter) WriteHeader(code int) {
	b.status = code
}

func (b *bufferedResponseWriter) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

func (b *bufferedResponseWriter) flush() {
	b.ResponseWriter.WriteHeader(b.status)
	_, _ = b.ResponseWriter.Write(b.body.Bytes())
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
