package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-social-graph/internal/jwt"
	"github.com/sbilibin2017/gw-social-graph/internal/logger"
	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

const msgNotAuthenticated = "Authentication credentials were not provided."

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token was revoked on logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware rejects requests without a valid, unrevoked token and
// stores the authenticated Principal in the request context.
func AuthMiddleware(tokener Tokener, revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, msgNotAuthenticated)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, msgNotAuthenticated)
				return
			}

			isRevoked, err := revoked.IsRevoked(ctx, claims.ID)
			if err != nil {
				log.Errorw("failed to check token revocation", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if isRevoked {
				log.Infow("revoked token used", "user_id", claims.UserID)
				writeError(w, http.StatusUnauthorized, msgNotAuthenticated)
				return
			}

			principal := models.Principal{
				UserID:  claims.UserID,
				IsStaff: claims.IsStaff,
				TokenID: claims.ID,
			}
			if claims.ExpiresAt != nil {
				principal.ExpiresAt = claims.ExpiresAt.Time
			} else {
				principal.ExpiresAt = time.Now()
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, principal)))
		})
	}
}

type principalKey struct{}

// WithPrincipal stores the authenticated principal in the context.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// PrincipalFromContext returns the principal stored by AuthMiddleware.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(models.Principal)
	return principal, ok
}
