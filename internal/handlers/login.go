package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.UserDB, error)
}

// Logouter revokes the token of the current request.
type Logouter interface {
	Logout(ctx context.Context, principal models.Principal) error
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// DetailResponse is a plain confirmation message
// swagger:model DetailResponse
type DetailResponse struct {
	// default: Successfully logged out.
	Detail string `json:"detail"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.AuthResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or credentials"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{
			Token: token,
			User:  newAccountView(user),
		})
	}
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's token.
// @Summary User logout
// @Description Revokes the token used for this request
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.DetailResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		if err := svc.Logout(r.Context(), principal); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, DetailResponse{Detail: "Successfully logged out."})
	}
}
