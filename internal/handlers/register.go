package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.UserDB, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password1 string `json:"password1"`

	// Password confirmation
	// required: true
	// default: secret123
	Password2 string `json:"password2"`

	// Display name, defaults to the username
	// default: John
	Name string `json:"name"`
}

// AuthResponse carries a token together with the account it was issued for
// swagger:model AuthResponse
type AuthResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Account details
	User AccountView `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account and returns a token for it. Username and email must be unique, the two passwords must match.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/registration [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, token, err := svc.Register(r.Context(), models.RegisterInput{
			Username:  req.Username,
			Email:     req.Email,
			Password1: req.Password1,
			Password2: req.Password2,
			Name:      req.Name,
		})
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			Token: token,
			User:  newAccountView(user),
		})
	}
}
