package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

//go:generate mockgen -source=account.go -destination=account_mock.go -package=handlers

// ProfileGetter returns public profiles.
type ProfileGetter interface {
	GetProfile(ctx context.Context, id int64) (*models.UserDB, error)
}

// PersonalInfoUpdater edits public profiles.
type PersonalInfoUpdater interface {
	AuthorizeProfileUpdate(ctx context.Context, principal models.Principal, id int64) (*models.UserDB, error)
	UpdatePersonalInfo(ctx context.Context, principal models.Principal, id int64, patch models.PersonalInfoPatch) (*models.UserDB, error)
}

// AccountGetter returns the caller's own account.
type AccountGetter interface {
	GetAccount(ctx context.Context, principal models.Principal) (*models.UserDB, error)
}

// AccountUpdater edits the caller's own account.
type AccountUpdater interface {
	UpdateAccount(ctx context.Context, principal models.Principal, patch models.AccountPatch) (*models.UserDB, error)
}

// userIDParam parses the {id} path parameter. It writes a 404 and reports false when it is not a valid id.
func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return id, true
}

// NewGetProfileHandler returns an HTTP handler for reading a public profile.
// @Summary Get user profile
// @Description Returns the public profile of an active user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} handlers.ProfileView "User profile"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/{id} [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}

		user, err := svc.GetProfile(r.Context(), id)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, newProfileView(user))
	}
}

// NewUpdateProfileHandler returns an HTTP handler for editing a public profile.
// Keys other than name, avatar, header, description, location and site are ignored.
// @Summary Update user profile
// @Description Partially updates the public profile. Only the owner or staff may do this.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param patch body models.PersonalInfoPatch true "Fields to change"
// @Success 200 {object} handlers.ProfileView "Updated profile"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/{id} [patch]
// @Security BearerAuth
func NewUpdateProfileHandler(svc PersonalInfoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}

		// a missing profile or a foreign one is reported before the body is looked at
		if _, err := svc.AuthorizeProfileUpdate(r.Context(), principal, id); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		var patch models.PersonalInfoPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.UpdatePersonalInfo(r.Context(), principal, id, patch)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, newProfileView(user))
	}
}

// NewGetAccountHandler returns an HTTP handler for reading the caller's account.
// @Summary Get own account
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.AccountView "Account details"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/user [get]
// @Security BearerAuth
func NewGetAccountHandler(svc AccountGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		user, err := svc.GetAccount(r.Context(), principal)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, newAccountView(user))
	}
}

// NewUpdateAccountHandler returns an HTTP handler for editing the caller's account.
// @Summary Update own account
// @Description Partially updates username, name, email and personal details
// @Tags auth
// @Accept json
// @Produce json
// @Param patch body models.AccountPatch true "Fields to change"
// @Success 200 {object} handlers.AccountView "Updated account"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/user [patch]
// @Security BearerAuth
func NewUpdateAccountHandler(svc AccountUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var patch models.AccountPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.UpdateAccount(r.Context(), principal, patch)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, newAccountView(user))
	}
}
