package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

//go:generate mockgen -source=follow.go -destination=follow_mock.go -package=handlers

// Follower creates follow edges.
type Follower interface {
	Follow(ctx context.Context, userID, targetID int64) error
}

// Unfollower removes follow edges.
type Unfollower interface {
	Unfollow(ctx context.Context, userID, targetID int64) error
}

// FollowingLister lists the users someone follows.
type FollowingLister interface {
	ListFollowing(ctx context.Context, userID int64, page models.PageRequest) (*models.UserSummaryPage, error)
}

// FollowersLister lists the followers of someone.
type FollowersLister interface {
	ListFollowers(ctx context.Context, userID int64, page models.PageRequest) (*models.UserSummaryPage, error)
}

// FollowRequest represents the JSON body of a follow request
// swagger:model FollowRequest
type FollowRequest struct {
	// ID of the user to follow
	// required: true
	// default: 1
	FollowingUserID *int64 `json:"following_user_id"`
}

// UnfollowRequest represents the JSON body of an unfollow request
// swagger:model UnfollowRequest
type UnfollowRequest struct {
	// ID of the user to unfollow
	// required: true
	// default: 1
	UnfollowingUserID *int64 `json:"unfollowing_user_id"`
}

// UserSummaryPageResponse is one page of a follow listing
// swagger:model UserSummaryPageResponse
type UserSummaryPageResponse struct {
	// Total number of users in the listing
	Count int `json:"count"`

	// Absolute URL of the next page
	Next *string `json:"next"`

	// Absolute URL of the previous page
	Previous *string `json:"previous"`

	Results []models.UserSummary `json:"results"`
}

// NewFollowHandler returns an HTTP handler that makes the caller follow another user.
// Following yourself or someone you already follow succeeds without changes.
// @Summary Follow user
// @Tags following
// @Accept json
// @Produce json
// @Param followRequest body handlers.FollowRequest true "User to follow"
// @Success 200 {object} handlers.FollowRequest "Followed"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/follow [post]
// @Security BearerAuth
func NewFollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req FollowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if req.FollowingUserID == nil {
			writeFieldErrors(w, map[string][]string{"following_user_id": {msgRequired}})
			return
		}

		if err := svc.Follow(r.Context(), principal.UserID, *req.FollowingUserID); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, req)
	}
}

// NewUnfollowHandler returns an HTTP handler that makes the caller unfollow another user.
// @Summary Unfollow user
// @Tags following
// @Accept json
// @Produce json
// @Param unfollowRequest body handlers.UnfollowRequest true "User to unfollow"
// @Success 200 {object} handlers.UnfollowRequest "Unfollowed"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User or following not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/unfollow [post]
// @Security BearerAuth
func NewUnfollowHandler(svc Unfollower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req UnfollowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if req.UnfollowingUserID == nil {
			writeFieldErrors(w, map[string][]string{"unfollowing_user_id": {msgRequired}})
			return
		}

		if err := svc.Unfollow(r.Context(), principal.UserID, *req.UnfollowingUserID); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, req)
	}
}

// NewListFollowingHandler returns an HTTP handler listing the users someone follows.
// @Summary List following
// @Description Users followed by the given user, ordered by username
// @Tags following
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} handlers.UserSummaryPageResponse "Page of users"
// @Failure 404 {object} handlers.ErrorResponse "Invalid page"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/{id}/following [get]
func NewListFollowingHandler(svc FollowingLister, pagination Pagination) http.HandlerFunc {
	return newListHandler(svc.ListFollowing, pagination)
}

// NewListFollowersHandler returns an HTTP handler listing the followers of someone.
// @Summary List followers
// @Description Users following the given user, ordered by username
// @Tags following
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} handlers.UserSummaryPageResponse "Page of users"
// @Failure 404 {object} handlers.ErrorResponse "Invalid page"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/{id}/followers [get]
func NewListFollowersHandler(svc FollowersLister, pagination Pagination) http.HandlerFunc {
	return newListHandler(svc.ListFollowers, pagination)
}

func newListHandler(
	list func(ctx context.Context, userID int64, page models.PageRequest) (*models.UserSummaryPage, error),
	pagination Pagination,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}

		pageReq, ok := pagination.parse(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgInvalidPage)
			return
		}

		page, err := list(r.Context(), id, pageReq)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		resp := UserSummaryPageResponse{
			Count:   page.Count,
			Results: page.Results,
		}
		if pageReq.Page < pageReq.Pages(page.Count) {
			next := pageURL(r, pageReq.Page+1)
			resp.Next = &next
		}
		if pageReq.Page > 1 {
			prev := pageURL(r, pageReq.Page-1)
			resp.Previous = &prev
		}
		if resp.Results == nil {
			resp.Results = []models.UserSummary{}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
