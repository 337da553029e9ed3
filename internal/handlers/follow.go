package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/models"
)

//go:generate mockgen -source=follow.go -destination=follow_mock.go -package=handlers

// Follower adds a follow edge.
type Follower interface {
	Follow(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
}

// Unfollower removes a follow edge.
type Unfollower interface {
	Unfollow(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
}

// FollowingLister lists the users someone follows.
type FollowingLister interface {
	FollowingOf(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error)
}

// FollowersLister lists the followers of a user.
type FollowersLister interface {
	FollowersOf(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error)
}

// FollowResponse reports the follow state after the request
// swagger:model FollowResponse
type FollowResponse struct {
	// default: true
	Following bool `json:"following"`
}

// NewFollowHandler returns an HTTP handler that follows the user in the path.
// @Summary Follow a user
// @Description Following someone already followed is a no-op answered with 200
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 201 {object} handlers.FollowResponse "Now following"
// @Success 200 {object} handlers.FollowResponse "Already following"
// @Failure 400 {object} handlers.ValidationErrorResponse "Cannot follow yourself"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /users/{id}/follow [post]
// @Security BearerAuth
func NewFollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actorID(w, r)
		if !ok {
			return
		}
		followedID, ok := idParam(w, r)
		if !ok {
			return
		}

		created, err := svc.Follow(r.Context(), userID, followedID)
		if err != nil {
			writeServiceError(w, err, "follow")
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, FollowResponse{Following: true})
	}
}

// NewUnfollowHandler returns an HTTP handler that unfollows the user in the path.
// @Summary Unfollow a user
// @Tags users
// @Param id path string true "User ID"
// @Success 204 "Not following"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Router /users/{id}/follow [delete]
// @Security BearerAuth
func NewUnfollowHandler(svc Unfollower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actorID(w, r)
		if !ok {
			return
		}
		followedID, ok := idParam(w, r)
		if !ok {
			return
		}

		if _, err := svc.Unfollow(r.Context(), userID, followedID); err != nil {
			writeServiceError(w, err, "unfollow")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewFollowingHandler returns an HTTP handler listing who the user in the path follows.
// @Summary List followed users
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UsersResponse "Followed users"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /users/{id}/following [get]
// @Security BearerAuth
func NewFollowingHandler(svc FollowingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := idParam(w, r)
		if !ok {
			return
		}

		users, err := svc.FollowingOf(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, "following")
			return
		}
		writeJSON(w, http.StatusOK, toUsersResponse(users))
	}
}

// NewFollowersHandler returns an HTTP handler listing the followers of the user in the path.
// @Summary List followers
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UsersResponse "Followers"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /users/{id}/followers [get]
// @Security BearerAuth
func NewFollowersHandler(svc FollowersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := idParam(w, r)
		if !ok {
			return
		}

		users, err := svc.FollowersOf(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, "followers")
			return
		}
		writeJSON(w, http.StatusOK, toUsersResponse(users))
	}
}
