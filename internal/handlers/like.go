package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/models"
)

//go:generate mockgen -source=like.go -destination=like_mock.go -package=handlers

// Liker adds a like edge.
type Liker interface {
	Like(ctx context.Context, userID, tweetID uuid.UUID) (bool, error)
}

// Unliker removes a like edge.
type Unliker interface {
	Unlike(ctx context.Context, userID, tweetID uuid.UUID) (bool, error)
}

// LikersLister lists who liked a tweet.
type LikersLister interface {
	LikersOf(ctx context.Context, tweetID uuid.UUID) ([]models.UserDB, error)
}

// LikeResponse reports the like state after the request
// swagger:model LikeResponse
type LikeResponse struct {
	// default: true
	Liked bool `json:"liked"`
}

// NewLikeHandler returns an HTTP handler that likes the tweet in the path.
// @Summary Like a tweet
// @Tags tweets
// @Produce json
// @Param id path string true "Tweet ID"
// @Success 201 {object} handlers.LikeResponse "Liked"
// @Success 200 {object} handlers.LikeResponse "Already liked"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tweets/{id}/like [post]
// @Security BearerAuth
func NewLikeHandler(svc Liker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actorID(w, r)
		if !ok {
			return
		}
		tweetID, ok := idParam(w, r)
		if !ok {
			return
		}

		created, err := svc.Like(r.Context(), userID, tweetID)
		if err != nil {
			writeServiceError(w, err, "like")
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, LikeResponse{Liked: true})
	}
}

// NewUnlikeHandler returns an HTTP handler that removes the current user's like.
// @Summary Unlike a tweet
// @Tags tweets
// @Param id path string true "Tweet ID"
// @Success 204 "Not liked"
// @Router /tweets/{id}/like [delete]
// @Security BearerAuth
func NewUnlikeHandler(svc Unliker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actorID(w, r)
		if !ok {
			return
		}
		tweetID, ok := idParam(w, r)
		if !ok {
			return
		}

		if _, err := svc.Unlike(r.Context(), userID, tweetID); err != nil {
			writeServiceError(w, err, "unlike")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewLikersHandler returns an HTTP handler listing who liked the tweet in the path.
// @Summary List likers
// @Tags tweets
// @Produce json
// @Param id path string true "Tweet ID"
// @Success 200 {object} handlers.UsersResponse "Likers"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tweets/{id}/likes [get]
// @Security BearerAuth
func NewLikersHandler(svc LikersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tweetID, ok := idParam(w, r)
		if !ok {
			return
		}

		users, err := svc.LikersOf(r.Context(), tweetID)
		if err != nil {
			writeServiceError(w, err, "likers")
			return
		}
		writeJSON(w, http.StatusOK, toUsersResponse(users))
	}
}
