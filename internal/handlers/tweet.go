package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/models"
)

//go:generate mockgen -source=tweet.go -destination=tweet_mock.go -package=handlers

// TweetCreator defines the interface that the service must implement.
type TweetCreator interface {
	Create(ctx context.Context, authorID uuid.UUID, message string) (*models.TweetDB, error)
}

// TweetGetter loads a single tweet.
type TweetGetter interface {
	Get(ctx context.Context, tweetID uuid.UUID) (*models.TweetDB, error)
}

// TweetEditor edits a tweet on behalf of its author.
type TweetEditor interface {
	Edit(ctx context.Context, actorID, tweetID uuid.UUID, message string) (*models.TweetDB, error)
}

// TweetDeleter deletes a tweet on behalf of its author.
type TweetDeleter interface {
	Delete(ctx context.Context, actorID, tweetID uuid.UUID) error
}

// TweetRequest represents the JSON body for creating or editing a tweet
// swagger:model TweetRequest
type TweetRequest struct {
	// Message, 1 to 140 characters
	// required: true
	// default: Hello, world
	Message string `json:"message"`
}

// NewCreateTweetHandler returns an HTTP handler that posts a tweet as the current user.
// @Summary Post a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param tweetRequest body handlers.TweetRequest true "Tweet"
// @Success 201 {object} handlers.TweetResponse "Created tweet"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /tweets [post]
// @Security BearerAuth
func NewCreateTweetHandler(svc TweetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actorID(w, r)
		if !ok {
			return
		}

		var req TweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		tweet, err := svc.Create(r.Context(), userID, req.Message)
		if err != nil {
			writeServiceError(w, err, "create tweet")
			return
		}

		writeJSON(w, http.StatusCreated, toTweetResponse(tweet))
	}
}

// NewGetTweetHandler returns an HTTP handler that loads one tweet.
// @Summary Get a tweet
// @Tags tweets
// @Produce json
// @Param id path string true "Tweet ID"
// @Success 200 {object} handlers.TweetResponse "Tweet"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tweets/{id} [get]
// @Security BearerAuth
func NewGetTweetHandler(svc TweetGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tweetID, ok := idParam(w, r)
		if !ok {
			return
		}

		tweet, err := svc.Get(r.Context(), tweetID)
		if err != nil {
			writeServiceError(w, err, "get tweet")
			return
		}

		writeJSON(w, http.StatusOK, toTweetResponse(tweet))
	}
}

// NewEditTweetHandler returns an HTTP handler that replaces a tweet's message.
// @Summary Edit a tweet
// @Description Only the author may edit a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param id path string true "Tweet ID"
// @Param tweetRequest body handlers.TweetRequest true "New message"
// @Success 200 {object} handlers.TweetResponse "Edited tweet"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tweets/{id} [put]
// @Security BearerAuth
func NewEditTweetHandler(svc TweetEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actorID(w, r)
		if !ok {
			return
		}
		tweetID, ok := idParam(w, r)
		if !ok {
			return
		}

		var req TweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		tweet, err := svc.Edit(r.Context(), userID, tweetID, req.Message)
		if err != nil {
			writeServiceError(w, err, "edit tweet")
			return
		}

		writeJSON(w, http.StatusOK, toTweetResponse(tweet))
	}
}

// NewDeleteTweetHandler returns an HTTP handler that deletes a tweet and its likes.
// @Summary Delete a tweet
// @Description Only the author may delete a tweet
// @Tags tweets
// @Param id path string true "Tweet ID"
// @Success 204 "Deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tweets/{id} [delete]
// @Security BearerAuth
func NewDeleteTweetHandler(svc TweetDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actorID(w, r)
		if !ok {
			return
		}
		tweetID, ok := idParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, tweetID); err != nil {
			writeServiceError(w, err, "delete tweet")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
