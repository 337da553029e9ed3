package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/models"
)

//go:generate mockgen -source=feed.go -destination=feed_mock.go -package=handlers

// FeedLister defines the interface that the service must implement.
type FeedLister interface {
	ListForFeed(ctx context.Context, viewerID uuid.UUID) ([]models.TweetDB, error)
}

// NewFeedHandler returns an HTTP handler for the current user's feed.
// @Summary Get feed
// @Description Tweets by the current user and everyone they follow, newest first
// @Tags tweets
// @Produce json
// @Success 200 {object} handlers.TweetsResponse "Feed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /feed [get]
// @Security BearerAuth
func NewFeedHandler(svc FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actorID(w, r)
		if !ok {
			return
		}

		tweets, err := svc.ListForFeed(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, "feed")
			return
		}

		resp := TweetsResponse{Tweets: make([]TweetResponse, 0, len(tweets))}
		for i := range tweets {
			resp.Tweets = append(resp.Tweets, toTweetResponse(&tweets[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
