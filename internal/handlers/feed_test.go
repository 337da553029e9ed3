package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFeedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFeedLister(ctrl)
	handler := NewFeedHandler(mockSvc)
	viewerID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("newest first as returned", func(t *testing.T) {
		newer := models.TweetDB{TweetID: uuid.New(), Message: "newer", CreatedAt: now}
		older := models.TweetDB{TweetID: uuid.New(), Message: "older", CreatedAt: now.Add(-time.Minute)}
		mockSvc.EXPECT().ListForFeed(gomock.Any(), viewerID).Return([]models.TweetDB{newer, older}, nil)

		rr := httptest.NewRecorder()
		handler(rr, withClaims(httptest.NewRequest(http.MethodGet, "/feed", nil), viewerID))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp TweetsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Tweets, 2)
		assert.Equal(t, "newer", resp.Tweets[0].Message)
		assert.Equal(t, "older", resp.Tweets[1].Message)
	})

	t.Run("empty feed is an empty list", func(t *testing.T) {
		mockSvc.EXPECT().ListForFeed(gomock.Any(), viewerID).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler(rr, withClaims(httptest.NewRequest(http.MethodGet, "/feed", nil), viewerID))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"tweets":[]}`, rr.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.EXPECT().ListForFeed(gomock.Any(), viewerID).Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		handler(rr, withClaims(httptest.NewRequest(http.MethodGet, "/feed", nil), viewerID))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
