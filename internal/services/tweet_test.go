package services_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/models"
	"github.com/sbilibin2017/gw-twitter/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func newTweetService(ctrl *gomock.Controller) (*services.TweetService, *services.MockTweetReader, *services.MockTweetWriter, *services.MockKafkaWriter) {
	reader := services.NewMockTweetReader(ctrl)
	writer := services.NewMockTweetWriter(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)
	return services.NewTweetService(reader, writer, kafkaWriter), reader, writer, kafkaWriter
}

func TestTweetService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, kafkaWriter := newTweetService(ctrl)
	ctx := context.Background()
	authorID := uuid.New()

	t.Run("140 characters accepted", func(t *testing.T) {
		msg := strings.Repeat("a", models.MaxTweetLength)
		writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		tweet, err := svc.Create(ctx, authorID, msg)
		assert.NoError(t, err)
		assert.Equal(t, authorID, tweet.AuthorID)
		assert.Equal(t, msg, tweet.Message)
		assert.NotEqual(t, uuid.Nil, tweet.TweetID)
	})

	t.Run("141 characters rejected", func(t *testing.T) {
		tweet, err := svc.Create(ctx, authorID, strings.Repeat("a", models.MaxTweetLength+1))
		assert.Nil(t, tweet)

		var verr *services.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{services.MsgTweetTooLong}, verr.Messages)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, authorID, "")

		var verr *services.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{services.MsgTweetEmpty}, verr.Messages)
	})

	t.Run("publish failure does not fail create", func(t *testing.T) {
		writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))

		tweet, err := svc.Create(ctx, authorID, "hello")
		assert.NoError(t, err)
		assert.NotNil(t, tweet)
	})

	t.Run("writer error", func(t *testing.T) {
		writer.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("insert failed"))

		tweet, err := svc.Create(ctx, authorID, "hello")
		assert.EqualError(t, err, "insert failed")
		assert.Nil(t, tweet)
	})
}

func TestTweetService_CreateWithoutKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockTweetWriter(ctrl)
	svc := services.NewTweetService(services.NewMockTweetReader(ctrl), writer, nil)

	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	tweet, err := svc.Create(context.Background(), uuid.New(), "no broker configured")
	assert.NoError(t, err)
	assert.NotNil(t, tweet)
}

func TestTweetService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _ := newTweetService(ctrl)
	ctx := context.Background()
	id := uuid.New()

	reader.EXPECT().GetByID(ctx, id).Return(&models.TweetDB{TweetID: id}, nil)
	tweet, err := svc.Get(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, id, tweet.TweetID)

	reader.EXPECT().GetByID(ctx, id).Return(nil, nil)
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, services.ErrNotFound)

	reader.EXPECT().GetByID(ctx, id).Return(nil, errors.New("db error"))
	_, err = svc.Get(ctx, id)
	assert.EqualError(t, err, "db error")
}

func TestTweetService_Edit(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()
	tweetID := uuid.New()

	tests := []struct {
		name    string
		actorID uuid.UUID
		message string
		setup   func(r *services.MockTweetReader, w *services.MockTweetWriter, k *services.MockKafkaWriter)
		wantErr error
	}{
		{
			name:    "author edits",
			actorID: authorID,
			message: "edited",
			setup: func(r *services.MockTweetReader, w *services.MockTweetWriter, k *services.MockKafkaWriter) {
				r.EXPECT().GetByID(ctx, tweetID).Return(&models.TweetDB{TweetID: tweetID, AuthorID: authorID, Message: "original"}, nil)
				w.EXPECT().UpdateMessage(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, tw *models.TweetDB) error {
						assert.Equal(t, "edited", tw.Message)
						assert.Equal(t, authorID, tw.AuthorID)
						return nil
					})
				k.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:    "empty message fails before lookup",
			actorID: authorID,
			message: "",
			setup:   func(r *services.MockTweetReader, w *services.MockTweetWriter, k *services.MockKafkaWriter) {},
			wantErr: &services.ValidationError{Messages: []string{services.MsgTweetEmpty}},
		},
		{
			name:    "missing tweet",
			actorID: authorID,
			message: "edited",
			setup: func(r *services.MockTweetReader, w *services.MockTweetWriter, k *services.MockKafkaWriter) {
				r.EXPECT().GetByID(ctx, tweetID).Return(nil, nil)
			},
			wantErr: services.ErrNotFound,
		},
		{
			name:    "non-author",
			actorID: uuid.New(),
			message: "hijacked",
			setup: func(r *services.MockTweetReader, w *services.MockTweetWriter, k *services.MockKafkaWriter) {
				r.EXPECT().GetByID(ctx, tweetID).Return(&models.TweetDB{TweetID: tweetID, AuthorID: authorID}, nil)
			},
			wantErr: services.ErrUnauthorized,
		},
		{
			name:    "deleted concurrently",
			actorID: authorID,
			message: "edited",
			setup: func(r *services.MockTweetReader, w *services.MockTweetWriter, k *services.MockKafkaWriter) {
				r.EXPECT().GetByID(ctx, tweetID).Return(&models.TweetDB{TweetID: tweetID, AuthorID: authorID}, nil)
				w.EXPECT().UpdateMessage(ctx, gomock.Any()).Return(sql.ErrNoRows)
			},
			wantErr: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, reader, writer, kafkaWriter := newTweetService(ctrl)
			tt.setup(reader, writer, kafkaWriter)

			tweet, err := svc.Edit(ctx, tt.actorID, tweetID, tt.message)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, tweet)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.message, tweet.Message)
		})
	}
}

func TestTweetService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, kafkaWriter := newTweetService(ctrl)
	ctx := context.Background()
	authorID := uuid.New()
	tweetID := uuid.New()
	tweet := &models.TweetDB{TweetID: tweetID, AuthorID: authorID}

	t.Run("author deletes", func(t *testing.T) {
		reader.EXPECT().GetByID(ctx, tweetID).Return(tweet, nil)
		writer.EXPECT().Delete(ctx, tweetID).Return(nil)
		kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				assert.Equal(t, tweetID.String(), string(msgs[0].Key))
				assert.Contains(t, string(msgs[0].Value), models.EventTweetDeleted)
				return nil
			})

		assert.NoError(t, svc.Delete(ctx, authorID, tweetID))
	})

	t.Run("non-author", func(t *testing.T) {
		reader.EXPECT().GetByID(ctx, tweetID).Return(tweet, nil)
		assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), tweetID), services.ErrUnauthorized)
	})

	t.Run("missing", func(t *testing.T) {
		reader.EXPECT().GetByID(ctx, tweetID).Return(nil, nil)
		assert.ErrorIs(t, svc.Delete(ctx, authorID, tweetID), services.ErrNotFound)
	})

	t.Run("vanished before delete", func(t *testing.T) {
		reader.EXPECT().GetByID(ctx, tweetID).Return(tweet, nil)
		writer.EXPECT().Delete(ctx, tweetID).Return(sql.ErrNoRows)
		assert.ErrorIs(t, svc.Delete(ctx, authorID, tweetID), services.ErrNotFound)
	})

	t.Run("writer error", func(t *testing.T) {
		reader.EXPECT().GetByID(ctx, tweetID).Return(tweet, nil)
		writer.EXPECT().Delete(ctx, tweetID).Return(errors.New("tx failed"))
		assert.EqualError(t, svc.Delete(ctx, authorID, tweetID), "tx failed")
	})
}

func TestTweetService_ListForFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _ := newTweetService(ctrl)
	ctx := context.Background()
	viewerID := uuid.New()

	feed := []models.TweetDB{{TweetID: uuid.New()}, {TweetID: uuid.New()}}
	reader.EXPECT().ListFeed(ctx, viewerID).Return(feed, nil)

	got, err := svc.ListForFeed(ctx, viewerID)
	assert.NoError(t, err)
	assert.Equal(t, feed, got)

	reader.EXPECT().ListFeed(ctx, viewerID).Return(nil, errors.New("db error"))
	_, err = svc.ListForFeed(ctx, viewerID)
	assert.Error(t, err)
}
