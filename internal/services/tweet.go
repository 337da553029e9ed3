package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/logger"
	"github.com/sbilibin2017/gw-twitter/internal/models"
)

//go:generate mockgen -source=tweet.go -destination=tweet_mock.go -package=services

// TweetReader defines read-only operations for tweets.
type TweetReader interface {
	GetByID(ctx context.Context, tweetID uuid.UUID) (*models.TweetDB, error)
	ListFeed(ctx context.Context, viewerID uuid.UUID) ([]models.TweetDB, error)
}

// TweetWriter defines write operations for tweets.
type TweetWriter interface {
	Save(ctx context.Context, tweet *models.TweetDB) error
	UpdateMessage(ctx context.Context, tweet *models.TweetDB) error
	Delete(ctx context.Context, tweetID uuid.UUID) error
}

// TweetService owns tweets and their authorship rules.
type TweetService struct {
	reader      TweetReader
	writer      TweetWriter
	kafkaWriter KafkaWriter
}

// NewTweetService creates a new TweetService.
func NewTweetService(reader TweetReader, writer TweetWriter, kafkaWriter KafkaWriter) *TweetService {
	return &TweetService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a new tweet authored by authorID.
func (s *TweetService) Create(ctx context.Context, authorID uuid.UUID, message string) (*models.TweetDB, error) {
	if err := newValidationError(validateMessage(message)); err != nil {
		return nil, err
	}

	tweet := &models.TweetDB{
		TweetID:  uuid.New(),
		AuthorID: authorID,
		Message:  message,
	}
	if err := s.writer.Save(ctx, tweet); err != nil {
		logger.Log.Errorw("failed to save tweet", "author_id", authorID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventTweetCreated, authorID, tweet.TweetID)
	return tweet, nil
}

// Get returns the tweet or ErrNotFound.
func (s *TweetService) Get(ctx context.Context, tweetID uuid.UUID) (*models.TweetDB, error) {
	tweet, err := s.reader.GetByID(ctx, tweetID)
	if err != nil {
		logger.Log.Errorw("failed to get tweet", "tweet_id", tweetID, "error", err)
		return nil, err
	}
	if tweet == nil {
		return nil, ErrNotFound
	}
	return tweet, nil
}

// Edit replaces the message of a tweet owned by actorID.
// The message is validated before the tweet is looked up.
func (s *TweetService) Edit(ctx context.Context, actorID, tweetID uuid.UUID, message string) (*models.TweetDB, error) {
	if err := newValidationError(validateMessage(message)); err != nil {
		return nil, err
	}

	tweet, err := s.owned(ctx, actorID, tweetID)
	if err != nil {
		return nil, err
	}

	tweet.Message = message
	if err := s.writer.UpdateMessage(ctx, tweet); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Log.Errorw("failed to update tweet", "tweet_id", tweetID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventTweetEdited, actorID, tweetID)
	return tweet, nil
}

// Delete removes a tweet owned by actorID together with its likes.
func (s *TweetService) Delete(ctx context.Context, actorID, tweetID uuid.UUID) error {
	if _, err := s.owned(ctx, actorID, tweetID); err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, tweetID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		logger.Log.Errorw("failed to delete tweet", "tweet_id", tweetID, "error", err)
		return err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventTweetDeleted, actorID, tweetID)
	return nil
}

// ListForFeed returns the tweets of viewerID and of everyone viewerID follows, newest first.
func (s *TweetService) ListForFeed(ctx context.Context, viewerID uuid.UUID) ([]models.TweetDB, error) {
	tweets, err := s.reader.ListFeed(ctx, viewerID)
	if err != nil {
		logger.Log.Errorw("failed to list feed", "viewer_id", viewerID, "error", err)
		return nil, err
	}
	return tweets, nil
}

// owned loads the tweet and checks that actorID wrote it.
func (s *TweetService) owned(ctx context.Context, actorID, tweetID uuid.UUID) (*models.TweetDB, error) {
	tweet, err := s.Get(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet.AuthorID != actorID {
		logger.Log.Warnw("tweet modification by non-author rejected", "tweet_id", tweetID, "actor_id", actorID)
		return nil, ErrUnauthorized
	}
	return tweet, nil
}
