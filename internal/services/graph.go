package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/logger"
	"github.com/sbilibin2017/gw-twitter/internal/models"
)

//go:generate mockgen -source=graph.go -destination=graph_mock.go -package=services

// MsgSelfFollow is reported when a user tries to follow themselves.
const MsgSelfFollow = "you can't follow yourself"

// FollowWriter defines write operations for follow edges.
type FollowWriter interface {
	Save(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	Delete(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
}

// FollowReader resolves follow edges in both directions.
type FollowReader interface {
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error)
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error)
}

// LikeWriter defines write operations for like edges.
type LikeWriter interface {
	Save(ctx context.Context, userID, tweetID uuid.UUID) (bool, error)
	Delete(ctx context.Context, userID, tweetID uuid.UUID) (bool, error)
}

// LikeReader defines read operations for like edges.
type LikeReader interface {
	ListLikers(ctx context.Context, tweetID uuid.UUID) ([]models.UserDB, error)
}

// GraphService owns the follow and like edges.
// Duplicate edges are no-ops: the store keeps one edge per pair.
type GraphService struct {
	users        UserReader
	tweets       TweetReader
	followWriter FollowWriter
	followReader FollowReader
	likeWriter   LikeWriter
	likeReader   LikeReader
	kafkaWriter  KafkaWriter
}

// NewGraphService creates a new GraphService.
func NewGraphService(
	users UserReader,
	tweets TweetReader,
	followWriter FollowWriter,
	followReader FollowReader,
	likeWriter LikeWriter,
	likeReader LikeReader,
	kafkaWriter KafkaWriter,
) *GraphService {
	return &GraphService{
		users:        users,
		tweets:       tweets,
		followWriter: followWriter,
		followReader: followReader,
		likeWriter:   likeWriter,
		likeReader:   likeReader,
		kafkaWriter:  kafkaWriter,
	}
}

// Follow adds the followerID -> followedID edge and reports whether it is new.
func (s *GraphService) Follow(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	if followerID == followedID {
		return false, &ValidationError{Messages: []string{MsgSelfFollow}}
	}
	if err := s.userExists(ctx, followedID); err != nil {
		return false, err
	}

	created, err := s.followWriter.Save(ctx, followerID, followedID)
	if err != nil {
		logger.Log.Errorw("failed to save follow", "follower_id", followerID, "followed_id", followedID, "error", err)
		return false, err
	}
	if created {
		publishEvent(ctx, s.kafkaWriter, models.EventUserFollowed, followerID, followedID)
	}
	return created, nil
}

// Unfollow removes the followerID -> followedID edge and reports whether it existed.
func (s *GraphService) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	removed, err := s.followWriter.Delete(ctx, followerID, followedID)
	if err != nil {
		logger.Log.Errorw("failed to delete follow", "follower_id", followerID, "followed_id", followedID, "error", err)
		return false, err
	}
	if removed {
		publishEvent(ctx, s.kafkaWriter, models.EventUserUnfollowed, followerID, followedID)
	}
	return removed, nil
}

// Like adds the userID -> tweetID edge and reports whether it is new.
func (s *GraphService) Like(ctx context.Context, userID, tweetID uuid.UUID) (bool, error) {
	if err := s.tweetExists(ctx, tweetID); err != nil {
		return false, err
	}

	created, err := s.likeWriter.Save(ctx, userID, tweetID)
	if err != nil {
		logger.Log.Errorw("failed to save like", "user_id", userID, "tweet_id", tweetID, "error", err)
		return false, err
	}
	if created {
		publishEvent(ctx, s.kafkaWriter, models.EventTweetLiked, userID, tweetID)
	}
	return created, nil
}

// Unlike removes the userID -> tweetID edge and reports whether it existed.
func (s *GraphService) Unlike(ctx context.Context, userID, tweetID uuid.UUID) (bool, error) {
	removed, err := s.likeWriter.Delete(ctx, userID, tweetID)
	if err != nil {
		logger.Log.Errorw("failed to delete like", "user_id", userID, "tweet_id", tweetID, "error", err)
		return false, err
	}
	if removed {
		publishEvent(ctx, s.kafkaWriter, models.EventTweetUnliked, userID, tweetID)
	}
	return removed, nil
}

// FollowingOf returns the users userID follows.
func (s *GraphService) FollowingOf(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error) {
	if err := s.userExists(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.followReader.ListFollowing(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list following", "user_id", userID, "error", err)
		return nil, err
	}
	return users, nil
}

// FollowersOf returns the users following userID.
func (s *GraphService) FollowersOf(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error) {
	if err := s.userExists(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.followReader.ListFollowers(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list followers", "user_id", userID, "error", err)
		return nil, err
	}
	return users, nil
}

// LikersOf returns the users who liked tweetID.
func (s *GraphService) LikersOf(ctx context.Context, tweetID uuid.UUID) ([]models.UserDB, error) {
	if err := s.tweetExists(ctx, tweetID); err != nil {
		return nil, err
	}
	users, err := s.likeReader.ListLikers(ctx, tweetID)
	if err != nil {
		logger.Log.Errorw("failed to list likers", "tweet_id", tweetID, "error", err)
		return nil, err
	}
	return users, nil
}

func (s *GraphService) userExists(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return nil
}

func (s *GraphService) tweetExists(ctx context.Context, tweetID uuid.UUID) error {
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		logger.Log.Errorw("failed to get tweet", "tweet_id", tweetID, "error", err)
		return err
	}
	if tweet == nil {
		return ErrNotFound
	}
	return nil
}
