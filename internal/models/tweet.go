package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxTweetLength is the maximum number of characters in a tweet message.
const MaxTweetLength = 140

// TweetDB represents a tweet row in the database.
// AuthorName and LikeCount are only filled by read queries.
type TweetDB struct {
	TweetID    uuid.UUID `json:"id" db:"tweet_id"`
	AuthorID   uuid.UUID `json:"author_id" db:"author_id"`
	AuthorName string    `json:"author_name,omitempty" db:"author_name"`
	Message    string    `json:"message" db:"message"`
	LikeCount  int64     `json:"like_count" db:"like_count"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
