package models

// Activity event types published to Kafka.
const (
	EventTweetCreated   = "tweet.created"
	EventTweetEdited    = "tweet.edited"
	EventTweetDeleted   = "tweet.deleted"
	EventTweetLiked     = "tweet.liked"
	EventTweetUnliked   = "tweet.unliked"
	EventUserFollowed   = "user.followed"
	EventUserUnfollowed = "user.unfollowed"
)

// Event represents a social activity, including who did it, to what, and when.
type Event struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`  // Timestamp is the Unix time (in seconds) when the event occurred.
	Type      string `json:"type"`       // Type is one of the Event* constants.
	ActorID   string `json:"actor_id"`   // ActorID is the user who performed the action.
	SubjectID string `json:"subject_id"` // SubjectID is the tweet or user the action targets.
}
