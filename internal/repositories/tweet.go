package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-twitter/internal/models"
)

// tweetSelect yields tweets with their author name and like count.
const tweetSelect = `
		SELECT t.tweet_id, t.author_id, t.message, t.created_at, t.updated_at,
		       u.first_name || ' ' || u.last_name AS author_name,
		       (SELECT COUNT(*) FROM likes l WHERE l.tweet_id = t.tweet_id) AS like_count
		FROM tweets t
		JOIN users u ON u.user_id = t.author_id
`

// TweetReadRepository handles tweet read operations
type TweetReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTweetReadRepository(db *sqlx.DB, txGetter TxGetter) *TweetReadRepository {
	return &TweetReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the tweet with the given id, or nil when there is none.
func (r *TweetReadRepository) GetByID(ctx context.Context, tweetID uuid.UUID) (*models.TweetDB, error) {
	const query = tweetSelect + `
		WHERE t.tweet_id = $1
	`

	var tweet models.TweetDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tweet, query, tweetID)

	logQuery(query, []any{tweetID}, tweet, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

// ListFeed returns tweets authored by viewerID or by anyone viewerID follows, newest first.
func (r *TweetReadRepository) ListFeed(ctx context.Context, viewerID uuid.UUID) ([]models.TweetDB, error) {
	const query = tweetSelect + `
		WHERE t.author_id = $1
		   OR t.author_id IN (SELECT f.followed_id FROM follows f WHERE f.follower_id = $1)
		ORDER BY t.created_at DESC, t.tweet_id
	`

	var tweets []models.TweetDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &tweets, query, viewerID)

	logQuery(query, []any{viewerID}, len(tweets), err)

	if err != nil {
		return nil, err
	}
	return tweets, nil
}

// TweetWriteRepository handles tweet write operations
type TweetWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTweetWriteRepository(db *sqlx.DB, txGetter TxGetter) *TweetWriteRepository {
	return &TweetWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts tweet and fills in the timestamps assigned by the database.
func (r *TweetWriteRepository) Save(ctx context.Context, tweet *models.TweetDB) error {
	const query = `
		INSERT INTO tweets (tweet_id, author_id, message, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{tweet.TweetID, tweet.AuthorID, tweet.Message}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&tweet.CreatedAt, &tweet.UpdatedAt)

	logQuery(query, args, tweet.CreatedAt, err)

	return err
}

// UpdateMessage replaces the message and refreshes updated_at.
// It returns sql.ErrNoRows when the tweet does not exist.
func (r *TweetWriteRepository) UpdateMessage(ctx context.Context, tweet *models.TweetDB) error {
	const query = `
		UPDATE tweets
		SET message = $2, updated_at = NOW()
		WHERE tweet_id = $1
		RETURNING updated_at
	`
	args := []any{tweet.TweetID, tweet.Message}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&tweet.UpdatedAt)

	logQuery(query, args, tweet.UpdatedAt, err)

	return err
}

// Delete removes the tweet and every like edge that references it in one transaction.
// It joins the request transaction when there is one. It returns sql.ErrNoRows when
// the tweet does not exist.
func (r *TweetWriteRepository) Delete(ctx context.Context, tweetID uuid.UUID) error {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return deleteTweet(ctx, tx, tweetID)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete tweet: %w", err)
	}
	if err := deleteTweet(ctx, tx, tweetID); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func deleteTweet(ctx context.Context, tx *sqlx.Tx, tweetID uuid.UUID) error {
	const deleteLikesQuery = `DELETE FROM likes WHERE tweet_id = $1`
	const deleteTweetQuery = `DELETE FROM tweets WHERE tweet_id = $1`

	res, err := tx.ExecContext(ctx, deleteLikesQuery, tweetID)
	logQuery(deleteLikesQuery, []any{tweetID}, rowsAffected(res), err)
	if err != nil {
		return err
	}

	res, err = tx.ExecContext(ctx, deleteTweetQuery, tweetID)
	n := rowsAffected(res)
	logQuery(deleteTweetQuery, []any{tweetID}, n, err)
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
