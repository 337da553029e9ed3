package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-twitter/internal/models"
)

// LikeWriteRepository handles like edge writes
type LikeWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLikeWriteRepository(db *sqlx.DB, txGetter TxGetter) *LikeWriteRepository {
	return &LikeWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the user -> tweet like. An existing like is reported as not created.
func (r *LikeWriteRepository) Save(ctx context.Context, userID, tweetID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO likes (user_id, tweet_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, tweet_id) DO NOTHING
	`
	args := []any{userID, tweetID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Delete removes the like and reports whether it existed.
func (r *LikeWriteRepository) Delete(ctx context.Context, userID, tweetID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM likes
		WHERE user_id = $1 AND tweet_id = $2
	`
	args := []any{userID, tweetID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// LikeReadRepository handles like edge reads
type LikeReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLikeReadRepository(db *sqlx.DB, txGetter TxGetter) *LikeReadRepository {
	return &LikeReadRepository{db: db, txGetter: txGetter}
}

// ListLikers returns the users who liked tweetID, earliest like first.
func (r *LikeReadRepository) ListLikers(ctx context.Context, tweetID uuid.UUID) ([]models.UserDB, error) {
	const query = `
		SELECT u.user_id, u.first_name, u.last_name, u.email, u.password_hash, u.created_at, u.updated_at
		FROM likes l
		JOIN users u ON u.user_id = l.user_id
		WHERE l.tweet_id = $1
		ORDER BY l.created_at, u.user_id
	`

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, tweetID)

	logQuery(query, []any{tweetID}, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}
