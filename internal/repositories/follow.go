package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-twitter/internal/models"
)

// FollowWriteRepository handles follow edge writes
type FollowWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFollowWriteRepository(db *sqlx.DB, txGetter TxGetter) *FollowWriteRepository {
	return &FollowWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the follower -> followed edge. An existing edge is left untouched
// and reported as not created.
func (r *FollowWriteRepository) Save(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, followed_id) DO NOTHING
	`
	args := []any{followerID, followedID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Delete removes the follower -> followed edge and reports whether it existed.
func (r *FollowWriteRepository) Delete(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM follows
		WHERE follower_id = $1 AND followed_id = $2
	`
	args := []any{followerID, followedID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// FollowReadRepository resolves both directions of the follow graph
type FollowReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFollowReadRepository(db *sqlx.DB, txGetter TxGetter) *FollowReadRepository {
	return &FollowReadRepository{db: db, txGetter: txGetter}
}

// ListFollowing returns the users that userID follows.
func (r *FollowReadRepository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error) {
	const query = `
		SELECT u.user_id, u.first_name, u.last_name, u.email, u.password_hash, u.created_at, u.updated_at
		FROM follows f
		JOIN users u ON u.user_id = f.followed_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at, u.user_id
	`
	return r.list(ctx, query, userID)
}

// ListFollowers returns the users following userID.
func (r *FollowReadRepository) ListFollowers(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error) {
	const query = `
		SELECT u.user_id, u.first_name, u.last_name, u.email, u.password_hash, u.created_at, u.updated_at
		FROM follows f
		JOIN users u ON u.user_id = f.follower_id
		WHERE f.followed_id = $1
		ORDER BY f.created_at, u.user_id
	`
	return r.list(ctx, query, userID)
}

func (r *FollowReadRepository) list(ctx context.Context, query string, userID uuid.UUID) ([]models.UserDB, error) {
	var users []models.UserDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, userID)

	logQuery(query, []any{userID}, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}
