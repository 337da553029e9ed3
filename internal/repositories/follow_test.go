package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFollowWriteRepository_Save(t *testing.T) {
	ctx := context.Background()
	followerID, followedID := uuid.New(), uuid.New()

	tests := []struct {
		name        string
		affected    int64
		execErr     error
		wantCreated bool
		wantErr     bool
	}{
		{name: "new edge", affected: 1, wantCreated: true},
		{name: "duplicate edge is a no-op", affected: 0, wantCreated: false},
		{name: "db error", execErr: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			exp := mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (follower_id, followed_id) DO NOTHING")).
				WithArgs(followerID, followedID)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			created, err := NewFollowWriteRepository(db, nil).Save(ctx, followerID, followedID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCreated, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFollowWriteRepository_Delete(t *testing.T) {
	ctx := context.Background()
	followerID, followedID := uuid.New(), uuid.New()
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2")).
		WithArgs(followerID, followedID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := NewFollowWriteRepository(db, nil).Delete(ctx, followerID, followedID)
	assert.NoError(t, err)
	assert.True(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowReadRepository_Directions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	t.Run("Following joins on followed_id", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.user_id = f.followed_id WHERE f.follower_id = $1")).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(uuid.NewString(), "Bob", "Stone", "bob@example.com", "h", now, now))

		users, err := NewFollowReadRepository(db, nil).ListFollowing(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Followers joins on follower_id", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.user_id = f.follower_id WHERE f.followed_id = $1")).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		users, err := NewFollowReadRepository(db, nil).ListFollowers(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, users)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
