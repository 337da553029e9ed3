package services_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-twitter/internal/middlewares"
	"github.com/sbilibin2017/gw-twitter/internal/models"
	"github.com/sbilibin2017/gw-twitter/internal/outbox"
	"github.com/sbilibin2017/gw-twitter/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetService_CreateQueuesEventUntilFlush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, kafkaWriter := newTweetService(ctrl)
	ctx, queue := outbox.WithQueue(context.Background())

	writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	_, err := svc.Create(ctx, uuid.New(), "hello")
	require.NoError(t, err)
	assert.Equal(t, 1, queue.Len())

	flushCtx := context.Background()
	kafkaWriter.EXPECT().WriteMessages(flushCtx, gomock.Any()).Return(nil)
	queue.Flush(flushCtx)
}

func TestGraphService_FollowEventDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGraphService(ctrl)
	ctx, queue := outbox.WithQueue(context.Background())
	alice, bob := uuid.New(), uuid.New()

	m.users.EXPECT().GetByID(ctx, bob).Return(&models.UserDB{UserID: bob}, nil)
	m.followWriter.EXPECT().Save(ctx, alice, bob).Return(true, nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Times(0)

	created, err := svc.Follow(ctx, alice, bob)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, queue.Discard())
}

// createTweetHandler calls TweetService.Create inside TxMiddleware.
func createTweetHandler(svc *services.TweetService, db *sql.DB) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.Create(r.Context(), uuid.New(), "hello"); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	return middlewares.TxMiddleware(sqlx.NewDb(db, "sqlmock"))(next)
}

func TestTweetService_CreateInsideTx(t *testing.T) {
	t.Run("commit failure publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

		svc, _, writer, kafkaWriter := newTweetService(ctrl)
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Times(0)

		rr := httptest.NewRecorder()
		createTweetHandler(svc, db).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/tweets", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("committed create publishes once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectCommit()

		svc, _, writer, kafkaWriter := newTweetService(ctrl)
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		rr := httptest.NewRecorder()
		createTweetHandler(svc, db).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/tweets", nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
