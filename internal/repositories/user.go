package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-twitter/internal/models"
)

const userColumns = `user_id, first_name, last_name, email, password_hash, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with the given id, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userID)

	// password hash stays out of the logs
	logQuery(query, []any{userID}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByEmail returns every user registered with exactly this email.
func (r *UserReadRepository) ListByEmail(ctx context.Context, email string) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, email)

	logQuery(query, []any{email}, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// List returns all users, oldest first.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at, user_id
	`

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)

	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts user and fills in the timestamps assigned by the database.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, first_name, last_name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query,
		user.UserID, user.FirstName, user.LastName, user.Email, user.PasswordHash)
	err := row.Scan(&user.CreatedAt, &user.UpdatedAt)

	logQuery(query, []any{user.UserID, user.FirstName, user.LastName, user.Email}, user.CreatedAt, err)

	return err
}
