package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/logger"
	"github.com/sbilibin2017/gw-twitter/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	ListByEmail(ctx context.Context, email string) ([]models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// TokenRevoker remembers revoked session tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// dummyHash is compared against when no single account matches a login, so a
// missing email costs the same time as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("gw-twitter-dummy-password"), bcrypt.DefaultCost)

// AuthService handles registration, login and user lookups.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	jwt     JWTGenerator
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		revoker: revoker,
	}
}

// Register validates the form and creates a new user with a bcrypt hashed password.
// Invalid input yields a *ValidationError and writes nothing.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) (*models.UserDB, error) {
	if err := newValidationError(validateRegistration(in)); err != nil {
		logger.Log.Infow("registration rejected", "email", in.Email, "err", err)
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", user.UserID, "name", user.FullName())
	return user, nil
}

// Authenticate succeeds only when exactly one user has this email and the password
// matches. Every other outcome is ErrInvalidCredentials.
func (svc *AuthService) Authenticate(ctx context.Context, email, password string) (*models.UserDB, error) {
	users, err := svc.reader.ListByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get users by email", "err", err)
		return nil, err
	}

	if len(users) != 1 {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		logger.Log.Infow("invalid credentials", "email", email, "matches", len(users))
		return nil, ErrInvalidCredentials
	}

	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Login authenticates a user and returns a session token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	return svc.IssueToken(ctx, user.UserID)
}

// IssueToken returns a new session token for userID.
func (svc *AuthService) IssueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := svc.jwt.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}

// Logout revokes the session token until the moment it would have expired anyway.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := svc.revoker.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		logger.Log.Errorw("failed to revoke token", "token_id", tokenID, "err", err)
		return err
	}
	return nil
}

// GetByID returns the user or ErrNotFound.
func (svc *AuthService) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// ListUsers returns every registered user.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}
