package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/models"
	"github.com/sbilibin2017/gw-twitter/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func validRegistration() services.RegisterInput {
	return services.RegisterInput{
		FirstName:       "Alice",
		LastName:        "Smith",
		Email:           "alice@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockJWTGenerator(ctrl), services.NewMockTokenRevoker(ctrl))

	t.Run("successful registration hashes the password", func(t *testing.T) {
		in := validRegistration()

		var saved *models.UserDB
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.UserDB) error {
				saved = u
				return nil
			})

		user, err := svc.Register(context.Background(), in)
		assert.NoError(t, err)
		assert.Same(t, saved, user)
		assert.NotEqual(t, uuid.Nil, user.UserID)
		assert.Equal(t, "Alice", user.FirstName)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEqual(t, in.Password, user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)))
	})

	t.Run("invalid input writes nothing", func(t *testing.T) {
		in := validRegistration()
		in.FirstName = "Al"
		in.ConfirmPassword = "different1"

		user, err := svc.Register(context.Background(), in)
		assert.Nil(t, user)

		var verr *services.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{services.MsgFirstNameTooShort, services.MsgPasswordMismatch}, verr.Messages)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("save error"))

		user, err := svc.Register(context.Background(), validRegistration())
		assert.EqualError(t, err, "save error")
		assert.Nil(t, user)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl), services.NewMockTokenRevoker(ctrl))

	password := "secret-password"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	alice := models.UserDB{UserID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hashed)}
	twin := models.UserDB{UserID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		users     []models.UserDB
		readerErr error
		password  string
		wantUser  bool
		wantErr   error
	}{
		{name: "exactly one match", users: []models.UserDB{alice}, password: password, wantUser: true},
		{name: "no such email", users: nil, password: password, wantErr: services.ErrInvalidCredentials},
		{name: "wrong password", users: []models.UserDB{alice}, password: "nope-nope", wantErr: services.ErrInvalidCredentials},
		{name: "shared email fails even with right password", users: []models.UserDB{alice, twin}, password: password, wantErr: services.ErrInvalidCredentials},
		{name: "reader error", readerErr: errors.New("db error"), password: password, wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				ListByEmail(gomock.Any(), "alice@example.com").
				Return(tt.users, tt.readerErr)

			user, err := svc.Authenticate(context.Background(), "alice@example.com", tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, alice.UserID, user.UserID)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT, services.NewMockTokenRevoker(ctrl))

	password := "secret-password"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := models.UserDB{UserID: uuid.New(), Email: "bob@example.com", PasswordHash: string(hashed)}

	t.Run("token issued", func(t *testing.T) {
		mockReader.EXPECT().ListByEmail(gomock.Any(), "bob@example.com").Return([]models.UserDB{user}, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), user.UserID).Return("token123", nil)

		token, err := svc.Login(context.Background(), "bob@example.com", password)
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("bad credentials issue nothing", func(t *testing.T) {
		mockReader.EXPECT().ListByEmail(gomock.Any(), "bob@example.com").Return([]models.UserDB{user}, nil)

		token, err := svc.Login(context.Background(), "bob@example.com", "wrong-pass")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("JWT generation error", func(t *testing.T) {
		mockReader.EXPECT().ListByEmail(gomock.Any(), "bob@example.com").Return([]models.UserDB{user}, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), user.UserID).Return("", errors.New("jwt error"))

		token, err := svc.Login(context.Background(), "bob@example.com", password)
		assert.EqualError(t, err, "jwt error")
		assert.Empty(t, token)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRevoker := services.NewMockTokenRevoker(ctrl)
	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl), mockRevoker)

	expiresAt := time.Now().Add(30 * time.Minute)
	mockRevoker.EXPECT().
		Revoke(gomock.Any(), "token-id", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
			assert.InDelta(t, float64(30*time.Minute), float64(ttl), float64(5*time.Second))
			return nil
		})
	assert.NoError(t, svc.Logout(context.Background(), "token-id", expiresAt))

	mockRevoker.EXPECT().Revoke(gomock.Any(), "token-id", gomock.Any()).Return(errors.New("redis down"))
	assert.EqualError(t, svc.Logout(context.Background(), "token-id", expiresAt), "redis down")
}

func TestAuthService_GetByIDAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl), services.NewMockTokenRevoker(ctrl))
	ctx := context.Background()
	id := uuid.New()

	mockReader.EXPECT().GetByID(ctx, id).Return(&models.UserDB{UserID: id}, nil)
	user, err := svc.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, id, user.UserID)

	mockReader.EXPECT().GetByID(ctx, id).Return(nil, nil)
	_, err = svc.GetByID(ctx, id)
	assert.ErrorIs(t, err, services.ErrNotFound)

	mockReader.EXPECT().List(ctx).Return([]models.UserDB{{UserID: id}}, nil)
	users, err := svc.ListUsers(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 1)

	mockReader.EXPECT().List(ctx).Return(nil, errors.New("db error"))
	_, err = svc.ListUsers(ctx)
	assert.Error(t, err)
}
