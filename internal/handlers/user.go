package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/models"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

// UserLister lists every registered user.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// UserGetter loads a single user.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UsersResponse "Users"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			writeServiceError(w, err, "list users")
			return
		}
		writeJSON(w, http.StatusOK, toUsersResponse(users))
	}
}

// NewGetUserHandler returns an HTTP handler that loads one user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UserResponse "User"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := idParam(w, r)
		if !ok {
			return
		}

		user, err := svc.GetByID(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, "get user")
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(user))
	}
}
