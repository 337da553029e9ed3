package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/logger"
	"github.com/sbilibin2017/gw-twitter/internal/middlewares"
	"github.com/sbilibin2017/gw-twitter/internal/models"
	"github.com/sbilibin2017/gw-twitter/internal/services"
)

// ErrorResponse represents a generic error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// ValidationErrorResponse lists every validation failure of a request
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Validation messages in check order
	Errors []string `json:"errors"`
}

// UserResponse is the public view of a user
// swagger:model UserResponse
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// UsersResponse wraps a list of users
// swagger:model UsersResponse
type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

// TweetResponse is the public view of a tweet
// swagger:model TweetResponse
type TweetResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Message    string    `json:"message"`
	LikeCount  int64     `json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TweetsResponse wraps a list of tweets
// swagger:model TweetsResponse
type TweetsResponse struct {
	Tweets []TweetResponse `json:"tweets"`
}

func toUserResponse(u *models.UserDB) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Name:      u.FullName(),
		CreatedAt: u.CreatedAt,
	}
}

func toUsersResponse(users []models.UserDB) UsersResponse {
	resp := UsersResponse{Users: make([]UserResponse, 0, len(users))}
	for i := range users {
		resp.Users = append(resp.Users, toUserResponse(&users[i]))
	}
	return resp
}

func toTweetResponse(t *models.TweetDB) TweetResponse {
	return TweetResponse{
		ID:         t.TweetID,
		AuthorID:   t.AuthorID,
		AuthorName: t.AuthorName,
		Message:    t.Message,
		LikeCount:  t.LikeCount,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps a service error onto the HTTP response.
// Unexpected errors are logged and never returned to the client.
func writeServiceError(w http.ResponseWriter, err error, op string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: verr.Messages})
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrUnauthorized):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		logger.Log.Errorw("internal server error", "op", op, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// actorID returns the authenticated user placed in the context by the auth middleware.
func actorID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, ok := middlewares.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// idParam parses the {id} URL parameter.
func idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
