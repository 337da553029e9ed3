package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/models"
	"github.com/sbilibin2017/gw-twitter/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.UserDB, error)
	IssueToken(ctx context.Context, userID uuid.UUID) (string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// First name, at least 3 characters
	// required: true
	// default: John
	FirstName string `json:"first_name"`

	// Last name, at least 3 characters
	// required: true
	// default: Smith
	LastName string `json:"last_name"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, at least 8 characters
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Password confirmation
	// required: true
	// default: secret123
	ConfirmPassword string `json:"confirm_password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// JWT token of the new session
	Token string `json:"token"`

	// Created user
	User UserResponse `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account and logs it in. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User registered and logged in"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Register(r.Context(), services.RegisterInput{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
		if err != nil {
			writeServiceError(w, err, "register")
			return
		}

		token, err := svc.IssueToken(r.Context(), user.UserID)
		if err != nil {
			writeServiceError(w, err, "issue token")
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Token: token,
			User:  toUserResponse(user),
		})
	}
}
