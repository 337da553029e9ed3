package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-twitter/internal/middlewares"
)

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

// Logouter revokes a session token.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// MessageResponse carries a plain confirmation message
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// @Summary Log out
// @Description Revokes the bearer token used for this request
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.GetClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		expiresAt := time.Now()
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}

		if err := svc.Logout(r.Context(), claims.ID, expiresAt); err != nil {
			writeServiceError(w, err, "logout")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}
