package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/jwt"
	"github.com/sbilibin2017/gw-twitter/internal/middlewares"
)

// withClaims authenticates the request the way AuthMiddleware does.
func withClaims(r *http.Request, userID uuid.UUID) *http.Request {
	claims := &jwt.Claims{
		UserID: userID,
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        "token-" + userID.String(),
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	return r.WithContext(middlewares.SetClaimsToContext(r.Context(), claims))
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
