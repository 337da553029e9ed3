package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-twitter/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "validation",
			err:          &services.ValidationError{Messages: []string{"a", "b"}},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"errors":["a","b"]}`,
		},
		{
			name:         "invalid credentials",
			err:          services.ErrInvalidCredentials,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Invalid email or password"}`,
		},
		{
			name:         "not the author",
			err:          services.ErrUnauthorized,
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":"Forbidden"}`,
		},
		{
			name:         "wrapped not found",
			err:          fmt.Errorf("load: %w", services.ErrNotFound),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not found"}`,
		},
		{
			name:         "internal details are hidden",
			err:          errors.New("pq: connection refused"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(rr, tt.err, "test")

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestIDParam_Invalid(t *testing.T) {
	req := withID(httptest.NewRequest(http.MethodGet, "/tweets/abc", nil), "abc")
	rr := httptest.NewRecorder()

	_, ok := idParam(rr, req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "invalid id", resp.Error)
}

func TestActorID_MissingClaims(t *testing.T) {
	rr := httptest.NewRecorder()
	_, ok := actorID(rr, httptest.NewRequest(http.MethodGet, "/feed", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
