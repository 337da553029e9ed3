package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/models"
	"github.com/sbilibin2017/gw-twitter/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	body := RegisterRequest{
		FirstName:       "John",
		LastName:        "Smith",
		Email:           "john@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
	input := services.RegisterInput{
		FirstName:       "John",
		LastName:        "Smith",
		Email:           "john@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}

	tests := []struct {
		name         string
		rawBody      string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), input).
					Return(&models.UserDB{UserID: userID, FirstName: "John", LastName: "Smith"}, nil)
				m.EXPECT().IssueToken(gomock.Any(), userID).Return("jwt-token", nil)
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, body []byte) {
				var resp RegisterResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "jwt-token", resp.Token)
				assert.Equal(t, userID, resp.User.ID)
				assert.Equal(t, "John Smith", resp.User.Name)
				assert.NotContains(t, string(body), "secret123")
			},
		},
		{
			name: "validation errors",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), input).
					Return(nil, &services.ValidationError{Messages: []string{services.MsgInvalidEmail, services.MsgPasswordMismatch}})
			},
			expectedCode: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"errors":["invalid email","passwords don't match"]}`, string(body))
			},
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), input).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Internal server error"}`, string(body))
			},
		},
		{
			name: "token error",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), input).Return(&models.UserDB{UserID: userID}, nil)
				m.EXPECT().IssueToken(gomock.Any(), userID).Return("", errors.New("sign failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"invalid request body"}`, string(body))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(body)
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.check != nil {
				tt.check(t, rr.Body.Bytes())
			}
		})
	}
}
