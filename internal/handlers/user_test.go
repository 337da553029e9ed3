package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/models"
	"github.com/sbilibin2017/gw-twitter/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserLister(ctrl)
	mockSvc.EXPECT().ListUsers(gomock.Any()).Return([]models.UserDB{
		{UserID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PasswordHash: "$2a$hash"},
	}, nil)

	rr := httptest.NewRecorder()
	NewListUsersHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp UsersResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Users, 1)
	assert.Equal(t, "Ada Lovelace", resp.Users[0].Name)
	assert.NotContains(t, rr.Body.String(), "$2a$hash")
	assert.NotContains(t, rr.Body.String(), "ada@example.com")
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserGetter(ctrl)
	handler := NewGetUserHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID, FirstName: "Ada"}, nil)
	rr := httptest.NewRecorder()
	handler(rr, withID(httptest.NewRequest(http.MethodGet, "/users/"+userID.String(), nil), userID.String()))
	assert.Equal(t, http.StatusOK, rr.Code)

	mockSvc.EXPECT().GetByID(gomock.Any(), userID).Return(nil, services.ErrNotFound)
	rr = httptest.NewRecorder()
	handler(rr, withID(httptest.NewRequest(http.MethodGet, "/users/"+userID.String(), nil), userID.String()))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
}
