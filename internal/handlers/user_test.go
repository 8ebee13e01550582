package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gif-contest/internal/models"
	"github.com/stretchr/testify/assert"
)

// withExternalID sets the {externalID} route parameter the way chi does when routing.
func withExternalID(r *http.Request, externalID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("externalID", externalID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestResolveUserHandler(t *testing.T) {
	tests := []struct {
		name           string
		externalID     string
		body           string
		setupMock      func(m *MockUserResolver)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:       "success",
			externalID: "42",
			body:       `{"display_name":"alice"}`,
			setupMock: func(m *MockUserResolver) {
				m.EXPECT().ResolveOrCreate(gomock.Any(), int64(42), "alice").
					Return(&models.User{ID: 1, ExternalID: 42, DisplayName: "alice"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid external id",
			externalID:     "abc",
			body:           `{}`,
			setupMock:      func(m *MockUserResolver) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeInvalidRequest,
		},
		{
			name:           "invalid body",
			externalID:     "42",
			body:           `not-json`,
			setupMock:      func(m *MockUserResolver) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeInvalidRequest,
		},
		{
			name:       "service error",
			externalID: "42",
			body:       `{"display_name":"alice"}`,
			setupMock: func(m *MockUserResolver) {
				m.EXPECT().ResolveOrCreate(gomock.Any(), int64(42), "alice").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUserResolver(ctrl)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.externalID, strings.NewReader(tt.body))
			req = withExternalID(req, tt.externalID)
			rr := httptest.NewRecorder()

			NewResolveUserHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rr).Code)
				return
			}

			var user models.User
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&user))
			assert.Equal(t, "alice", user.DisplayName)
		})
	}
}

func TestGetUserInfoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockUserInfoGetter(ctrl)
	svc.EXPECT().UserInfo(gomock.Any(), int64(42)).
		Return(&models.UserInfo{Exists: true, ExternalID: 42, HasSubmission: true, VotesReceived: 3}, nil)
	svc.EXPECT().UserInfo(gomock.Any(), int64(7)).Return(nil, assert.AnError)

	rr := httptest.NewRecorder()
	NewGetUserInfoHandler(svc).ServeHTTP(rr, withExternalID(httptest.NewRequest(http.MethodGet, "/users/42", nil), "42"))

	assert.Equal(t, http.StatusOK, rr.Code)
	var info models.UserInfo
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&info))
	assert.True(t, info.HasSubmission)
	assert.Equal(t, int64(3), info.VotesReceived)

	rr = httptest.NewRecorder()
	NewGetUserInfoHandler(svc).ServeHTTP(rr, withExternalID(httptest.NewRequest(http.MethodGet, "/users/7", nil), "7"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestDeleteUserHandler(t *testing.T) {
	tests := []struct {
		name           string
		deleted        bool
		err            error
		expectedStatus int
	}{
		{name: "deleted", deleted: true, expectedStatus: http.StatusNoContent},
		{name: "not found", deleted: false, expectedStatus: http.StatusNotFound},
		{name: "service error", err: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUserDeleter(ctrl)
			svc.EXPECT().DeleteUser(gomock.Any(), int64(42)).Return(tt.deleted, tt.err)

			req := withExternalID(httptest.NewRequest(http.MethodDelete, "/users/42", nil), "42")
			rr := httptest.NewRecorder()
			NewDeleteUserHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusNotFound {
				assert.Equal(t, CodeNotFound, decodeError(t, rr).Code)
			}
		})
	}
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	assert.NoError(t, err)
	return bytes.NewReader(data)
}
