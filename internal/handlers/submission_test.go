package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gif-contest/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestHasSubmittedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockSubmissionChecker(ctrl)
	svc.EXPECT().HasSubmitted(gomock.Any(), int64(42)).Return(true, nil)

	rr := httptest.NewRecorder()
	NewHasSubmittedHandler(svc).ServeHTTP(rr,
		withExternalID(httptest.NewRequest(http.MethodGet, "/users/42/submission", nil), "42"))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp SubmittedResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Submitted)
}

func TestSubmitHandler(t *testing.T) {
	valid := SubmitRequest{ExternalID: 42, DisplayName: "alice", MessageRef: 500, MediaRef: "gif"}

	tests := []struct {
		name           string
		body           any
		setupMock      func(m *MockSubmitter)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "created",
			body: valid,
			setupMock: func(m *MockSubmitter) {
				m.EXPECT().HasSubmitted(gomock.Any(), int64(42)).Return(false, nil)
				m.EXPECT().Submit(gomock.Any(), int64(42), "alice", int64(500), "gif").
					Return(&models.Submission{ID: 1, MessageRef: 500, MediaRef: "gif", OwnerID: 3}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "already submitted",
			body: valid,
			setupMock: func(m *MockSubmitter) {
				m.EXPECT().HasSubmitted(gomock.Any(), int64(42)).Return(true, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   CodeDuplicateSubmitter,
		},
		{
			name: "submitter race lost",
			body: valid,
			setupMock: func(m *MockSubmitter) {
				m.EXPECT().HasSubmitted(gomock.Any(), int64(42)).Return(false, nil)
				m.EXPECT().Submit(gomock.Any(), int64(42), "alice", int64(500), "gif").
					Return(nil, models.ErrDuplicateSubmitter)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   CodeDuplicateSubmitter,
		},
		{
			name: "duplicate media",
			body: valid,
			setupMock: func(m *MockSubmitter) {
				m.EXPECT().HasSubmitted(gomock.Any(), int64(42)).Return(false, nil)
				m.EXPECT().Submit(gomock.Any(), int64(42), "alice", int64(500), "gif").
					Return(nil, fmt.Errorf("wrapped: %w", models.ErrDuplicateMedia))
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   CodeDuplicateMedia,
		},
		{
			name: "duplicate message",
			body: valid,
			setupMock: func(m *MockSubmitter) {
				m.EXPECT().HasSubmitted(gomock.Any(), int64(42)).Return(false, nil)
				m.EXPECT().Submit(gomock.Any(), int64(42), "alice", int64(500), "gif").
					Return(nil, models.ErrDuplicateMessage)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   CodeDuplicateMessage,
		},
		{
			name:           "missing media",
			body:           SubmitRequest{ExternalID: 42, MessageRef: 500},
			setupMock:      func(m *MockSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeInvalidRequest,
		},
		{
			name:           "invalid body",
			body:           "not-json",
			setupMock:      func(m *MockSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeInvalidRequest,
		},
		{
			name: "check error",
			body: valid,
			setupMock: func(m *MockSubmitter) {
				m.EXPECT().HasSubmitted(gomock.Any(), int64(42)).Return(false, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   CodeInternalError,
		},
		{
			name: "storage error is not leaked",
			body: valid,
			setupMock: func(m *MockSubmitter) {
				m.EXPECT().HasSubmitted(gomock.Any(), int64(42)).Return(false, nil)
				m.EXPECT().Submit(gomock.Any(), int64(42), "alice", int64(500), "gif").
					Return(nil, fmt.Errorf("pq: connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockSubmitter(ctrl)
			tt.setupMock(svc)

			var req *http.Request
			if s, ok := tt.body.(string); ok {
				req = httptest.NewRequest(http.MethodPost, "/submissions", strings.NewReader(s))
			} else {
				req = httptest.NewRequest(http.MethodPost, "/submissions", jsonBody(t, tt.body))
			}
			rr := httptest.NewRecorder()

			NewSubmitHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode == "" {
				var s models.Submission
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&s))
				assert.Equal(t, int64(1), s.ID)
				return
			}
			resp := decodeError(t, rr)
			assert.Equal(t, tt.expectedCode, resp.Code)
			assert.NotContains(t, resp.Error, "pq:")
		})
	}
}
