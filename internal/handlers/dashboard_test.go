package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kazzanonim/anonlink/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDashboardStatser(ctrl)
	mockTokener := NewMockLinkTokener(ctrl)

	userID := uuid.New()
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	recent := models.MessageDB{
		ID:          uuid.New(),
		LinkID:      uuid.New(),
		MessageText: "hello",
		CreatedAt:   createdAt,
		ExpiresAt:   createdAt.Add(24 * time.Hour),
	}

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				mockTokener.EXPECT().
					GetUserID(gomock.Any(), "token").
					Return(userID, nil)
				mockSvc.EXPECT().
					Stats(gomock.Any(), userID).
					Return(&models.DashboardStats{
						TotalLinks:     2,
						ActiveMessages: 5,
						Recent:         []models.MessageDB{recent},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &DashboardResponse{
				TotalLinks:     2,
				ActiveMessages: 5,
				Recent: []MessageItem{
					{
						ID:          recent.ID.String(),
						LinkID:      recent.LinkID.String(),
						MessageText: "hello",
						CreatedAt:   recent.CreatedAt,
						ExpiresAt:   recent.ExpiresAt,
					},
				},
			},
		},
		{
			name: "missing token",
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no auth header"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &DashboardErrorResponse{
				Error: "Unauthorized",
			},
		},
		{
			name: "internal error",
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				mockTokener.EXPECT().
					GetUserID(gomock.Any(), "token").
					Return(userID, nil)
				mockSvc.EXPECT().
					Stats(gomock.Any(), userID).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &DashboardErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			w := httptest.NewRecorder()

			handler := NewDashboardHandler(mockSvc, mockTokener)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &DashboardResponse{}
			default:
				respBody = &DashboardErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
