package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kazzanonim/anonlink/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListMessagesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessages := NewMockActiveMessageLister(ctrl)
	mockLinks := NewMockLinkLister(ctrl)
	mockTokener := NewMockLinkTokener(ctrl)

	userID := uuid.New()
	linkA := models.LinkDB{ID: uuid.New(), UserID: userID, UniqueSlug: "link-aaaaaaaa"}
	linkB := models.LinkDB{ID: uuid.New(), UserID: userID, UniqueSlug: "link-bbbbbbbb"}
	foreignID := uuid.New()

	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	message := models.MessageDB{
		ID:          uuid.New(),
		LinkID:      linkA.ID,
		MessageText: "hello",
		CreatedAt:   createdAt,
		ExpiresAt:   createdAt.Add(24 * time.Hour),
	}

	expectAuth := func() {
		mockTokener.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("token", nil)
		mockTokener.EXPECT().
			GetUserID(gomock.Any(), "token").
			Return(userID, nil)
	}

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:   "all owned links",
			target: "/messages",
			mockSetup: func() {
				expectAuth()
				mockLinks.EXPECT().
					List(gomock.Any(), userID).
					Return([]models.LinkDB{linkA, linkB}, nil)
				mockMessages.EXPECT().
					ListActive(gomock.Any(), []uuid.UUID{linkA.ID, linkB.ID}, 0).
					Return([]models.MessageDB{message}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ListMessagesResponse{
				Messages: []MessageItem{
					{
						ID:          message.ID.String(),
						LinkID:      message.LinkID.String(),
						MessageText: "hello",
						CreatedAt:   message.CreatedAt,
						ExpiresAt:   message.ExpiresAt,
					},
				},
			},
		},
		{
			name:   "filtered by owned link",
			target: "/messages?link_id=" + linkA.ID.String(),
			mockSetup: func() {
				expectAuth()
				mockLinks.EXPECT().
					List(gomock.Any(), userID).
					Return([]models.LinkDB{linkA, linkB}, nil)
				mockMessages.EXPECT().
					ListActive(gomock.Any(), []uuid.UUID{linkA.ID}, 0).
					Return([]models.MessageDB{message}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ListMessagesResponse{
				Messages: []MessageItem{
					{
						ID:          message.ID.String(),
						LinkID:      message.LinkID.String(),
						MessageText: "hello",
						CreatedAt:   message.CreatedAt,
						ExpiresAt:   message.ExpiresAt,
					},
				},
			},
		},
		{
			name:   "link not owned",
			target: "/messages?link_id=" + foreignID.String(),
			mockSetup: func() {
				expectAuth()
				mockLinks.EXPECT().
					List(gomock.Any(), userID).
					Return([]models.LinkDB{linkA, linkB}, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ListMessagesErrorResponse{
				Error: "Link not found",
			},
		},
		{
			name:   "invalid link_id",
			target: "/messages?link_id=not-a-uuid",
			mockSetup: func() {
				expectAuth()
				mockLinks.EXPECT().
					List(gomock.Any(), userID).
					Return([]models.LinkDB{linkA}, nil)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ListMessagesErrorResponse{
				Error: "invalid link_id",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler := NewListMessagesHandler(mockMessages, mockLinks, mockTokener)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &ListMessagesResponse{}
			default:
				respBody = &ListMessagesErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
