package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
)

// ActiveMessageLister defines the interface that the message service must implement.
type ActiveMessageLister interface {
	ListActive(ctx context.Context, linkIDs []uuid.UUID, limit int) ([]models.MessageDB, error)
}

// MessageItem represents a single received message
// swagger:model MessageItem
type MessageItem struct {
	ID          string    `json:"id"`
	LinkID      string    `json:"link_id"`
	MessageText string    `json:"message_text"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ListMessagesResponse represents the active inbox view, newest first
// swagger:model ListMessagesResponse
type ListMessagesResponse struct {
	Messages []MessageItem `json:"messages"`
}

// ListMessagesErrorResponse represents an error response for the inbox view
// swagger:model ListMessagesErrorResponse
type ListMessagesErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewListMessagesHandler returns an HTTP handler for the owner's inbox.
// Expired messages never appear. An optional link_id query parameter
// narrows the view to one owned link.
// @Summary List received messages
// @Description Returns unexpired messages for the caller's links, newest first
// @Tags messages
// @Produce json
// @Param link_id query string false "Restrict to one owned link"
// @Success 200 {object} handlers.ListMessagesResponse "Active messages"
// @Failure 401 {object} handlers.ListMessagesErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ListMessagesErrorResponse "Link not owned by caller"
// @Router /messages [get]
// @Security BearerAuth
func NewListMessagesHandler(
	messages ActiveMessageLister,
	links LinkLister,
	tokener LinkTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := userIDFromRequest(ctx, w, r, tokener)
		if !ok {
			return
		}

		owned, err := links.List(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list links", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListMessagesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		linkIDs := make([]uuid.UUID, 0, len(owned))
		for _, link := range owned {
			linkIDs = append(linkIDs, link.ID)
		}

		if raw := r.URL.Query().Get("link_id"); raw != "" {
			linkID, err := uuid.Parse(raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ListMessagesErrorResponse{
					Error: "invalid link_id",
				})
				return
			}

			if !containsLink(linkIDs, linkID) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListMessagesErrorResponse{
					Error: "Link not found",
				})
				return
			}
			linkIDs = []uuid.UUID{linkID}
		}

		active, err := messages.ListActive(ctx, linkIDs, 0)
		if err != nil {
			logger.Log.Errorw("failed to list messages", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListMessagesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := ListMessagesResponse{Messages: make([]MessageItem, 0, len(active))}
		for _, m := range active {
			resp.Messages = append(resp.Messages, MessageItem{
				ID:          m.ID.String(),
				LinkID:      m.LinkID.String(),
				MessageText: m.MessageText,
				CreatedAt:   m.CreatedAt,
				ExpiresAt:   m.ExpiresAt,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

func containsLink(linkIDs []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range linkIDs {
		if candidate == id {
			return true
		}
	}
	return false
}
