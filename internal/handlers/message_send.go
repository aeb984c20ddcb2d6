package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
	"github.com/kazzanonim/anonlink/internal/services"
)

// MessageSender defines the interface that the message service must implement.
type MessageSender interface {
	Send(ctx context.Context, slug, text string) (*models.MessageDB, error)
}

// SendMessageRequest represents the JSON body for sending a message
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// Message text, 1..1000 characters
	// required: true
	// default: hello there
	Message string `json:"message"`
}

// SendMessageResponse represents a successfully accepted message
// swagger:model SendMessageResponse
type SendMessageResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`

	// Success message
	// default: Message sent
	Message string `json:"message"`
}

// SendMessageErrorResponse represents an error response for sending
// swagger:model SendMessageErrorResponse
type SendMessageErrorResponse struct {
	// Error message
	// default: Link not found
	Error string `json:"error"`

	// Seconds until the sender may try again, present only on 429
	RetryAfterSeconds int `json:"retry_after_seconds,omitempty"`
}

// NewSendMessageHandler returns an HTTP handler accepting anonymous messages.
// @Summary Send an anonymous message
// @Description Stores an anonymous message for the link behind the slug.
// The same sender must wait five minutes between messages; the stored
// message expires after 24 hours.
// @Tags public
// @Accept json
// @Produce json
// @Param slug path string true "Link slug"
// @Param sendMessageRequest body handlers.SendMessageRequest true "Message body"
// @Success 201 {object} handlers.SendMessageResponse "Message accepted"
// @Failure 400 {object} handlers.SendMessageErrorResponse "Empty or oversized message"
// @Failure 404 {object} handlers.SendMessageErrorResponse "Unknown or inactive slug"
// @Failure 429 {object} handlers.SendMessageErrorResponse "Sender still in cooldown"
// @Router /m/{slug}/messages [post]
func NewSendMessageHandler(svc MessageSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		var req SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SendMessageErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		message, err := svc.Send(r.Context(), slug, req.Message)
		if err != nil {
			var cooldown *services.CooldownError
			switch {
			case errors.Is(err, services.ErrEmptyMessage),
				errors.Is(err, services.ErrMessageTooLong):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SendMessageErrorResponse{
					Error: err.Error(),
				})
			case errors.Is(err, services.ErrLinkNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SendMessageErrorResponse{
					Error: "Link not found",
				})
			case errors.As(err, &cooldown):
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(SendMessageErrorResponse{
					Error:             cooldown.Error(),
					RetryAfterSeconds: int(cooldown.RetryAfter.Seconds()),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SendMessageErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SendMessageResponse{
			ID:        message.ID.String(),
			CreatedAt: message.CreatedAt,
			ExpiresAt: message.ExpiresAt,
			Message:   "Message sent",
		})
	}
}
