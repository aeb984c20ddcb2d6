package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/kazzanonim/anonlink/internal/logger"
)

// CooldownChecker defines the interface that the message service must implement.
type CooldownChecker interface {
	CooldownRemaining(ctx context.Context, identity string) (time.Duration, error)
}

// SenderIdentifier derives the anonymous sender identity for a request.
type SenderIdentifier interface {
	Resolve(ctx context.Context) string
}

// CooldownResponse represents the sender's cooldown status
// swagger:model CooldownResponse
type CooldownResponse struct {
	// Whether the sender must still wait
	// default: false
	Active bool `json:"active"`

	// Seconds until the next message is allowed, zero when inactive
	// default: 0
	RetryAfterSeconds int `json:"retry_after_seconds"`
}

// CooldownErrorResponse represents an error response for the cooldown query
// swagger:model CooldownErrorResponse
type CooldownErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewCooldownHandler returns an HTTP handler reporting the caller's
// cooldown status. The check never writes a cooldown record, so message
// pages may poll it.
// @Summary Sender cooldown status
// @Description Reports how long the anonymous sender must wait before the next message
// @Tags public
// @Produce json
// @Param slug path string true "Link slug"
// @Success 200 {object} handlers.CooldownResponse "Cooldown status"
// @Failure 500 {object} handlers.CooldownErrorResponse "Internal server error"
// @Router /m/{slug}/cooldown [get]
func NewCooldownHandler(svc CooldownChecker, identifier SenderIdentifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity := identifier.Resolve(ctx)

		remaining, err := svc.CooldownRemaining(ctx, identity)
		if err != nil {
			logger.Log.Errorw("failed to check cooldown", "identity", identity, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CooldownErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CooldownResponse{
			Active:            remaining > 0,
			RetryAfterSeconds: int(remaining.Seconds()),
		})
	}
}
