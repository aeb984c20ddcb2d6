package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
)

// LoginStatusProvider exposes the read-only view of the failed-login ledger.
type LoginStatusProvider interface {
	Attempts(ctx context.Context, username string) (*models.LoginAttemptDB, error)
	Blocked(ctx context.Context, username string) (*time.Time, error)
}

// LoginStatusResponse represents the lockout status for a username
// swagger:model LoginStatusResponse
type LoginStatusResponse struct {
	// Consecutive failed attempts since the last successful login
	// default: 0
	AttemptCount int `json:"attempt_count"`

	// Whether login is currently blocked
	// default: false
	Blocked bool `json:"blocked"`

	// Lockout expiry, present only while blocked
	BlockedUntil *time.Time `json:"blocked_until,omitempty"`
}

// LoginStatusErrorResponse represents an error response for the status query
// swagger:model LoginStatusErrorResponse
type LoginStatusErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewLoginStatusHandler returns an HTTP handler reporting the lockout
// status for a username. The check never mutates the ledger, so clients
// may poll it freely.
// @Summary Login lockout status
// @Description Reports failed-attempt count and lockout state for a username
// @Tags auth
// @Produce json
// @Param username query string true "Username to check"
// @Success 200 {object} handlers.LoginStatusResponse "Lockout status"
// @Failure 400 {object} handlers.LoginStatusErrorResponse "Missing username"
// @Router /login/attempts [get]
func NewLoginStatusHandler(svc LoginStatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginStatusErrorResponse{
				Error: "username is required",
			})
			return
		}

		ctx := r.Context()

		until, err := svc.Blocked(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to check lockout", "username", username, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LoginStatusErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		attempt, err := svc.Attempts(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to read attempts", "username", username, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LoginStatusErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := LoginStatusResponse{
			Blocked:      until != nil,
			BlockedUntil: until,
		}
		if attempt != nil {
			resp.AttemptCount = attempt.AttemptCount
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
