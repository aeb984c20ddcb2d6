package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
)

// DashboardStatser defines the interface that the dashboard service must implement.
type DashboardStatser interface {
	Stats(ctx context.Context, userID uuid.UUID) (*models.DashboardStats, error)
}

// DashboardResponse represents the owner's dashboard counters
// swagger:model DashboardResponse
type DashboardResponse struct {
	// Total links owned, active or not
	// default: 2
	TotalLinks int `json:"total_links"`

	// Unexpired messages across all owned links
	// default: 5
	ActiveMessages int `json:"active_messages"`

	// Newest active messages first
	Recent []MessageItem `json:"recent"`
}

// DashboardErrorResponse represents an error response for the dashboard
// swagger:model DashboardErrorResponse
type DashboardErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewDashboardHandler returns an HTTP handler for the dashboard summary.
// @Summary Dashboard summary
// @Description Returns link and message counters plus the newest messages
// @Tags dashboard
// @Produce json
// @Success 200 {object} handlers.DashboardResponse "Dashboard counters"
// @Failure 401 {object} handlers.DashboardErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.DashboardErrorResponse "Internal server error"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardStatser, tokener LinkTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := userIDFromRequest(ctx, w, r, tokener)
		if !ok {
			return
		}

		stats, err := svc.Stats(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to compute dashboard", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DashboardErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := DashboardResponse{
			TotalLinks:     stats.TotalLinks,
			ActiveMessages: stats.ActiveMessages,
			Recent:         make([]MessageItem, 0, len(stats.Recent)),
		}
		for _, m := range stats.Recent {
			resp.Recent = append(resp.Recent, MessageItem{
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
