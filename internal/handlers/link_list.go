package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
)

// LinkLister defines the interface that the link service must implement.
type LinkLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error)
}

// ListLinksResponse represents the owner's links, newest first
// swagger:model ListLinksResponse
type ListLinksResponse struct {
	Links []LinkResponse `json:"links"`
}

// NewListLinksHandler returns an HTTP handler listing the caller's links.
// @Summary List message links
// @Description Returns all links owned by the authenticated user, newest first
// @Tags links
// @Produce json
// @Success 200 {object} handlers.ListLinksResponse "Owned links"
// @Failure 401 {object} handlers.LinkErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.LinkErrorResponse "Internal server error"
// @Router /links [get]
// @Security BearerAuth
func NewListLinksHandler(svc LinkLister, tokener LinkTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := userIDFromRequest(ctx, w, r, tokener)
		if !ok {
			return
		}

		links, err := svc.List(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list links", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LinkErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := ListLinksResponse{Links: make([]LinkResponse, 0, len(links))}
		for i := range links {
			resp.Links = append(resp.Links, newLinkResponse(&links[i]))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
