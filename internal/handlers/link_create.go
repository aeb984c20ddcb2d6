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

// LinkTokener defines only the token methods needed by link handlers.
type LinkTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// LinkCreator defines the interface that the link service must implement.
type LinkCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title, customSlug, customPhoto string) (*models.LinkDB, error)
}

// CreateLinkRequest represents the JSON body for link creation
// swagger:model CreateLinkRequest
type CreateLinkRequest struct {
	// Optional display title
	// default: Ask me anything
	Title string `json:"title"`

	// Optional custom slug; generated when empty
	Slug string `json:"slug"`

	// Optional photo URL shown on the public message page
	CustomPhoto string `json:"custom_photo"`
}

// LinkResponse represents a link returned to its owner
// swagger:model LinkResponse
type LinkResponse struct {
	ID          string    `json:"id"`
	UniqueSlug  string    `json:"unique_slug"`
	Title       *string   `json:"title"`
	CustomPhoto *string   `json:"custom_photo"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// LinkErrorResponse represents an error response for link operations
// swagger:model LinkErrorResponse
type LinkErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewCreateLinkHandler returns an HTTP handler for creating message links.
// @Summary Create a message link
// @Description Creates a shareable link for receiving anonymous messages
// @Tags links
// @Accept json
// @Produce json
// @Param createLinkRequest body handlers.CreateLinkRequest true "Link creation request"
// @Success 201 {object} handlers.LinkResponse "Link created"
// @Failure 401 {object} handlers.LinkErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.LinkErrorResponse "Internal server error"
// @Router /links [post]
// @Security BearerAuth
func NewCreateLinkHandler(svc LinkCreator, tokener LinkTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := userIDFromRequest(ctx, w, r, tokener)
		if !ok {
			return
		}

		var req CreateLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LinkErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		link, err := svc.Create(ctx, userID, req.Title, req.Slug, req.CustomPhoto)
		if err != nil {
			logger.Log.Errorw("failed to create link", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LinkErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newLinkResponse(link))
	}
}

func newLinkResponse(link *models.LinkDB) LinkResponse {
	return LinkResponse{
		ID:          link.ID.String(),
		UniqueSlug:  link.UniqueSlug,
		Title:       link.Title,
		CustomPhoto: link.CustomPhoto,
		IsActive:    link.IsActive,
		CreatedAt:   link.CreatedAt,
	}
}

// userIDFromRequest extracts and validates the caller identity, writing
// a 401 response itself on failure.
func userIDFromRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, tokener LinkTokener) (uuid.UUID, bool) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(LinkErrorResponse{
			Error: "Unauthorized",
		})
		return uuid.Nil, false
	}

	userID, err := tokener.GetUserID(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(LinkErrorResponse{
			Error: "Unauthorized",
		})
		return uuid.Nil, false
	}

	return userID, true
}
