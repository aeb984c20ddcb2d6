package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
	"github.com/kazzanonim/anonlink/internal/services"
)

// SlugResolver defines the interface that the link service must implement.
type SlugResolver interface {
	ResolveSlug(ctx context.Context, slug string) (*models.LinkPreview, error)
}

// LinkPreviewResponse represents the public view of a link
// swagger:model LinkPreviewResponse
type LinkPreviewResponse struct {
	UniqueSlug    string  `json:"unique_slug"`
	Title         *string `json:"title"`
	CustomPhoto   *string `json:"custom_photo"`
	OwnerUsername string  `json:"owner_username"`
	OwnerBio      *string `json:"owner_bio"`
	OwnerAvatar   *string `json:"owner_avatar"`
}

// LinkPreviewErrorResponse represents an error response for slug resolution
// swagger:model LinkPreviewErrorResponse
type LinkPreviewErrorResponse struct {
	// Error message
	// default: Link not found
	Error string `json:"error"`
}

// NewResolveLinkHandler returns an HTTP handler resolving a public slug
// to the link preview shown on the anonymous message page.
// @Summary Resolve a message link
// @Description Returns the public preview for an active link slug
// @Tags public
// @Produce json
// @Param slug path string true "Link slug"
// @Success 200 {object} handlers.LinkPreviewResponse "Link preview"
// @Failure 404 {object} handlers.LinkPreviewErrorResponse "Unknown or inactive slug"
// @Router /m/{slug} [get]
func NewResolveLinkHandler(svc SlugResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		preview, err := svc.ResolveSlug(r.Context(), slug)
		if err != nil {
			if errors.Is(err, services.ErrLinkNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LinkPreviewErrorResponse{
					Error: "Link not found",
				})
				return
			}
			logger.Log.Errorw("failed to resolve slug", "slug", slug, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LinkPreviewErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LinkPreviewResponse{
			UniqueSlug:    preview.UniqueSlug,
			Title:         preview.Title,
			CustomPhoto:   preview.CustomPhoto,
			OwnerUsername: preview.OwnerUsername,
			OwnerBio:      preview.OwnerBio,
			OwnerAvatar:   preview.OwnerAvatar,
		})
	}
}
