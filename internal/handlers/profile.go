package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
	"github.com/kazzanonim/anonlink/internal/services"
)

// ProfileGetter defines the read side of the profile service.
type ProfileGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// ProfileSaver defines the write side of the profile service.
type ProfileSaver interface {
	Update(ctx context.Context, userID uuid.UUID, bio, avatarURL string) error
}

// ProfileResponse represents the caller's own profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest represents the JSON body for a profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Profile bio; empty clears it
	Bio string `json:"bio"`

	// Avatar URL; empty clears it
	AvatarURL string `json:"avatar_url"`
}

// UpdateProfileResponse represents a successful profile update
// swagger:model UpdateProfileResponse
type UpdateProfileResponse struct {
	// Success message
	// default: Profile updated
	Message string `json:"message"`
}

// ProfileErrorResponse represents an error response for profile operations
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetProfileHandler returns an HTTP handler for fetching the caller's profile.
// @Summary Get own profile
// @Description Returns the authenticated user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProfileErrorResponse "Profile not found"
// @Router /profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter, tokener LinkTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := userIDFromRequest(ctx, w, r, tokener)
		if !ok {
			return
		}

		profile, err := svc.Get(ctx, userID)
		if err != nil {
			if errors.Is(err, services.ErrProfileNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Profile not found",
				})
				return
			}
			logger.Log.Errorw("failed to get profile", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{
			ID:        profile.ID.String(),
			Username:  profile.Username,
			Bio:       profile.Bio,
			AvatarURL: profile.AvatarURL,
			CreatedAt: profile.CreatedAt,
		})
	}
}

// NewUpdateProfileHandler returns an HTTP handler for updating the caller's profile.
// @Summary Update own profile
// @Description Updates bio and avatar URL; empty fields clear the stored value
// @Tags profile
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} handlers.UpdateProfileResponse "Profile updated"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ProfileErrorResponse "Internal server error"
// @Router /profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileSaver, tokener LinkTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := userIDFromRequest(ctx, w, r, tokener)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.Update(ctx, userID, req.Bio, req.AvatarURL); err != nil {
			logger.Log.Errorw("failed to update profile", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateProfileResponse{
			Message: "Profile updated",
		})
	}
}
