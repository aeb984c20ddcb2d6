package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileByIDReader reads profiles by id.
type ProfileByIDReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProfileDB, error)
}

// ProfileUpdater updates the mutable profile fields.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, id uuid.UUID, bio, avatarURL *string) error
}

// ProfileService reads and updates profile data. Username and password
// have no update path.
type ProfileService struct {
	reader  ProfileByIDReader
	updater ProfileUpdater
}

// NewProfileService creates a new ProfileService.
func NewProfileService(reader ProfileByIDReader, updater ProfileUpdater) *ProfileService {
	return &ProfileService{reader: reader, updater: updater}
}

// Get returns the profile for an authenticated user id.
func (svc *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	profile, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "user_id", userID, "err", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Update sets bio and avatar URL for the user. Empty strings clear a field.
func (svc *ProfileService) Update(ctx context.Context, userID uuid.UUID, bio, avatarURL string) error {
	var bioPtr, avatarPtr *string
	if bio != "" {
		bioPtr = &bio
	}
	if avatarURL != "" {
		avatarPtr = &avatarURL
	}

	if err := svc.updater.UpdateProfile(ctx, userID, bioPtr, avatarPtr); err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return err
	}
	return nil
}
