package services

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
)

const (
	slugPrefix    = "link-"
	slugSuffixLen = 8

	slugAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// LinkReader defines read operations for an owner's links.
type LinkReader interface {
	GetActiveBySlug(ctx context.Context, slug string) (*models.LinkPreview, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error)
}

// LinkWriter defines write operations for links.
type LinkWriter interface {
	Save(ctx context.Context, userID uuid.UUID, slug string, title, customPhoto *string) (*models.LinkDB, error)
}

// LinkService creates and lists shareable message links.
type LinkService struct {
	reader LinkReader
	writer LinkWriter
}

// NewLinkService creates a new LinkService.
func NewLinkService(reader LinkReader, writer LinkWriter) *LinkService {
	return &LinkService{reader: reader, writer: writer}
}

// Create stores a new active link for the owner. When no custom slug is
// supplied one is generated; uniqueness is the datastore's to enforce,
// so a collision surfaces as the insert error.
func (svc *LinkService) Create(ctx context.Context, userID uuid.UUID, title, customSlug, customPhoto string) (*models.LinkDB, error) {
	slug := customSlug
	if slug == "" {
		slug = slugPrefix + randSlugSuffix(slugSuffixLen)
	}

	var titlePtr, photoPtr *string
	if title != "" {
		titlePtr = &title
	}
	if customPhoto != "" {
		photoPtr = &customPhoto
	}

	link, err := svc.writer.Save(ctx, userID, slug, titlePtr, photoPtr)
	if err != nil {
		logger.Log.Errorw("failed to save link", "user_id", userID, "slug", slug, "err", err)
		return nil, err
	}

	return link, nil
}

// List returns the owner's links, newest first.
func (svc *LinkService) List(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error) {
	links, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list links", "user_id", userID, "err", err)
		return nil, err
	}
	return links, nil
}

// ResolveSlug returns the public preview of an active link.
func (svc *LinkService) ResolveSlug(ctx context.Context, slug string) (*models.LinkPreview, error) {
	preview, err := svc.reader.GetActiveBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to resolve slug", "slug", slug, "err", err)
		return nil, err
	}
	if preview == nil {
		return nil, ErrLinkNotFound
	}
	return preview, nil
}

func randSlugSuffix(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(slugAlphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			b[i] = slugAlphabet[0]
			continue
		}
		b[i] = slugAlphabet[idx.Int64()]
	}
	return string(b)
}
