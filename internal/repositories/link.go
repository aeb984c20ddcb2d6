package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
)

type LinkReadRepository struct {
	db *sqlx.DB
}

func NewLinkReadRepository(db *sqlx.DB) *LinkReadRepository {
	return &LinkReadRepository{db: db}
}

// GetActiveBySlug resolves an active link by its unique slug together
// with the owner profile preview, or nil when no active link matches.
func (r *LinkReadRepository) GetActiveBySlug(ctx context.Context, slug string) (*models.LinkPreview, error) {
	const query = `
		SELECT l.id AS link_id, l.user_id AS owner_id, l.unique_slug, l.title, l.custom_photo,
		       p.username AS owner_username, p.bio AS owner_bio, p.avatar_url AS owner_avatar
		FROM anonymous_links l
		JOIN profiles p ON p.id = l.user_id
		WHERE l.unique_slug = $1 AND l.is_active = TRUE
		LIMIT 1
	`

	var preview models.LinkPreview
	err := r.db.GetContext(ctx, &preview, query, slug)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slug},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &preview, nil
}

// ListByUserID returns the owner's links, newest first.
func (r *LinkReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error) {
	const query = `
		SELECT id, user_id, unique_slug, title, custom_photo, is_active, created_at
		FROM anonymous_links
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var links []models.LinkDB
	err := r.db.SelectContext(ctx, &links, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(links),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return links, nil
}

type LinkWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLinkWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LinkWriteRepository {
	return &LinkWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new active link. Slug uniqueness is enforced by the
// unique index; a collision surfaces as the insert error.
func (r *LinkWriteRepository) Save(ctx context.Context, userID uuid.UUID, slug string, title, customPhoto *string) (*models.LinkDB, error) {
	const query = `
		INSERT INTO anonymous_links (id, user_id, unique_slug, title, custom_photo, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
		RETURNING id, user_id, unique_slug, title, custom_photo, is_active, created_at
	`
	args := []any{uuid.New(), userID, slug, title, customPhoto}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var link models.LinkDB
	err := sqlx.GetContext(ctx, executor, &link, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, slug, title},
		"result", link.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &link, nil
}
