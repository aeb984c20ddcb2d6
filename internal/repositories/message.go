package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
)

type MessageReadRepository struct {
	db *sqlx.DB
}

func NewMessageReadRepository(db *sqlx.DB) *MessageReadRepository {
	return &MessageReadRepository{db: db}
}

// ListActiveByLinkIDs returns unexpired messages for the given links,
// newest first. The expiry cut is applied in the query so expired rows
// never reach callers.
func (r *MessageReadRepository) ListActiveByLinkIDs(ctx context.Context, linkIDs []uuid.UUID, now time.Time, limit int) ([]models.MessageDB, error) {
	query := `
		SELECT id, link_id, message_text, sender_ip, created_at, expires_at
		FROM anonymous_messages
		WHERE link_id IN (?) AND expires_at > ?
		ORDER BY created_at DESC
	`
	if limit > 0 {
		query += " LIMIT ?"
	}

	args := []any{linkIDs, now}
	if limit > 0 {
		args = append(args, limit)
	}

	query, inArgs, err := sqlx.In(query, args...)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var messages []models.MessageDB
	err = r.db.SelectContext(ctx, &messages, query, inArgs...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{linkIDs, now, limit},
		"result", len(messages),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return messages, nil
}

// CountActiveByLinkIDs returns the number of unexpired messages for the links.
func (r *MessageReadRepository) CountActiveByLinkIDs(ctx context.Context, linkIDs []uuid.UUID, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM anonymous_messages
		WHERE link_id IN (?) AND expires_at > ?
	`

	query, inArgs, err := sqlx.In(query, linkIDs, now)
	if err != nil {
		return 0, err
	}
	query = r.db.Rebind(query)

	var count int
	err = r.db.GetContext(ctx, &count, query, inArgs...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{linkIDs, now},
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return count, nil
}

type MessageWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMessageWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MessageWriteRepository {
	return &MessageWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a message with its expiry instant and returns the stored row.
func (r *MessageWriteRepository) Save(ctx context.Context, linkID uuid.UUID, text, senderIP string, createdAt, expiresAt time.Time) (*models.MessageDB, error) {
	const query = `
		INSERT INTO anonymous_messages (id, link_id, message_text, sender_ip, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, link_id, message_text, sender_ip, created_at, expires_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var message models.MessageDB
	err := sqlx.GetContext(ctx, executor, &message, query, uuid.New(), linkID, text, senderIP, createdAt, expiresAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{linkID, senderIP, createdAt, expiresAt},
		"result", message.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &message, nil
}
