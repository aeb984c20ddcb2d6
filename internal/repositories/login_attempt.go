package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
)

type LoginAttemptReadRepository struct {
	db *sqlx.DB
}

func NewLoginAttemptReadRepository(db *sqlx.DB) *LoginAttemptReadRepository {
	return &LoginAttemptReadRepository{db: db}
}

// Get returns the attempt ledger record for a username, or nil when
// no failed attempt has been recorded since the last reset.
func (r *LoginAttemptReadRepository) Get(ctx context.Context, username string) (*models.LoginAttemptDB, error) {
	const query = `
		SELECT username, attempt_count, last_attempt, blocked_until
		FROM login_attempts
		WHERE username = $1
		LIMIT 1
	`

	var attempt models.LoginAttemptDB
	err := r.db.GetContext(ctx, &attempt, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &attempt, nil
}

type LoginAttemptWriteRepository struct {
	db *sqlx.DB
}

func NewLoginAttemptWriteRepository(db *sqlx.DB) *LoginAttemptWriteRepository {
	return &LoginAttemptWriteRepository{db: db}
}

// Upsert writes the full ledger state for a username in one statement,
// so each recorded outcome stays atomic (last write wins across callers).
func (r *LoginAttemptWriteRepository) Upsert(ctx context.Context, username string, attemptCount int, lastAttempt time.Time, blockedUntil *time.Time) error {
	const query = `
		INSERT INTO login_attempts (username, attempt_count, last_attempt, blocked_until)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE
		SET attempt_count = EXCLUDED.attempt_count,
		    last_attempt = EXCLUDED.last_attempt,
		    blocked_until = EXCLUDED.blocked_until
	`
	args := []any{username, attemptCount, lastAttempt, blockedUntil}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the ledger record for a username entirely.
func (r *LoginAttemptWriteRepository) Delete(ctx context.Context, username string) error {
	const query = `
		DELETE FROM login_attempts
		WHERE username = $1
	`

	res, err := r.db.ExecContext(ctx, query, username)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
