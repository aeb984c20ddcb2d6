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

type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUsername returns the profile with the given username, or nil when absent.
func (r *ProfileReadRepository) GetByUsername(ctx context.Context, username string) (*models.ProfileDB, error) {
	const query = `
		SELECT id, username, password_hash, bio, avatar_url, created_at
		FROM profiles
		WHERE username = $1
		LIMIT 1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, username)

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

	return &profile, nil
}

// GetByID returns the profile with the given id, or nil when absent.
func (r *ProfileReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ProfileDB, error) {
	const query = `
		SELECT id, username, password_hash, bio, avatar_url, created_at
		FROM profiles
		WHERE id = $1
		LIMIT 1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new profile and returns its generated id.
func (r *ProfileWriteRepository) Save(ctx context.Context, username, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO profiles (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, executor, &id, query, uuid.New(), username, passwordHash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", id,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// UpdateProfile updates the mutable profile fields (bio and avatar URL).
func (r *ProfileWriteRepository) UpdateProfile(ctx context.Context, id uuid.UUID, bio, avatarURL *string) error {
	const query = `
		UPDATE profiles
		SET bio = $2, avatar_url = $3
		WHERE id = $1
	`
	args := []any{id, bio, avatarURL}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
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
