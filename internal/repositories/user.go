package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/med-tracker/internal/logger"
	"github.com/sbilibin2017/med-tracker/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil if absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, is_admin, is_active, created_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, username)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, is_admin, is_active, created_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, userID)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns all users ordered by creation time.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, is_admin, is_active, created_at
		FROM users
		ORDER BY created_at
	`

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &users, query)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored row.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, is_admin, is_active, created_at
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, username, passwordHash)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{username},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Update applies a partial update of the admin and active flags.
// Unset fields are left untouched. Returns nil if no user has that id.
func (r *UserWriteRepository) Update(ctx context.Context, userID uuid.UUID, isAdmin, isActive *bool) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET is_admin = COALESCE($2, is_admin),
		    is_active = COALESCE($3, is_active)
		WHERE id = $1
		RETURNING id, username, password_hash, is_admin, is_active, created_at
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, userID, isAdmin, isActive)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{userID, isAdmin, isActive},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
