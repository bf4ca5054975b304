package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/med-tracker/internal/logger"
	"github.com/sbilibin2017/med-tracker/internal/models"
)

// ErrUserNotFound is returned when an admin update targets a missing user.
var ErrUserNotFound = errors.New("user not found")

// UserLister defines listing operations for users.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserUpdater defines partial-update operations for users.
type UserUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, isAdmin, isActive *bool) (*models.UserDB, error)
}

// UserCacheInvalidator drops cached user lookups.
type UserCacheInvalidator interface {
	Delete(ctx context.Context, username string) error
}

// UserService handles the admin-facing user management operations.
type UserService struct {
	lister  UserLister
	updater UserUpdater
	cache   UserCacheInvalidator
}

// NewUserService creates a new UserService instance.
func NewUserService(lister UserLister, updater UserUpdater, cache UserCacheInvalidator) *UserService {
	return &UserService{
		lister:  lister,
		updater: updater,
		cache:   cache,
	}
}

// List returns all registered users.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.lister.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Update applies a partial update of the admin and active flags. The cached
// lookup for the user is invalidated so a ban takes effect on their next
// request rather than after the cache TTL.
func (svc *UserService) Update(ctx context.Context, userID uuid.UUID, isAdmin, isActive *bool) (*models.UserDB, error) {
	user, err := svc.updater.Update(ctx, userID, isAdmin, isActive)
	if err != nil {
		logger.Log.Errorw("failed to update user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Delete(ctx, user.Username); err != nil {
			logger.Log.Warnw("failed to invalidate cached user", "username", user.Username, "error", err)
		}
	}

	return user, nil
}
