package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/med-tracker/internal/logger"
	"github.com/sbilibin2017/med-tracker/internal/models"
)

// UserCacheRepository caches user lookups by username in Redis so token
// resolution does not hit Postgres on every request.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached users
}

// NewUserCacheRepository creates a new repository instance with the given TTL
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userCacheKey(username string) string {
	return fmt.Sprintf("user:%s", username)
}

// Get fetches a cached user by username. Returns nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, username string) (*models.UserDB, error) {
	key := userCacheKey(username)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache read",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Errorw("cache entry corrupted",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache read",
		"key", key,
		"result", user.UserID,
		"error", nil,
	)

	return &user, nil
}

// Set caches a user with the repository's expiration.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	key := userCacheKey(user.Username)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache write",
		"key", key,
		"error", err,
	)

	return err
}

// Delete drops a cached user so the next lookup reloads fresh state.
func (r *UserCacheRepository) Delete(ctx context.Context, username string) error {
	key := userCacheKey(username)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache delete",
		"key", key,
		"error", err,
	)

	return err
}
