package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

const listCacheTTL = 30 * time.Minute

func categoriesKey(userID domain.ID) string { return fmt.Sprintf("categories:%s", userID) }
func activitiesKey(userID domain.ID) string { return fmt.Sprintf("activities:%s", userID) }

func invalidate(ctx context.Context, cache *redis.Client, keys ...string) {
	if err := cache.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate %v: %v", keys, err)
	}
}

// readThrough serves key from redis, falling back to load and repopulating
// the key on a miss. Redis failures only cost a trip to the database.
func readThrough[T any](ctx context.Context, cache *redis.Client, key string, load func() ([]T, error)) ([]T, error) {
	val, err := cache.Get(ctx, key).Result()
	if err == nil {
		var items []T
		if err := json.Unmarshal([]byte(val), &items); err == nil {
			return items, nil
		}

		log.Printf("[CACHE] Corrupted data at %s, cleaning up key", key)
		cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	items, err := load()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		if setErr := cache.Set(ctx, key, data, listCacheTTL).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return items, nil
}

var _ domain.CategoryRepository = (*CachedCategoryRepository)(nil)

type CachedCategoryRepository struct {
	next  domain.CategoryRepository
	cache *redis.Client
}

func NewCachedCategoryRepository(next domain.CategoryRepository, cache *redis.Client) *CachedCategoryRepository {
	return &CachedCategoryRepository{next: next, cache: cache}
}

func (r *CachedCategoryRepository) ListByUserID(ctx context.Context, userID domain.ID) ([]domain.Category, error) {
	return readThrough(ctx, r.cache, categoriesKey(userID), func() ([]domain.Category, error) {
		return r.next.ListByUserID(ctx, userID)
	})
}

func (r *CachedCategoryRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Category, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	if err := r.next.Create(ctx, c); err != nil {
		return err
	}
	invalidate(ctx, r.cache, categoriesKey(c.UserID))
	return nil
}

func (r *CachedCategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	if err := r.next.Update(ctx, c); err != nil {
		return err
	}
	invalidate(ctx, r.cache, categoriesKey(c.UserID))
	return nil
}

// Delete also drops the activity list, since the cascade removed entries
// from it.
func (r *CachedCategoryRepository) Delete(ctx context.Context, id, userID domain.ID) error {
	if err := r.next.Delete(ctx, id, userID); err != nil {
		return err
	}
	invalidate(ctx, r.cache, categoriesKey(userID), activitiesKey(userID))
	return nil
}

var _ domain.ActivityRepository = (*CachedActivityRepository)(nil)

type CachedActivityRepository struct {
	next  domain.ActivityRepository
	cache *redis.Client
}

func NewCachedActivityRepository(next domain.ActivityRepository, cache *redis.Client) *CachedActivityRepository {
	return &CachedActivityRepository{next: next, cache: cache}
}

func (r *CachedActivityRepository) ListByUserID(ctx context.Context, userID domain.ID) ([]domain.Activity, error) {
	return readThrough(ctx, r.cache, activitiesKey(userID), func() ([]domain.Activity, error) {
		return r.next.ListByUserID(ctx, userID)
	})
}

func (r *CachedActivityRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Activity, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	if err := r.next.Create(ctx, a); err != nil {
		return err
	}
	invalidate(ctx, r.cache, activitiesKey(a.UserID))
	return nil
}

func (r *CachedActivityRepository) Update(ctx context.Context, a *domain.Activity) error {
	if err := r.next.Update(ctx, a); err != nil {
		return err
	}
	invalidate(ctx, r.cache, activitiesKey(a.UserID))
	return nil
}

func (r *CachedActivityRepository) Delete(ctx context.Context, id, userID domain.ID) error {
	if err := r.next.Delete(ctx, id, userID); err != nil {
		return err
	}
	invalidate(ctx, r.cache, activitiesKey(userID))
	return nil
}
