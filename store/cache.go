package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"go-restaurant/models"
)

// Cache is the subset of the redis client used for caching; *redis.Client
// implements it.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedStore puts a read-through redis cache of single foods in front of
// another store. Writes invalidate the cached entry. Cache failures are
// logged and never fail the request.
type CachedStore struct {
	FoodStore
	cache  Cache
	ttl    time.Duration
	logger *log.Logger
}

func NewCachedStore(next FoodStore, cache Cache, ttl time.Duration, logger *log.Logger) *CachedStore {
	if logger == nil {
		logger = log.New(log.Writer(), "", log.LstdFlags)
	}
	return &CachedStore{FoodStore: next, cache: cache, ttl: ttl, logger: logger}
}

func cacheKey(id int64) string {
	return "food:" + strconv.FormatInt(id, 10)
}

func (s *CachedStore) Get(ctx context.Context, id int64) (models.Food, error) {
	key := cacheKey(id)
	val, err := s.cache.Get(ctx, key).Result()
	if err == nil {
		var food models.Food
		if err := json.Unmarshal([]byte(val), &food); err == nil {
			return food, nil
		}
		s.logger.Printf("discarding corrupt cache entry %s", key)
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Printf("cache get %s: %v", key, err)
	}

	food, err := s.FoodStore.Get(ctx, id)
	if err != nil {
		return models.Food{}, err
	}
	if b, err := json.Marshal(food); err == nil {
		if err := s.cache.Set(ctx, key, b, s.ttl).Err(); err != nil {
			s.logger.Printf("cache set %s: %v", key, err)
		}
	}
	return food, nil
}

func (s *CachedStore) Update(ctx context.Context, id int64, food models.Food) (models.Food, error) {
	updated, err := s.FoodStore.Update(ctx, id, food)
	s.invalidate(ctx, id)
	return updated, err
}

func (s *CachedStore) Delete(ctx context.Context, id int64) error {
	err := s.FoodStore.Delete(ctx, id)
	s.invalidate(ctx, id)
	return err
}

func (s *CachedStore) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Del(ctx, cacheKey(id)).Err(); err != nil {
		s.logger.Printf("cache del %s: %v", cacheKey(id), err)
	}
}
