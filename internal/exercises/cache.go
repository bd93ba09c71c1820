package exercises

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneMinute          = 60
	catalogCacheExpire = 5 * oneMinute // seconds

	megabyte         = 1024 * 1024
	catalogCacheSize = 2 * megabyte
)

type catalogLister interface {
	List(ctx context.Context, filters Filters) ([]Exercise, error)
}

// CachedRepo caches catalog reads per filter tuple. The catalog only changes
// through seeding, so a short TTL is enough to keep it fresh.
type CachedRepo struct {
	repo  catalogLister
	cache *freecache.Cache
}

func NewCachedRepo(repo catalogLister) *CachedRepo {
	return &CachedRepo{
		repo:  repo,
		cache: freecache.NewCache(catalogCacheSize),
	}
}

func (c *CachedRepo) List(ctx context.Context, filters Filters) ([]Exercise, error) {
	cacheKey := []byte(fmt.Sprintf("list::%s::%s::%s", filters.Category, filters.MuscleGroup, filters.Search))

	if cachedBytes, err := c.cache.Get(cacheKey); err == nil {
		var exercises []Exercise
		if err := json.Unmarshal(cachedBytes, &exercises); err == nil {
			log.Tracef("exercises catalog served from cache [%s]", cacheKey)
			return exercises, nil
		}
		log.Errorf("failed to unmarshal cached exercises [%s]: %s", cacheKey, err)
	}

	exercises, err := c.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	exercisesBytes, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal exercises for cache [%s]: %s", cacheKey, err)
		return exercises, nil
	}
	if err := c.cache.Set(cacheKey, exercisesBytes, catalogCacheExpire); err != nil {
		log.Errorf("failed to set exercises cache [%s]: %s", cacheKey, err)
	}

	return exercises, nil
}
