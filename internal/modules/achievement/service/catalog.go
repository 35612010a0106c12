package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"craftvale.gg/communityapi/internal/entity"
	"craftvale.gg/communityapi/internal/modules/achievement/repository"
	"github.com/redis/go-redis/v9"
)

const catalogRedisKey = "catalog:achievements"

// CatalogIndexer receives the catalog whenever a refresh succeeds.
type CatalogIndexer interface {
	IndexAchievements(definitions []entity.AchievementDefinition) error
}

// CatalogCache holds the active achievement definitions. A failed refresh
// keeps the previous value (empty on first failure); a later Refresh is the
// only retry mechanism.
type CatalogCache struct {
	repo        repository.AchievementRepository
	redisClient *redis.Client
	indexer     CatalogIndexer
	ttl         time.Duration

	mu          sync.Mutex
	definitions []entity.AchievementDefinition
	fetchedAt   time.Time
	loading     bool
}

func NewCatalogCache(repo repository.AchievementRepository, redisClient *redis.Client, indexer CatalogIndexer, ttl time.Duration) *CatalogCache {
	c := &CatalogCache{
		repo:        repo,
		redisClient: redisClient,
		indexer:     indexer,
		ttl:         ttl,
	}
	c.warmFromRedis()
	return c
}

func (c *CatalogCache) warmFromRedis() {
	if c.redisClient == nil {
		return
	}

	payload, err := c.redisClient.Get(context.Background(), catalogRedisKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Failed to read catalog from redis: %v", err)
		}
		return
	}

	var definitions []entity.AchievementDefinition
	if err := json.Unmarshal(payload, &definitions); err != nil {
		log.Printf("Corrupt catalog payload in redis: %v", err)
		return
	}

	c.mu.Lock()
	c.definitions = definitions
	c.fetchedAt = time.Now()
	c.mu.Unlock()
}

// Loading reports whether a refresh is in flight.
func (c *CatalogCache) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Definitions returns the cached catalog, refreshing first when the cache is
// cold or expired. The returned slice is shared; callers must not mutate it.
func (c *CatalogCache) Definitions(ctx context.Context) []entity.AchievementDefinition {
	c.mu.Lock()
	stale := c.fetchedAt.IsZero() || time.Since(c.fetchedAt) > c.ttl
	inFlight := c.loading
	definitions := c.definitions
	c.mu.Unlock()

	if stale && !inFlight {
		if err := c.Refresh(ctx); err != nil {
			return definitions
		}
		c.mu.Lock()
		definitions = c.definitions
		c.mu.Unlock()
	}

	return definitions
}

// Refresh fetches the active catalog from the store. On failure the previous
// cache value survives untouched.
func (c *CatalogCache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	definitions, err := c.repo.FindActiveDefinitions(ctx)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.mu.Unlock()
		log.Printf("Failed to refresh achievement catalog: %v", err)
		return err
	}
	c.definitions = definitions
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	if c.redisClient != nil {
		if payload, err := json.Marshal(definitions); err == nil {
			if err := c.redisClient.SetEx(ctx, catalogRedisKey, payload, c.ttl).Err(); err != nil {
				log.Printf("Failed to cache catalog in redis: %v", err)
			}
		}
	}

	if c.indexer != nil {
		if err := c.indexer.IndexAchievements(definitions); err != nil {
			log.Printf("Failed to index achievement catalog: %v", err)
		}
	}

	return nil
}
