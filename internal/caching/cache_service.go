package caching

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"crackershop/internal/models"
)

// CatalogCache holds the rendered category tree between reads. A miss is
// (nil, nil); product writes invalidate the entry so responses never go stale.
type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]*models.Category, error)
	SetCatalog(ctx context.Context, categories []*models.Category, ttl time.Duration) error
	InvalidateCatalog(ctx context.Context) error
}

const catalogKey = "crackershop:catalog"

type redisCatalogCache struct {
	client *redis.Client
}

func NewRedisCatalogCache(addr, password string, db int) CatalogCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", err, addr)
	}

	return &redisCatalogCache{client: client}
}

func (r *redisCatalogCache) GetCatalog(ctx context.Context) ([]*models.Category, error) {
	data, err := r.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var categories []*models.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *redisCatalogCache) SetCatalog(ctx context.Context, categories []*models.Category, ttl time.Duration) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, catalogKey, data, ttl).Err()
}

func (r *redisCatalogCache) InvalidateCatalog(ctx context.Context) error {
	return r.client.Del(ctx, catalogKey).Err()
}

// noopCache stands in when no Redis address is configured; every read is a
// miss and writes are discarded.
type noopCache struct{}

func NewNoopCache() CatalogCache {
	return noopCache{}
}

func (noopCache) GetCatalog(context.Context) ([]*models.Category, error) {
	return nil, nil
}

func (noopCache) SetCatalog(context.Context, []*models.Category, time.Duration) error {
	return nil
}

func (noopCache) InvalidateCatalog(context.Context) error {
	return nil
}
