// Package cache provides a Redis hot tier in front of the durable
// category mapping store.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/transaction-categorizer/backend/internal/application/adapter"
	"github.com/transaction-categorizer/backend/internal/domain/entity"
)

const mappingKeyPrefix = "category-mapping:"

// RedisMappingCache decorates a CategoryMappingRepository with Redis
// lookups. The durable store stays authoritative: every Redis failure
// degrades silently to the wrapped repository, and Redis entries are
// backfilled from it best-effort.
type RedisMappingCache struct {
	inner  adapter.CategoryMappingRepository
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMappingCache creates a new Redis-backed mapping cache around
// the given repository.
func NewRedisMappingCache(inner adapter.CategoryMappingRepository, client *redis.Client, ttl time.Duration) *RedisMappingCache {
	return &RedisMappingCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

// Save writes through to the durable store first, then updates Redis.
func (c *RedisMappingCache) Save(ctx context.Context, mapping *entity.CategoryMapping) error {
	if err := c.inner.Save(ctx, mapping); err != nil {
		return err
	}

	if err := c.client.Set(ctx, mappingKeyPrefix+mapping.Description, mapping.Category, c.ttl).Err(); err != nil {
		slog.Warn("Failed to update Redis mapping cache",
			"description", mapping.Description,
			"error", err,
		)
	}
	return nil
}

// FindByDescription checks Redis before the durable store.
func (c *RedisMappingCache) FindByDescription(ctx context.Context, description string) (*entity.CategoryMapping, error) {
	category, err := c.client.Get(ctx, mappingKeyPrefix+description).Result()
	if err == nil {
		return &entity.CategoryMapping{Description: description, Category: category}, nil
	}
	if err != redis.Nil {
		slog.Warn("Redis mapping lookup failed", "error", err)
	}

	mapping, err := c.inner.FindByDescription(ctx, description)
	if err != nil || mapping == nil {
		return mapping, err
	}
	c.backfill(ctx, mapping)
	return mapping, nil
}

// FindAllByDescriptions resolves as many descriptions as possible from
// Redis in one round trip and fetches the rest from the durable store.
func (c *RedisMappingCache) FindAllByDescriptions(ctx context.Context, descriptions []string) ([]*entity.CategoryMapping, error) {
	if len(descriptions) == 0 {
		return []*entity.CategoryMapping{}, nil
	}

	keys := make([]string, 0, len(descriptions))
	for _, description := range descriptions {
		keys = append(keys, mappingKeyPrefix+description)
	}

	mappings := make([]*entity.CategoryMapping, 0, len(descriptions))
	missed := descriptions

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		slog.Warn("Redis batch mapping lookup failed", "error", err)
	} else {
		missed = make([]string, 0, len(descriptions))
		for i, value := range values {
			category, ok := value.(string)
			if !ok {
				missed = append(missed, descriptions[i])
				continue
			}
			mappings = append(mappings, &entity.CategoryMapping{
				Description: descriptions[i],
				Category:    category,
			})
		}
	}

	if len(missed) == 0 {
		return mappings, nil
	}

	stored, err := c.inner.FindAllByDescriptions(ctx, missed)
	if err != nil {
		return nil, err
	}
	for _, mapping := range stored {
		c.backfill(ctx, mapping)
	}

	return append(mappings, stored...), nil
}

func (c *RedisMappingCache) backfill(ctx context.Context, mapping *entity.CategoryMapping) {
	if err := c.client.Set(ctx, mappingKeyPrefix+mapping.Description, mapping.Category, c.ttl).Err(); err != nil {
		slog.Warn("Failed to backfill Redis mapping cache",
			"description", mapping.Description,
			"error", err,
		)
	}
}
