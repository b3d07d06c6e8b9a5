package lectio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/lectio-cli/internal/models"
)

// CachedService decorates a Service with a Redis-backed cache for schedule
// responses, so repeated invocations within the TTL skip the slow upstream.
// Cache failures degrade to direct calls and are never fatal.
type CachedService struct {
	Service

	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedService wraps inner with a schedule-response cache.
func NewCachedService(inner Service, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedService{Service: inner, redis: client, ttl: ttl, logger: logger}
}

// Schedule serves the window from cache when possible and stores fresh
// responses on miss. Only schedule queries are cached; profile and room
// lookups pass through to the wrapped service.
func (c *CachedService) Schedule(ctx context.Context, entity Entity, win models.Window) ([]models.Module, error) {
	key := scheduleKey(entity, win)

	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var mods []models.Module
		if json.Unmarshal(data, &mods) == nil {
			return mods, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("schedule cache read failed", zap.Error(err))
	}

	mods, err := c.Service.Schedule(ctx, entity, win)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(mods); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("schedule cache write failed", zap.Error(err))
		}
	}
	return mods, nil
}

func scheduleKey(entity Entity, win models.Window) string {
	return fmt.Sprintf("lectio:schedule:%s:%s:%d:%d:%t",
		entity.Kind, entity.ID, win.Start.Unix(), win.End.Unix(), win.Truncate)
}
