package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"koreatrip/internal/models/response_models"
	"koreatrip/pkg/metrics"
)

const redisScanBatch = 200

// redisCourseCache keeps courses as JSON strings; Redis expires them itself,
// so Sweep has nothing to do.
type redisCourseCache struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	log     *zap.Logger
	metrics *metrics.Collector
}

func NewRedisCourseCache(client *redis.Client, prefix string, ttl time.Duration, log *zap.Logger, m *metrics.Collector) CourseCache {
	if log == nil {
		log = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return &redisCourseCache{client: client, prefix: prefix, ttl: ttl, log: log, metrics: m}
}

func (c *redisCourseCache) Get(ctx context.Context, key string) (*response_models.Course, bool) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("redis course lookup failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var course response_models.Course
	if err := json.Unmarshal(raw, &course); err != nil {
		c.log.Warn("dropping undecodable cached course", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, c.prefix+key)
		return nil, false
	}
	return &course, true
}

func (c *redisCourseCache) Put(ctx context.Context, key string, course *response_models.Course) {
	raw, err := json.Marshal(course)
	if err != nil {
		c.log.Warn("failed to marshal course", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("failed to cache course", zap.String("key", key), zap.Error(err))
	}
}

func (c *redisCourseCache) Sweep(ctx context.Context) int {
	return 0
}

func (c *redisCourseCache) Clear(ctx context.Context) int {
	keys, err := c.keys(ctx)
	if err != nil {
		c.log.Warn("failed to list cached courses", zap.Error(err))
		return 0
	}
	if len(keys) == 0 {
		return 0
	}

	removed, err := c.client.Del(ctx, keys...).Result()
	if err != nil {
		c.log.Warn("failed to clear cached courses", zap.Error(err))
		return 0
	}
	c.metrics.CourseCacheEvictions.WithLabelValues("cleared").Add(float64(removed))
	return int(removed)
}

func (c *redisCourseCache) Len(ctx context.Context) int {
	keys, err := c.keys(ctx)
	if err != nil {
		c.log.Warn("failed to count cached courses", zap.Error(err))
		return 0
	}
	return len(keys)
}

func (c *redisCourseCache) keys(ctx context.Context) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", redisScanBatch).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}
