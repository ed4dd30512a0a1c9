package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"koreatrip/internal/models/response_models"
	mem "koreatrip/pkg/memcache"
	"koreatrip/pkg/metrics"
	"koreatrip/pkg/utils"
)

// CourseCache stores generated courses under their canonical key.
type CourseCache interface {
	Get(ctx context.Context, key string) (*response_models.Course, bool)
	Put(ctx context.Context, key string, course *response_models.Course)
	// Sweep drops expired entries and returns how many were removed.
	Sweep(ctx context.Context) int
	Clear(ctx context.Context) int
	Len(ctx context.Context) int
}

type memoryCourseCache struct {
	store   *mem.TTLStore[*response_models.Course]
	metrics *metrics.Collector
}

func NewMemoryCourseCache(ttl time.Duration, maxEntries int, clock utils.Clock, m *metrics.Collector) CourseCache {
	if m == nil {
		m = metrics.NewNop()
	}
	store := mem.NewTTLStore[*response_models.Course](ttl, maxEntries, clock)
	store.OnEvict(func(string) {
		m.CourseCacheEvictions.WithLabelValues("evicted").Inc()
	})
	return &memoryCourseCache{store: store, metrics: m}
}

func (c *memoryCourseCache) Get(ctx context.Context, key string) (*response_models.Course, bool) {
	course, ok := c.store.Get(key)
	c.metrics.CourseCacheEntries.Set(float64(c.store.Len()))
	return course, ok
}

func (c *memoryCourseCache) Put(ctx context.Context, key string, course *response_models.Course) {
	c.store.Set(key, course)
	c.metrics.CourseCacheEntries.Set(float64(c.store.Len()))
}

func (c *memoryCourseCache) Sweep(ctx context.Context) int {
	removed := c.store.Sweep()
	c.metrics.CourseCacheEntries.Set(float64(c.store.Len()))
	return removed
}

func (c *memoryCourseCache) Clear(ctx context.Context) int {
	removed := c.store.Clear()
	c.metrics.CourseCacheEvictions.WithLabelValues("cleared").Add(float64(removed))
	c.metrics.CourseCacheEntries.Set(0)
	return removed
}

func (c *memoryCourseCache) Len(ctx context.Context) int {
	return c.store.Len()
}

// NewCourseCacheSweeper sweeps cache on every tick and logs non-empty sweeps.
func NewCourseCacheSweeper(cache CourseCache, interval time.Duration, log *zap.Logger) *mem.Sweeper {
	if log == nil {
		log = zap.NewNop()
	}
	return mem.NewSweeper(interval,
		func() int { return cache.Sweep(context.Background()) },
		func(removed int) {
			if removed > 0 {
				log.Info("Swept expired courses", zap.Int("removed", removed))
			}
		},
	)
}
