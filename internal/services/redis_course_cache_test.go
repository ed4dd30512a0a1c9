package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"koreatrip/internal/models/response_models"
)

func newRedisCache(t *testing.T) (CourseCache, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCourseCache(client, "test:course:", 30*time.Minute, nil, nil), s, client
}

func TestRedisCourseCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, s, _ := newRedisCache(t)

	course := &response_models.Course{
		ID:             "tmap_course_제주_1",
		Region:         "jeju",
		Theme:          []string{"자연"},
		GenerationInfo: &response_models.GenerationInfo{APIUsed: true},
	}
	cache.Put(ctx, "jeju|difficulty=easy|duration=2박 3일|theme=nature", course)

	got, ok := cache.Get(ctx, "jeju|difficulty=easy|duration=2박 3일|theme=nature")
	if !ok || got.ID != course.ID || !got.GenerationInfo.APIUsed {
		t.Fatalf("expected cached course back, got %+v", got)
	}
	if ttl := s.TTL("test:course:jeju|difficulty=easy|duration=2박 3일|theme=nature"); ttl != 30*time.Minute {
		t.Fatalf("expected 30m ttl, got %v", ttl)
	}

	s.FastForward(31 * time.Minute)
	if _, ok := cache.Get(ctx, "jeju|difficulty=easy|duration=2박 3일|theme=nature"); ok {
		t.Fatalf("entry should expire server-side")
	}
	if removed := cache.Sweep(ctx); removed != 0 {
		t.Fatalf("redis sweep is a no-op, got %d", removed)
	}
}

func TestRedisCourseCacheClearOnlyOwnPrefix(t *testing.T) {
	ctx := context.Background()
	cache, s, client := newRedisCache(t)

	cache.Put(ctx, "a", &response_models.Course{ID: "a"})
	cache.Put(ctx, "b", &response_models.Course{ID: "b"})
	if err := client.Set(ctx, "other:key", "x", 0).Err(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if n := cache.Len(ctx); n != 2 {
		t.Fatalf("expected 2 cached courses, got %d", n)
	}
	if removed := cache.Clear(ctx); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if !s.Exists("other:key") {
		t.Fatalf("keys outside the prefix must survive")
	}
}

func TestRedisCourseCacheDropsCorruptEntries(t *testing.T) {
	ctx := context.Background()
	cache, s, _ := newRedisCache(t)

	if err := s.Set("test:course:bad", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, ok := cache.Get(ctx, "bad"); ok {
		t.Fatalf("corrupt entry should read as a miss")
	}
	if s.Exists("test:course:bad") {
		t.Fatalf("corrupt entry should be deleted")
	}
}
