package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.ServerPort == "" {
		t.Fatalf("expected default server port")
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("expected 15s http timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.CourseCacheTTL != 30*time.Minute || cfg.CourseCacheSweepInterval != 30*time.Minute {
		t.Fatalf("expected 30m cache ttl and sweep, got %v / %v", cfg.CourseCacheTTL, cfg.CourseCacheSweepInterval)
	}
	if cfg.CourseCacheMaxEntries != 1000 {
		t.Fatalf("expected max entries 1000, got %d", cfg.CourseCacheMaxEntries)
	}
	if cfg.CourseCacheBackend != CacheBackendMemory {
		t.Fatalf("expected memory backend by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TMAP_APP_KEY", "tmap-key")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("COURSE_CACHE_BACKEND", "redis")
	t.Setenv("COURSE_CACHE_MAX_ENTRIES", "50")

	cfg := Load()
	if cfg.ServerPort != "9000" {
		t.Fatalf("expected override port")
	}
	if cfg.TmapAppKey != "tmap-key" {
		t.Fatalf("expected override tmap key")
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("expected override timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.CourseCacheBackend != CacheBackendRedis {
		t.Fatalf("expected override backend")
	}
	if cfg.CourseCacheMaxEntries != 50 {
		t.Fatalf("expected override max entries")
	}
}

func TestAllowedOrigins(t *testing.T) {
	cfg := Config{CORSAllowOrigins: "http://a.example, http://b.example,"}
	got := cfg.AllowedOrigins()
	if len(got) != 2 || got[1] != "http://b.example" {
		t.Fatalf("unexpected origins %v", got)
	}
	if o := (Config{}).AllowedOrigins(); len(o) != 1 || o[0] != "*" {
		t.Fatalf("expected wildcard default, got %v", o)
	}
}
