package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	ServerPort     string `mapstructure:"PORT"`
	ServiceName    string `mapstructure:"SERVICE_NAME"`
	ServiceVersion string `mapstructure:"SERVICE_VERSION"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogFormat      string `mapstructure:"LOG_FORMAT"`

	TmapAppKey     string        `mapstructure:"TMAP_APP_KEY"`
	TmapBaseURL    string        `mapstructure:"TMAP_BASE_URL"`
	PixabayAPIKey  string        `mapstructure:"PIXABAY_API_KEY"`
	PixabayBaseURL string        `mapstructure:"PIXABAY_BASE_URL"`
	HTTPTimeout    time.Duration `mapstructure:"HTTP_TIMEOUT"`
	GeocodeTTL     time.Duration `mapstructure:"GEOCODE_CACHE_TTL"`

	CourseCacheBackend       string        `mapstructure:"COURSE_CACHE_BACKEND"`
	CourseCacheTTL           time.Duration `mapstructure:"COURSE_CACHE_TTL"`
	CourseCacheSweepInterval time.Duration `mapstructure:"COURSE_CACHE_SWEEP_INTERVAL"`
	CourseCacheMaxEntries    int           `mapstructure:"COURSE_CACHE_MAX_ENTRIES"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	RedisPrefix   string `mapstructure:"REDIS_KEY_PREFIX"`

	JaegerEndpoint string `mapstructure:"JAEGER_ENDPOINT"`

	RandomSeed       int64  `mapstructure:"RANDOM_SEED"`
	ImageConcurrency int    `mapstructure:"IMAGE_CONCURRENCY"`
	BatchConcurrency int    `mapstructure:"BATCH_CONCURRENCY"`
	CORSAllowOrigins string `mapstructure:"CORS_ALLOW_ORIGINS"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SERVICE_NAME", "koreatrip")
	viper.SetDefault("SERVICE_VERSION", "0.1.0")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")

	viper.SetDefault("TMAP_APP_KEY", "")
	viper.SetDefault("TMAP_BASE_URL", "https://apis.openapi.sk.com/tmap")
	viper.SetDefault("PIXABAY_API_KEY", "")
	viper.SetDefault("PIXABAY_BASE_URL", "https://pixabay.com/api/")
	viper.SetDefault("HTTP_TIMEOUT", "15s")
	viper.SetDefault("GEOCODE_CACHE_TTL", "24h")

	viper.SetDefault("COURSE_CACHE_BACKEND", CacheBackendMemory)
	viper.SetDefault("COURSE_CACHE_TTL", "30m")
	viper.SetDefault("COURSE_CACHE_SWEEP_INTERVAL", "30m")
	viper.SetDefault("COURSE_CACHE_MAX_ENTRIES", 1000)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_KEY_PREFIX", "koreatrip:course:")

	viper.SetDefault("JAEGER_ENDPOINT", "")

	viper.SetDefault("RANDOM_SEED", 0)
	viper.SetDefault("IMAGE_CONCURRENCY", 8)
	viper.SetDefault("BATCH_CONCURRENCY", 4)
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// AllowedOrigins splits the comma-separated CORS_ALLOW_ORIGINS value.
func (c Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSAllowOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
