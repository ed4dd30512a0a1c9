package metrics

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds every metric the pipeline records.
type Collector struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Course cache
	CourseCacheHits      prometheus.Counter
	CourseCacheMisses    prometheus.Counter
	CourseCacheEvictions *prometheus.CounterVec
	CourseCacheEntries   prometheus.Gauge

	// Generation
	CoursesGeneratedTotal *prometheus.CounterVec
	GenerationDuration    prometheus.Histogram
	FallbackPOIsTotal     prometheus.Counter

	// Upstream APIs
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	// Images
	ImageResolutionsTotal *prometheus.CounterVec
}

// New registers the collector on reg. Tests pass prometheus.NewRegistry()
// to avoid duplicate registration on the default registry.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		CourseCacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "course_cache_hits_total",
				Help: "Course lookups served from the cache",
			},
		),
		CourseCacheMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "course_cache_misses_total",
				Help: "Course lookups that required generation",
			},
		),
		CourseCacheEvictions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "course_cache_evictions_total",
				Help: "Course cache entries removed, by reason",
			},
			[]string{"reason"},
		),
		CourseCacheEntries: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "course_cache_entries",
				Help: "Entries currently held by the course cache",
			},
		),

		CoursesGeneratedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "courses_generated_total",
				Help: "Courses generated, by POI source",
			},
			[]string{"source"},
		),
		GenerationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "course_generation_duration_seconds",
				Help:    "Time spent generating a course on a cache miss",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
		FallbackPOIsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fallback_poi_generations_total",
				Help: "Times the synthetic POI generator replaced the map API",
			},
		),

		UpstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Requests to external APIs",
			},
			[]string{"api", "operation", "status"},
		),
		UpstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "External API request duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
			},
			[]string{"api", "operation"},
		),

		ImageResolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "image_resolutions_total",
				Help: "Region images resolved, by tier",
			},
			[]string{"tier"},
		),
	}
}

// NewNop returns a collector bound to a throwaway registry.
func NewNop() *Collector {
	return New(prometheus.NewRegistry())
}

func (c *Collector) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	c.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	c.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (c *Collector) RecordUpstream(api, operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.UpstreamRequestsTotal.WithLabelValues(api, operation, status).Inc()
	c.UpstreamRequestDuration.WithLabelValues(api, operation).Observe(duration.Seconds())
}

// Middleware records request counts and latency per route template.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		c.HTTPRequestsInFlight.Inc()
		defer c.HTTPRequestsInFlight.Dec()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		c.RecordHTTPRequest(
			ctx.Request.Method,
			path,
			fmt.Sprintf("%d", ctx.Writer.Status()),
			time.Since(start),
		)
	}
}
