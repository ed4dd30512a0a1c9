package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"koreatrip/internal/api/controllers"
	"koreatrip/internal/config"
	"koreatrip/internal/repositories"
	"koreatrip/internal/services"
	"koreatrip/pkg/metrics"
	"koreatrip/pkg/utils"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repositories.NewRegionRepository()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	clock := utils.NewManualClock(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	rng := utils.NewRandomSource(21)

	// no app key: every lookup goes to the fallback generator
	tmap := services.NewTmapClient("", "http://127.0.0.1:0", time.Second, time.Hour, m)
	regionService := services.NewRegionService(repo)
	generation := services.NewCourseGenerationService(
		regionService,
		services.NewPoiService(tmap, rng, nil, m),
		services.NewCourseService(clock, rng),
		services.NewMemoryCourseCache(30*time.Minute, 100, clock, m),
		tmap,
		clock,
		zap.NewNop(),
		m,
		2,
	)
	images := services.NewImageService(tmap, nil, zap.NewNop(), m, 2)

	return NewRouter(config.Config{}, zap.NewNop(), m, reg,
		controllers.NewRegionsController(regionService),
		controllers.NewCoursesController(generation),
		controllers.NewImagesController(images),
	)
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return w, env
}

func TestHealthz(t *testing.T) {
	w, _ := do(t, newTestServer(t), http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestListRegions(t *testing.T) {
	r := newTestServer(t)

	w, env := do(t, r, http.MethodGet, "/regions?page=2&pageSize=10", nil)
	if w.Code != http.StatusOK || env.TraceID == "" {
		t.Fatalf("expected 200 with trace id, got %d", w.Code)
	}
	var page struct {
		Regions []json.RawMessage `json:"regions"`
		Total   int               `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if len(page.Regions) != 10 || page.Total != 244 {
		t.Fatalf("unexpected page: %d regions, total %d", len(page.Regions), page.Total)
	}

	if w, _ := do(t, r, http.MethodGet, "/regions?pageSize=500", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversize page, got %d", w.Code)
	}
}

func TestResolveAndGetRegion(t *testing.T) {
	r := newTestServer(t)

	_, env := do(t, r, http.MethodGet, "/regions/resolve?q=%EC%A0%9C%EC%A3%BC", nil)
	var res struct {
		IsSupported bool   `json:"is_supported"`
		RegionCode  string `json:"region_code"`
		Exact       bool   `json:"exact"`
	}
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.IsSupported || res.RegionCode != "jeju" || !res.Exact {
		t.Fatalf("unexpected resolution %+v", res)
	}

	if w, _ := do(t, r, http.MethodGet, "/regions/resolve", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("missing q should be rejected, got %d", w.Code)
	}
	if w, _ := do(t, r, http.MethodGet, "/regions/seoul_gangnam", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w, _ := do(t, r, http.MethodGet, "/regions/nowhere", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGenerateCourseEndpoint(t *testing.T) {
	r := newTestServer(t)

	w, env := do(t, r, http.MethodPost, "/courses/generate", gin.H{"region": "busan"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var first struct {
		FromCache bool `json:"from_cache"`
		Course    struct {
			ID     string `json:"id"`
			Region string `json:"region"`
		} `json:"course"`
	}
	if err := json.Unmarshal(env.Data, &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first.FromCache || first.Course.Region != "busan" {
		t.Fatalf("unexpected first result %+v", first)
	}

	_, env = do(t, r, http.MethodPost, "/courses/generate", gin.H{"region": "busan", "theme": "all"})
	var second struct {
		FromCache bool `json:"from_cache"`
		Course    struct {
			ID string `json:"id"`
		} `json:"course"`
	}
	if err := json.Unmarshal(env.Data, &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !second.FromCache || second.Course.ID != first.Course.ID {
		t.Fatalf("second request should come from cache")
	}

	_, env = do(t, r, http.MethodGet, "/courses/stats", nil)
	var stats struct {
		CachedCourses int    `json:"cached_courses"`
		CacheStatus   string `json:"cache_status"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.CachedCourses != 1 || stats.CacheStatus != "active" {
		t.Fatalf("unexpected stats %+v", stats)
	}

	if w, _ := do(t, r, http.MethodPost, "/courses/cache/sweep", nil); w.Code != http.StatusOK {
		t.Fatalf("sweep should succeed, got %d", w.Code)
	}
	_, env = do(t, r, http.MethodDelete, "/courses/cache", nil)
	var cleared struct {
		Removed int `json:"removed"`
	}
	if err := json.Unmarshal(env.Data, &cleared); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cleared.Removed != 1 {
		t.Fatalf("expected 1 removed, got %d", cleared.Removed)
	}
}

func TestGenerateCourseUnsupported(t *testing.T) {
	w, env := do(t, newTestServer(t), http.MethodPost, "/courses/generate", gin.H{"region": "atlantis"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var data struct {
		Error       string            `json:"error"`
		Suggestions []json.RawMessage `json:"suggestions"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Error != utils.UnsupportedRegionCode || len(data.Suggestions) != 5 {
		t.Fatalf("unexpected error payload %+v", data)
	}
}

func TestGenerateCourseValidation(t *testing.T) {
	r := newTestServer(t)
	if w, _ := do(t, r, http.MethodPost, "/courses/generate", gin.H{"theme": "nature"}); w.Code != http.StatusBadRequest {
		t.Fatalf("missing region should be rejected, got %d", w.Code)
	}
	if w, _ := do(t, r, http.MethodPost, "/courses/batch", gin.H{"regions": []string{}}); w.Code != http.StatusBadRequest {
		t.Fatalf("empty batch should be rejected, got %d", w.Code)
	}
}

func TestBatchEndpoint(t *testing.T) {
	_, env := do(t, newTestServer(t), http.MethodPost, "/courses/batch",
		gin.H{"regions": []string{"seoul", "atlantis", "jeju"}})
	var courses []struct {
		Region string `json:"region"`
	}
	if err := json.Unmarshal(env.Data, &courses); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(courses) != 2 || courses[0].Region != "seoul" || courses[1].Region != "jeju" {
		t.Fatalf("unexpected batch %+v", courses)
	}
}

func TestImagesAndTmapStatus(t *testing.T) {
	r := newTestServer(t)

	_, env := do(t, r, http.MethodPost, "/images/resolve", gin.H{"regions": []string{"제주", "가평군"}})
	var images map[string]string
	if err := json.Unmarshal(env.Data, &images); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if images["제주"] == "" || images["가평군"] == "" {
		t.Fatalf("every region needs an image, got %v", images)
	}

	_, env = do(t, r, http.MethodGet, "/tmap/status", nil)
	var status struct {
		Configured bool `json:"configured"`
		Available  bool `json:"available"`
	}
	if err := json.Unmarshal(env.Data, &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Configured || status.Available {
		t.Fatalf("client without key should report unconfigured")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestServer(t)
	do(t, r, http.MethodGet, "/regions", nil)

	w, _ := do(t, r, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Fatalf("metrics should expose request counters")
	}
}
