package services

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"koreatrip/internal/models/request_models"
	"koreatrip/internal/models/response_models"
	"koreatrip/internal/repositories"
	"koreatrip/pkg/metrics"
	"koreatrip/pkg/utils"
)

const (
	smallRegionDuration = "1박 2일"
	majorCityDuration   = "3박 4일"

	supportLevelFull  = "full"
	supportLevelBasic = "basic"

	accuracyExact   = "exact"
	accuracySimilar = "similar"

	apiStatusProbeAddress = "서울특별시"
)

var smallRegions = map[string]bool{
	"가평": true, "양평": true, "단양": true, "영월": true, "정선": true, "화천": true, "인제": true,
	"태백": true, "삼척": true, "영덕": true, "울진": true, "봉화": true, "진안": true, "무주": true,
}

var majorCities = map[string]bool{
	"서울": true, "부산": true, "대구": true, "인천": true, "광주": true, "대전": true, "울산": true,
	"수원": true, "고양": true, "용인": true, "성남": true, "창원": true, "전주": true, "천안": true,
}

type CourseGenerationServiceInterface interface {
	GenerateRegionCourse(ctx context.Context, identifier string, opts request_models.CourseOptions) (*response_models.GenerationResult, error)
	GenerateMultipleCourses(ctx context.Context, identifiers []string, opts request_models.CourseOptions) []*response_models.Course
	GetGenerationStats(ctx context.Context) response_models.GenerationStats
	ClearExpiredCache(ctx context.Context) int
	ClearAllCache(ctx context.Context) int
	APIStatus(ctx context.Context) response_models.TmapStatus
}

type CourseGenerationService struct {
	regions          RegionServiceInterface
	pois             POIServiceInterface
	courses          CourseServiceInterface
	cache            CourseCache
	tmap             TmapService
	clock            utils.Clock
	log              *zap.Logger
	metrics          *metrics.Collector
	batchConcurrency int
}

func NewCourseGenerationService(
	regions RegionServiceInterface,
	pois POIServiceInterface,
	courses CourseServiceInterface,
	cache CourseCache,
	tmap TmapService,
	clock utils.Clock,
	log *zap.Logger,
	m *metrics.Collector,
	batchConcurrency int,
) CourseGenerationServiceInterface {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewNop()
	}
	if batchConcurrency < 1 {
		batchConcurrency = 1
	}
	return &CourseGenerationService{
		regions:          regions,
		pois:             pois,
		courses:          courses,
		cache:            cache,
		tmap:             tmap,
		clock:            clock,
		log:              log,
		metrics:          m,
		batchConcurrency: batchConcurrency,
	}
}

func (s *CourseGenerationService) GenerateRegionCourse(ctx context.Context, identifier string, opts request_models.CourseOptions) (*response_models.GenerationResult, error) {
	ctx, span := tracer.Start(ctx, "course.generate")
	defer span.End()
	span.SetAttributes(attribute.String("identifier", identifier))

	resolution := s.regions.Resolve(identifier)
	if !resolution.IsSupported {
		span.SetStatus(codes.Error, "unsupported region")
		return nil, utils.NewUnsupportedRegionError(identifier, resolution.Suggestions)
	}
	span.SetAttributes(attribute.String("region_code", resolution.RegionCode), attribute.Bool("exact", resolution.Exact))

	opts = WithDefaults(s.enhanceOptions(resolution.RegionCode, resolution.RegionName, opts))
	key := CacheKey(resolution.RegionCode, opts)

	if cached, ok := s.cache.Get(ctx, key); ok {
		s.metrics.CourseCacheHits.Inc()
		span.SetAttributes(attribute.Bool("from_cache", true))
		apiUsed := cached.GenerationInfo != nil && cached.GenerationInfo.APIUsed
		return &response_models.GenerationResult{
			Course:     cached,
			FromCache:  true,
			APIUsed:    apiUsed,
			RegionInfo: resolution,
		}, nil
	}
	s.metrics.CourseCacheMisses.Inc()

	start := time.Now()
	pois, apiUsed := s.pois.SearchRegionPOIs(ctx, resolution.RegionName, opts.Theme)
	for i := range pois {
		pois[i].RegionCode = resolution.RegionCode
	}

	course, err := s.courses.Synthesize(resolution.RegionCode, resolution.RegionName, pois, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "synthesis failed")
		s.log.Error("Course generation failed",
			zap.String("region", resolution.RegionCode), zap.Error(err))
		return nil, utils.NewGenerationFailedError(resolution.RegionName, err)
	}

	s.enrich(course, resolution, apiUsed)
	s.cache.Put(ctx, key, course)

	source := "fallback"
	if apiUsed {
		source = "tmap"
	}
	s.metrics.CoursesGeneratedTotal.WithLabelValues(source).Inc()
	s.metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.Bool("from_cache", false), attribute.Bool("api_used", apiUsed))

	s.log.Info("Generated course",
		zap.String("region", resolution.RegionCode),
		zap.String("course_id", course.ID),
		zap.Bool("api_used", apiUsed),
		zap.Int("pois", len(pois)))

	return &response_models.GenerationResult{
		Course:     course,
		FromCache:  false,
		APIUsed:    apiUsed,
		RegionInfo: resolution,
	}, nil
}

// GenerateMultipleCourses keeps input order and silently drops regions that fail.
func (s *CourseGenerationService) GenerateMultipleCourses(ctx context.Context, identifiers []string, opts request_models.CourseOptions) []*response_models.Course {
	results := make([]*response_models.Course, len(identifiers))

	var g errgroup.Group
	g.SetLimit(s.batchConcurrency)
	for i, identifier := range identifiers {
		i, identifier := i, identifier
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					s.log.Error("Recovered from panic in batch generation",
						zap.String("identifier", identifier), zap.Any("panic", r))
				}
			}()
			res, err := s.GenerateRegionCourse(ctx, identifier, opts)
			if err != nil {
				s.log.Warn("Skipping region in batch", zap.String("identifier", identifier), zap.Error(err))
				return nil
			}
			results[i] = res.Course
			return nil
		})
	}
	_ = g.Wait()

	courses := make([]*response_models.Course, 0, len(results))
	for _, c := range results {
		if c != nil {
			courses = append(courses, c)
		}
	}
	return courses
}

func (s *CourseGenerationService) GetGenerationStats(ctx context.Context) response_models.GenerationStats {
	total := s.regions.TotalRegions()
	cached := s.cache.Len(ctx)

	rate := "0%"
	if total > 0 && cached > 0 {
		rate = fmt.Sprintf("%.1f%%", float64(cached)/float64(total)*100)
	}
	status := "empty"
	if cached > 0 {
		status = "active"
	}

	return response_models.GenerationStats{
		TotalSupportedRegions: total,
		CachedCourses:         cached,
		CacheHitRate:          rate,
		CacheStatus:           status,
	}
}

func (s *CourseGenerationService) ClearExpiredCache(ctx context.Context) int {
	removed := s.cache.Sweep(ctx)
	s.log.Info("Cleared expired courses", zap.Int("removed", removed))
	return removed
}

func (s *CourseGenerationService) ClearAllCache(ctx context.Context) int {
	removed := s.cache.Clear(ctx)
	s.log.Info("Cleared course cache", zap.Int("removed", removed))
	return removed
}

// APIStatus probes Tmap with a known address.
func (s *CourseGenerationService) APIStatus(ctx context.Context) response_models.TmapStatus {
	status := response_models.TmapStatus{
		CheckedAt: utils.FormatRFC3339KST(s.clock.Now()),
	}
	if s.tmap == nil || !s.tmap.Enabled() {
		return status
	}
	status.Configured = true

	if _, err := s.tmap.Geocode(ctx, apiStatusProbeAddress); err != nil {
		s.log.Warn("Tmap status probe failed", zap.Error(err))
		return status
	}
	status.Available = true
	return status
}

// enhanceOptions fills the theme from the region's tourism profile and picks
// a duration by region size. It runs before defaults are applied.
func (s *CourseGenerationService) enhanceOptions(regionCode, regionName string, opts request_models.CourseOptions) request_models.CourseOptions {
	out := opts
	if out.Theme == "" || out.Theme == repositories.ThemeAll {
		if info, ok := s.regions.TourismInfo(regionCode); ok && len(info.Themes) > 0 {
			out.Theme = info.Themes[0]
		}
	}
	if out.Duration == "" {
		switch {
		case regionNameIn(regionName, smallRegions):
			out.Duration = smallRegionDuration
		case regionNameIn(regionName, majorCities):
			out.Duration = majorCityDuration
		}
	}
	return out
}

func regionNameIn(regionName string, set map[string]bool) bool {
	normalized := NormalizeRegionName(regionName)
	return set[normalized] || set[stripAdminSuffix(normalized)]
}

func (s *CourseGenerationService) enrich(course *response_models.Course, resolution response_models.ResolutionResult, apiUsed bool) {
	supportLevel := supportLevelBasic
	if resolution.Exact {
		supportLevel = supportLevelFull
	}
	course.GenerationInfo = &response_models.GenerationInfo{
		DynamicallyGenerated: true,
		RegionCode:           resolution.RegionCode,
		ExactMatch:           resolution.Exact,
		APIUsed:              apiUsed,
		GeneratedAt:          utils.FormatRFC3339KST(s.clock.Now()),
		SupportLevel:         supportLevel,
	}

	course.RegionAccuracy = accuracySimilar
	if resolution.Exact {
		course.RegionAccuracy = accuracyExact
	}

	switch {
	case resolution.Exact && apiUsed:
		course.RecommendationReason = fmt.Sprintf("%s 지역의 실제 관광지 정보를 바탕으로 생성된 맞춤형 여행 코스입니다.", resolution.RegionName)
	case resolution.Exact:
		course.RecommendationReason = fmt.Sprintf("%s 지역의 특색을 반영하여 전문적으로 기획된 여행 코스입니다.", resolution.RegionName)
	default:
		course.RecommendationReason = fmt.Sprintf("%s 지역과 유사한 특성을 가진 지역들의 정보를 종합하여 생성된 여행 코스입니다.", resolution.RegionName)
	}
}
