package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"koreatrip/internal/models/response_models"
	"koreatrip/internal/repositories"
	"koreatrip/pkg/metrics"
	"koreatrip/pkg/utils"
)

const poiSearchRadiusMeters = 15000

var themeKeywords = map[string][]string{
	repositories.ThemeNature:   {"자연", "산", "바다", "공원", "숲"},
	repositories.ThemeCulture:  {"문화", "박물관", "전시관", "예술", "공연"},
	repositories.ThemeHistory:  {"역사", "유적", "전통", "고궁", "사찰"},
	repositories.ThemeFood:     {"맛집", "전통음식", "카페", "시장"},
	repositories.ThemeActivity: {"체험", "액티비티", "놀이", "스포츠"},
}

// Checked in order; the first keyword contained in the category wins.
var visitTimeTable = []struct {
	keyword string
	time    string
}{
	{"박물관", "1-2시간"},
	{"공원", "2-3시간"},
	{"사찰", "1시간"},
	{"맛집", "1시간"},
	{"카페", "30분"},
	{"전시관", "1-2시간"},
	{"체험", "2-3시간"},
}

const defaultVisitTime = "1-2시간"

var basePOITips = []string{
	"미리 운영시간을 확인하고 방문하세요",
	"대중교통 이용 시 길찾기 앱을 활용하세요",
	"사진 촬영 시 다른 방문객을 배려해주세요",
}

type POIServiceInterface interface {
	Acquire(ctx context.Context, regionName, theme string) []response_models.POI
	GenerateFallback(regionName, theme string) []response_models.POI
	SearchRegionPOIs(ctx context.Context, regionName, theme string) ([]response_models.POI, bool)
}

type PoiService struct {
	tmap    TmapService
	rng     utils.RandomSource
	log     *zap.Logger
	metrics *metrics.Collector
}

func NewPoiService(tmap TmapService, rng utils.RandomSource, log *zap.Logger, m *metrics.Collector) POIServiceInterface {
	if log == nil {
		log = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return &PoiService{tmap: tmap, rng: rng, log: log, metrics: m}
}

// Acquire never fails: any upstream problem yields an empty slice.
func (p *PoiService) Acquire(ctx context.Context, regionName, theme string) []response_models.POI {
	ctx, span := tracer.Start(ctx, "poi.acquire")
	defer span.End()
	span.SetAttributes(attribute.String("region", regionName), attribute.String("theme", theme))

	if p.tmap == nil || !p.tmap.Enabled() {
		return []response_models.POI{}
	}

	coords, err := p.tmap.Geocode(ctx, regionName)
	if err != nil {
		p.log.Warn("geocoding failed", zap.String("region", regionName), zap.Error(err))
		return []response_models.POI{}
	}

	attractions, err := p.tmap.SearchAround(ctx, coords.Lat, coords.Lng, poiSearchRadiusMeters)
	if err != nil {
		p.log.Warn("around search failed", zap.String("region", regionName), zap.Error(err))
		return []response_models.POI{}
	}

	filtered := filterByTheme(attractions, theme)
	pois := make([]response_models.POI, 0, len(filtered))
	for _, a := range filtered {
		pois = append(pois, p.normalize(a, regionName))
	}

	p.log.Debug("poi search finished",
		zap.String("region", regionName),
		zap.String("theme", theme),
		zap.Int("total", len(attractions)),
		zap.Int("categorized", len(pois)))
	span.SetAttributes(attribute.Int("poi.count", len(pois)))
	return pois
}

// SearchRegionPOIs reports whether the POIs came from the map API rather
// than the synthetic generator.
func (p *PoiService) SearchRegionPOIs(ctx context.Context, regionName, theme string) ([]response_models.POI, bool) {
	pois := p.Acquire(ctx, regionName, theme)
	if len(pois) > 0 {
		return pois, true
	}

	p.metrics.FallbackPOIsTotal.Inc()
	return p.GenerateFallback(regionName, theme), false
}

func filterByTheme(pois []TmapPOI, theme string) []TmapPOI {
	if theme == "" || theme == repositories.ThemeAll {
		return pois
	}

	keywords := themeKeywords[theme]
	out := make([]TmapPOI, 0, len(pois))
	for _, poi := range pois {
		searchText := strings.ToLower(poi.Name + " " + poi.Category + " " + poi.MiddleCategory)
		for _, kw := range keywords {
			if strings.Contains(searchText, strings.ToLower(kw)) {
				out = append(out, poi)
				break
			}
		}
	}
	return out
}

func (p *PoiService) normalize(a TmapPOI, regionName string) response_models.POI {
	id := a.ID
	if id == "" {
		id = p.randomID()
	}

	name := a.Name
	if name == "" {
		name = "관광지"
	}

	category := a.CategoryLabel()
	if category == "" {
		category = "관광"
	}

	return response_models.POI{
		ID:            "tmap_poi_" + id,
		Name:          name,
		Address:       a.Address,
		Coordinates:   response_models.Coordinates{Lat: a.Lat, Lng: a.Lng},
		Category:      category,
		Description:   p.describe(a, name, regionName),
		EstimatedTime: estimateVisitTime(a.CategoryLabel()),
		Tips:          poiTips(a.MiddleCategory),
		Rating:        p.rating(),
		Region:        regionName,
	}
}

func (p *PoiService) describe(a TmapPOI, name, regionName string) string {
	category := a.CategoryLabel()
	if category == "" {
		category = "관광지"
	}
	templates := []string{
		fmt.Sprintf("%s의 대표적인 %s로, 많은 방문객들이 찾는 인기 장소입니다.", regionName, category),
		fmt.Sprintf("%s은(는) %s 지역의 특색을 잘 보여주는 %s입니다.", name, regionName, category),
		fmt.Sprintf("%s 여행 시 꼭 방문해야 할 %s 중 하나입니다.", regionName, category),
	}
	return templates[p.rng.Intn(len(templates))]
}

func estimateVisitTime(category string) string {
	for _, row := range visitTimeTable {
		if strings.Contains(category, row.keyword) {
			return row.time
		}
	}
	return defaultVisitTime
}

// poiTips puts the category-specific tip ahead of the generic ones so it
// survives the two-tip cap.
func poiTips(middleCategory string) []string {
	tips := make([]string, 0, 2)
	switch {
	case strings.Contains(middleCategory, "박물관") || strings.Contains(middleCategory, "전시"):
		tips = append(tips, "전시 해설 프로그램이 있는지 확인해보세요")
	case strings.Contains(middleCategory, "맛집") || strings.Contains(middleCategory, "음식"):
		tips = append(tips, "점심시간에는 대기가 있을 수 있어요")
	}
	for _, t := range basePOITips {
		if len(tips) == 2 {
			break
		}
		tips = append(tips, t)
	}
	return tips
}

// rating lands in [3.5, 4.8] with one decimal.
func (p *PoiService) rating() float64 {
	return math.Round((p.rng.Float64()*1.3+3.5)*10) / 10
}

func (p *PoiService) randomID() string {
	return strconv.FormatInt(int64(p.rng.Intn(math.MaxInt32)), 36)
}
