package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"koreatrip/internal/models/response_models"
)

// Seoul city hall; fallback POIs were never geocoded.
var defaultCoordinates = response_models.Coordinates{Lat: 37.5665, Lng: 126.9780}

// GenerateFallback always returns the same two templated POIs. Only the id
// suffix depends on the random source.
func (p *PoiService) GenerateFallback(regionName, theme string) []response_models.POI {
	normalized := NormalizeRegionName(regionName)

	pois := []response_models.POI{
		{
			ID:            p.fallbackID(normalized, 1),
			Name:          normalized + " 대표 관광지",
			Address:       regionName + " 일대",
			Coordinates:   defaultCoordinates,
			Category:      "관광",
			Description:   fmt.Sprintf("%s의 아름다운 풍경을 감상할 수 있는 대표적인 관광지입니다.", regionName),
			EstimatedTime: "2-3시간",
			Tips:          []string{"사전 예약을 권장합니다", "편안한 신발을 착용하세요"},
			Rating:        4.3,
			Region:        regionName,
		},
		{
			ID:            p.fallbackID(normalized, 2),
			Name:          normalized + " 문화체험관",
			Address:       regionName + " 중심가",
			Coordinates:   defaultCoordinates,
			Category:      "문화",
			Description:   fmt.Sprintf("%s의 역사와 문화를 체험할 수 있는 특별한 공간입니다.", regionName),
			EstimatedTime: "1-2시간",
			Tips:          []string{"문화해설사 프로그램을 이용해보세요", "기념품을 구매할 수 있어요"},
			Rating:        4.1,
			Region:        regionName,
		},
	}

	p.log.Debug("fallback pois generated", zap.String("region", regionName), zap.String("theme", theme))
	return pois
}

func (p *PoiService) fallbackID(normalized string, n int) string {
	var suffix string
	if id, err := uuid.NewRandomFromReader(p.rng); err == nil {
		suffix = strings.SplitN(id.String(), "-", 2)[0]
	} else {
		suffix = p.randomID()
	}
	return fmt.Sprintf("fallback_%s_%d_%s", normalized, n, suffix)
}
