package services

import (
	"context"
	"strings"

	"koreatrip/internal/models/response_models"
	"koreatrip/internal/repositories"
	"koreatrip/pkg/utils"
)

const maxSuggestions = 5

var popularRegionSuggestions = []response_models.RegionSuggestion{
	{Code: "jeju", Name: "제주", FullName: "제주 제주시"},
	{Code: "busan", Name: "부산", FullName: "부산광역시"},
	{Code: "seoul", Name: "서울", FullName: "서울특별시"},
	{Code: "gyeongju", Name: "경주", FullName: "경북 경주시"},
	{Code: "jeonju", Name: "전주", FullName: "전북 전주시"},
}

// Long and colloquial province names mapped to the short form used by the
// seasonal and image tables.
var regionNameMappings = map[string]string{
	"서울특별시":   "서울",
	"서울시":     "서울",
	"부산광역시":   "부산",
	"부산시":     "부산",
	"대구광역시":   "대구",
	"대구시":     "대구",
	"인천광역시":   "인천",
	"인천시":     "인천",
	"광주광역시":   "광주",
	"광주시":     "광주",
	"대전광역시":   "대전",
	"대전시":     "대전",
	"울산광역시":   "울산",
	"울산시":     "울산",
	"세종특별자치시": "세종",
	"세종시":     "세종",
	"경기도":     "경기",
	"강원특별자치도": "강원",
	"강원도":     "강원",
	"충청북도":    "충북",
	"충청남도":    "충남",
	"전라북도":    "전북",
	"전라남도":    "전남",
	"경상북도":    "경북",
	"경상남도":    "경남",
	"제주특별자치도": "제주",
	"제주도":     "제주",
}

type RegionServiceInterface interface {
	Resolve(identifier string) response_models.ResolutionResult
	ListRegions(ctx context.Context, page int, pageSize int) (response_models.RegionPage, error)
	GetRegion(code string) (response_models.Region, error)
	TourismInfo(code string) (response_models.TourismInfo, bool)
	TotalRegions() int
}

type RegionService struct {
	regionRepository repositories.RegionRepository
}

func NewRegionService(regionRepository repositories.RegionRepository) RegionServiceInterface {
	return &RegionService{
		regionRepository: regionRepository,
	}
}

// Resolve tries exact equality on code, name, short name and full name, then
// substring matching in catalog order. It never touches the network.
func (s *RegionService) Resolve(identifier string) response_models.ResolutionResult {
	if strings.TrimSpace(identifier) == "" {
		return unsupportedResult()
	}

	regions := s.regionRepository.All()

	for _, r := range regions {
		if r.Code == identifier || r.Name == identifier || r.FullName == identifier ||
			(r.ShortName != "" && r.ShortName == identifier) {
			return response_models.ResolutionResult{
				IsSupported: true,
				RegionCode:  r.Code,
				RegionName:  r.DisplayName(),
				Exact:       true,
				Suggestions: []response_models.RegionSuggestion{},
			}
		}
	}

	suggestions := make([]response_models.RegionSuggestion, 0, maxSuggestions)
	var first *response_models.Region
	for i := range regions {
		if !fuzzyMatch(regions[i], identifier) {
			continue
		}
		if first == nil {
			first = &regions[i]
		}
		suggestions = append(suggestions, response_models.RegionSuggestion{
			Code:     regions[i].Code,
			Name:     regions[i].DisplayName(),
			FullName: regions[i].FullName,
		})
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	if first == nil {
		return unsupportedResult()
	}

	return response_models.ResolutionResult{
		IsSupported: true,
		RegionCode:  first.Code,
		RegionName:  first.DisplayName(),
		Exact:       false,
		Suggestions: suggestions,
	}
}

func (s *RegionService) ListRegions(ctx context.Context, page int, pageSize int) (response_models.RegionPage, error) {
	if page < 1 {
		return response_models.RegionPage{}, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return response_models.RegionPage{}, utils.ErrInvalidPageSize
	}

	regions, err := s.regionRepository.GetListOfRegions(ctx, page, pageSize)
	if err != nil {
		return response_models.RegionPage{}, err
	}

	return response_models.RegionPage{
		Regions:  regions,
		Page:     page,
		PageSize: pageSize,
		Total:    s.regionRepository.Count(),
	}, nil
}

func (s *RegionService) GetRegion(code string) (response_models.Region, error) {
	r, ok := s.regionRepository.GetByCode(code)
	if !ok {
		return response_models.Region{}, utils.ErrRegionNotFound
	}
	return r, nil
}

func (s *RegionService) TourismInfo(code string) (response_models.TourismInfo, bool) {
	return s.regionRepository.TourismInfo(code)
}

func (s *RegionService) TotalRegions() int {
	return s.regionRepository.Count()
}

// NormalizeRegionName trims the input and maps long province names to their short form.
func NormalizeRegionName(name string) string {
	normalized := strings.TrimSpace(name)
	if short, ok := regionNameMappings[normalized]; ok {
		return short
	}
	return normalized
}

// stripAdminSuffix turns "경주시" into "경주". Two-rune names such as "중구" are kept.
func stripAdminSuffix(name string) string {
	runes := []rune(name)
	if len(runes) <= 2 {
		return name
	}
	switch runes[len(runes)-1] {
	case '시', '군', '구':
		return string(runes[:len(runes)-1])
	}
	return name
}

// Empty short names never match; otherwise every district would contain "".
func fuzzyMatch(r response_models.Region, identifier string) bool {
	if strings.Contains(r.Name, identifier) || strings.Contains(identifier, r.Name) {
		return true
	}
	if r.ShortName == "" {
		return false
	}
	return strings.Contains(r.ShortName, identifier) || strings.Contains(identifier, r.ShortName)
}

func unsupportedResult() response_models.ResolutionResult {
	suggestions := make([]response_models.RegionSuggestion, len(popularRegionSuggestions))
	copy(suggestions, popularRegionSuggestions)
	return response_models.ResolutionResult{
		IsSupported: false,
		Exact:       false,
		Suggestions: suggestions,
	}
}
