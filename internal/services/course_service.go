package services

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"unicode"

	"koreatrip/internal/models/request_models"
	"koreatrip/internal/models/response_models"
	"koreatrip/internal/repositories"
	"koreatrip/pkg/utils"
)

const (
	poisPerDay        = 3
	defaultDays       = 2
	defaultRating     = 4.2
	maxCourseImages   = 6
	maxPOIImages      = 3
	courseSource      = "tmap_generated"
	generalThemeLabel = "관광"
)

var themeDisplayNames = map[string]string{
	repositories.ThemeNature:   "자연",
	repositories.ThemeCulture:  "문화",
	repositories.ThemeHistory:  "역사",
	repositories.ThemeFood:     "맛집",
	repositories.ThemeActivity: "액티비티",
	repositories.ThemeAll:      generalThemeLabel,
}

var seasonalMonths = map[string][]int{
	"제주": {3, 4, 5, 9, 10, 11},
	"강원": {6, 7, 8, 12, 1, 2},
	"부산": {4, 5, 6, 9, 10, 11},
	"경주": {3, 4, 5, 9, 10, 11},
}

var defaultBestMonths = []int{3, 4, 5, 9, 10, 11}

type CourseServiceInterface interface {
	Synthesize(regionCode, regionName string, pois []response_models.POI, opts request_models.CourseOptions) (*response_models.Course, error)
}

type CourseService struct {
	clock utils.Clock
	rng   utils.RandomSource
}

func NewCourseService(clock utils.Clock, rng utils.RandomSource) CourseServiceInterface {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &CourseService{clock: clock, rng: rng}
}

func (s *CourseService) Synthesize(regionCode, regionName string, pois []response_models.POI, opts request_models.CourseOptions) (*response_models.Course, error) {
	if len(pois) == 0 {
		return nil, fmt.Errorf("%s: %w", regionName, utils.ErrNoPOIs)
	}

	opts = WithDefaults(opts)
	themeName := ThemeDisplayName(opts.Theme)

	images := courseImages(regionName, pois)

	return &response_models.Course{
		ID:          fmt.Sprintf("tmap_course_%s_%d", regionName, s.clock.Now().UnixMilli()),
		Title:       fmt.Sprintf("%s %s 여행", regionName, themeName),
		Subtitle:    fmt.Sprintf("%s의 매력을 느낄 수 있는 특별한 여행", regionName),
		Region:      regionCode,
		RegionName:  regionName,
		Duration:    opts.Duration,
		Theme:       []string{themeName},
		MainImage:   images[0],
		Images:      images,
		Rating:      averageRating(pois),
		ReviewCount: s.rng.Intn(50) + 10,
		LikeCount:   s.rng.Intn(200) + 50,
		ViewCount:   s.rng.Intn(1000) + 200,
		Price:       "문의",
		BestMonths:  BestMonthsForRegion(regionName),
		Summary:     fmt.Sprintf("%s의 %s 명소들을 둘러보는 알찬 여행 코스입니다.", regionName, themeName),
		Description: fmt.Sprintf("%s을 대표하는 %d개의 특별한 장소를 방문하여 지역의 매력을 온전히 느낄 수 있는 여행입니다. 각 장소마다 특별한 이야기와 체험이 기다리고 있어요.", regionName, len(pois)),
		Highlights: []string{
			fmt.Sprintf("%s 대표 명소 %d곳 방문", regionName, len(pois)),
			"지역 전문가가 추천하는 숨은 맛집",
			"포토존에서 인생샷 촬영",
			"지역 특산품 체험 및 구매",
		},
		Itinerary: GroupByDay(pois, opts.Duration),
		Tips: []string{
			"편안한 걷기 신발을 준비하세요",
			"날씨에 맞는 옷차림을 권장합니다",
			"현지 교통편을 미리 확인해주세요",
			"주요 관광지의 운영시간을 체크하세요",
		},
		Includes: []string{"전문 가이드", "주요 입장료", "지역 특산품 시식"},
		Excludes: []string{"개인 식비", "교통비", "개인 쇼핑"},
		Tags:     courseTags(regionName, themeName),
		Source:   courseSource,
	}, nil
}

// GroupByDay fills days in order, poisPerDay at a time. POIs beyond
// days*poisPerDay are dropped and empty trailing days are omitted.
func GroupByDay(pois []response_models.POI, duration string) []response_models.DayPlan {
	days := ParseDays(duration)
	itinerary := make([]response_models.DayPlan, 0, days)

	for day := 1; day <= days; day++ {
		start := (day - 1) * poisPerDay
		if start >= len(pois) {
			break
		}
		end := start + poisPerDay
		if end > len(pois) {
			end = len(pois)
		}
		places := make([]response_models.POI, end-start)
		copy(places, pois[start:end])

		itinerary = append(itinerary, response_models.DayPlan{
			Day:       day,
			Title:     fmt.Sprintf("%d일차", day),
			Places:    places,
			Summary:   fmt.Sprintf("%d개의 특별한 장소를 방문합니다", len(places)),
			TotalTime: fmt.Sprintf("약 %d시간", len(places)*2),
		})
	}
	return itinerary
}

// ParseDays reads the leading integer of a duration such as "2박 3일".
// Unparseable input gives 2, anything below 1 gives 1.
func ParseDays(duration string) int {
	s := strings.TrimSpace(duration)
	sign := 1
	if strings.HasPrefix(s, "-") {
		sign, s = -1, s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	n, digits := 0, 0
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			break
		}
		n = n*10 + int(r-'0')
		digits++
		if n > 365 {
			n = 365
		}
	}

	if digits == 0 {
		return defaultDays
	}
	if n*sign < 1 {
		return 1
	}
	return n
}

func ThemeDisplayName(theme string) string {
	if name, ok := themeDisplayNames[theme]; ok {
		return name
	}
	return generalThemeLabel
}

// BestMonthsForRegion looks the normalized name up in the seasonal table,
// retrying without a trailing 시/군/구.
func BestMonthsForRegion(regionName string) []int {
	normalized := NormalizeRegionName(regionName)
	months, ok := seasonalMonths[normalized]
	if !ok {
		months, ok = seasonalMonths[stripAdminSuffix(normalized)]
	}
	if !ok {
		months = defaultBestMonths
	}
	out := make([]int, len(months))
	copy(out, months)
	return out
}

func averageRating(pois []response_models.POI) float64 {
	if len(pois) == 0 {
		return defaultRating
	}
	total := 0.0
	for _, p := range pois {
		if p.Rating == 0 {
			total += 4.0
			continue
		}
		total += p.Rating
	}
	return math.Round(total/float64(len(pois))*10) / 10
}

func courseImages(regionName string, pois []response_models.POI) []string {
	region := url.PathEscape(regionName)
	images := []string{
		fmt.Sprintf("https://source.unsplash.com/800x600/?%s,korea,travel", region),
		fmt.Sprintf("https://source.unsplash.com/800x600/?%s,korea,landscape", region),
		fmt.Sprintf("https://source.unsplash.com/800x600/?%s,korea,culture", region),
	}
	for i, p := range pois {
		if i == maxPOIImages {
			break
		}
		images = append(images, fmt.Sprintf("https://source.unsplash.com/800x600/?%s,korea", url.PathEscape(p.Name)))
	}
	if len(images) > maxCourseImages {
		images = images[:maxCourseImages]
	}
	return images
}

func courseTags(regionName, themeName string) []string {
	tags := []string{regionName, "국내여행", "가족여행"}
	if themeName != generalThemeLabel {
		tags = append(tags, themeName)
	}
	return tags
}
