package repositories

import (
	"fmt"

	"koreatrip/internal/models/response_models"
)

const (
	LevelProvince = 1
	LevelDistrict = 2
)

// Theme codes used by the tourism table and by course options.
const (
	ThemeAll      = "all"
	ThemeNature   = "nature"
	ThemeCulture  = "culture"
	ThemeHistory  = "history"
	ThemeFood     = "food"
	ThemeActivity = "activity"
)

var regionTourismInfo = map[string]response_models.TourismInfo{
	"seoul": {
		Themes:   []string{ThemeCulture, ThemeHistory},
		Keywords: []string{"궁궐", "한강", "명동", "강남"},
	},
	"busan": {
		Themes:   []string{ThemeNature, ThemeCulture},
		Keywords: []string{"해운대", "광안리", "감천문화마을"},
	},
	"jeju": {
		Themes:   []string{ThemeNature, ThemeActivity},
		Keywords: []string{"한라산", "성산일출봉", "협재해수욕장"},
	},
	"gyeongbuk_gyeongju": {
		Themes:   []string{ThemeHistory, ThemeCulture},
		Keywords: []string{"불국사", "석굴암", "첨성대"},
	},
	"jeonbuk_jeonju": {
		Themes:   []string{ThemeHistory, ThemeFood, ThemeCulture},
		Keywords: []string{"한옥마을", "비빔밥", "전통문화"},
	},
	"gangwon_gangneung": {
		Themes:   []string{ThemeNature, ThemeFood},
		Keywords: []string{"경포대", "안목해변", "커피거리"},
	},
	"jeonnam_yeosu": {
		Themes:   []string{ThemeNature},
		Keywords: []string{"밤바다", "엑스포", "오동도"},
	},
	"gangwon_sokcho": {
		Themes:   []string{ThemeNature},
		Keywords: []string{"설악산", "속초해수욕장", "청초호"},
	},
	"gyeongnam_tongyeong": {
		Themes:   []string{ThemeNature, ThemeCulture},
		Keywords: []string{"한산도", "미륵산", "동피랑마을"},
	},
}

// buildCatalog flattens the province and district tables: provinces first,
// then districts grouped by province.
func buildCatalog() ([]response_models.Region, error) {
	regions := make([]response_models.Region, 0, len(provinceRows)+230)
	shortNames := make(map[string]string, len(provinceRows))
	seen := make(map[string]struct{}, 256)

	for _, p := range provinceRows {
		if _, dup := seen[p.code]; dup {
			return nil, fmt.Errorf("duplicate region code %q", p.code)
		}
		seen[p.code] = struct{}{}
		shortNames[p.code] = p.shortName
		regions = append(regions, response_models.Region{
			Code:      p.code,
			Name:      p.name,
			ShortName: p.shortName,
			Level:     LevelProvince,
			FullName:  p.name,
		})
	}

	for _, group := range districtGroups {
		provinceShort, ok := shortNames[group.province]
		if !ok {
			return nil, fmt.Errorf("district group references unknown province %q", group.province)
		}
		for _, d := range group.districts {
			if _, dup := seen[d.code]; dup {
				return nil, fmt.Errorf("duplicate region code %q", d.code)
			}
			seen[d.code] = struct{}{}
			regions = append(regions, response_models.Region{
				Code:         d.code,
				Name:         d.name,
				ProvinceCode: group.province,
				Level:        LevelDistrict,
				FullName:     provinceShort + " " + d.name,
			})
		}
	}

	return regions, nil
}
