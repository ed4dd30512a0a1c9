package response_models

type Region struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name,omitempty"`
	ProvinceCode string `json:"province_code,omitempty"`
	Level        int    `json:"level"`
	FullName     string `json:"full_name"`
}

// DisplayName is the short name when the region has one.
func (r Region) DisplayName() string {
	if r.ShortName != "" {
		return r.ShortName
	}
	return r.Name
}

type TourismInfo struct {
	Themes   []string `json:"themes"`
	Keywords []string `json:"keywords"`
}

type RegionSuggestion struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

type ResolutionResult struct {
	IsSupported bool               `json:"is_supported"`
	RegionCode  string             `json:"region_code,omitempty"`
	RegionName  string             `json:"region_name,omitempty"`
	Exact       bool               `json:"exact"`
	Suggestions []RegionSuggestion `json:"suggestions"`
}

type RegionPage struct {
	Regions  []Region `json:"regions"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
	Total    int      `json:"total"`
}
