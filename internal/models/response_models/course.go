package response_models

type DayPlan struct {
	Day       int    `json:"day"`
	Title     string `json:"title"`
	Places    []POI  `json:"places"`
	Summary   string `json:"summary"`
	TotalTime string `json:"total_time"`
}

type GenerationInfo struct {
	DynamicallyGenerated bool   `json:"dynamically_generated"`
	RegionCode           string `json:"region_code"`
	ExactMatch           bool   `json:"exact_match"`
	APIUsed              bool   `json:"api_used"`
	GeneratedAt          string `json:"generated_at"`
	SupportLevel         string `json:"support_level"`
}

type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Region      string    `json:"region"`
	RegionName  string    `json:"region_name"`
	Duration    string    `json:"duration"`
	Theme       []string  `json:"theme"`
	MainImage   string    `json:"main_image"`
	Images      []string  `json:"images"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	LikeCount   int       `json:"like_count"`
	ViewCount   int       `json:"view_count"`
	Price       string    `json:"price"`
	BestMonths  []int     `json:"best_months"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Highlights  []string  `json:"highlights"`
	Itinerary   []DayPlan `json:"itinerary"`
	Tips        []string  `json:"tips"`
	Includes    []string  `json:"includes"`
	Excludes    []string  `json:"excludes"`
	Tags        []string  `json:"tags"`
	Source      string    `json:"source"`

	GenerationInfo       *GenerationInfo `json:"generation_info,omitempty"`
	RegionAccuracy       string          `json:"region_accuracy,omitempty"`
	RecommendationReason string          `json:"recommendation_reason,omitempty"`
}

type GenerationResult struct {
	Course     *Course          `json:"course"`
	FromCache  bool             `json:"from_cache"`
	APIUsed    bool             `json:"api_used"`
	RegionInfo ResolutionResult `json:"region_info"`
}

type GenerationStats struct {
	TotalSupportedRegions int    `json:"total_supported_regions"`
	CachedCourses         int    `json:"cached_courses"`
	CacheHitRate          string `json:"cache_hit_rate"`
	CacheStatus           string `json:"cache_status"`
}

type CacheClearResult struct {
	Removed int `json:"removed"`
}
