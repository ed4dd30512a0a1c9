package response_models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type POI struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Address       string      `json:"address"`
	Coordinates   Coordinates `json:"coordinates"`
	Category      string      `json:"category"`
	Description   string      `json:"description"`
	EstimatedTime string      `json:"estimated_time"`
	Tips          []string    `json:"tips"`
	Rating        float64     `json:"rating"`
	Region        string      `json:"region"`
	RegionCode    string      `json:"region_code,omitempty"`
}
