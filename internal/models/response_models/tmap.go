package response_models

type TmapStatus struct {
	Configured bool   `json:"configured"`
	Available  bool   `json:"available"`
	CheckedAt  string `json:"checked_at"`
}
