package services

import (
	"strings"

	"koreatrip/internal/models/request_models"
	"koreatrip/internal/repositories"
)

const (
	DefaultDuration   = "2박 3일"
	DefaultDifficulty = "easy"
)

// WithDefaults fills empty fields and trims whitespace.
func WithDefaults(opts request_models.CourseOptions) request_models.CourseOptions {
	out := request_models.CourseOptions{
		Theme:      strings.TrimSpace(opts.Theme),
		Duration:   strings.TrimSpace(opts.Duration),
		Difficulty: strings.TrimSpace(opts.Difficulty),
	}
	if out.Theme == "" {
		out.Theme = repositories.ThemeAll
	}
	if out.Duration == "" {
		out.Duration = DefaultDuration
	}
	if out.Difficulty == "" {
		out.Difficulty = DefaultDifficulty
	}
	return out
}

// CacheKey is regionCode followed by the defaulted options as name=value
// pairs sorted by field name, so equivalent requests share one entry.
func CacheKey(regionCode string, opts request_models.CourseOptions) string {
	o := WithDefaults(opts)
	var b strings.Builder
	b.WriteString(regionCode)
	b.WriteString("|difficulty=")
	b.WriteString(o.Difficulty)
	b.WriteString("|duration=")
	b.WriteString(o.Duration)
	b.WriteString("|theme=")
	b.WriteString(o.Theme)
	return b.String()
}
