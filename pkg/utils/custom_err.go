package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrRegionNotFound    = errors.New("region not found")
	ErrUnsupportedRegion = errors.New("unsupported region")
	ErrGenerationFailed  = errors.New("course generation failed")
	ErrNoPOIs            = errors.New("no points of interest")
	ErrTmapUnavailable   = errors.New("tmap api unavailable")
	ErrPixabayDisabled   = errors.New("pixabay api key not configured")
	ErrUpstreamStatus    = errors.New("upstream returned non-2xx status")
	ErrNoCoordinates     = errors.New("address did not geocode")
	ErrNoImage           = errors.New("no image found")
	ErrCacheBackend      = errors.New("course cache backend error")
)
