package utils

import (
	"fmt"

	"koreatrip/internal/models/response_models"
)

const (
	UnsupportedRegionCode = "UNSUPPORTED_REGION"
	GenerationFailedCode  = "GENERATION_FAILED"
)

// GenerationError is what GenerateRegionCourse hands back to its caller.
// It unwraps to ErrUnsupportedRegion or ErrGenerationFailed.
type GenerationError struct {
	Code        string
	Message     string
	Details     string
	Suggestions []response_models.RegionSuggestion
	cause       error
}

func (e *GenerationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *GenerationError) Unwrap() error { return e.cause }

func NewUnsupportedRegionError(identifier string, suggestions []response_models.RegionSuggestion) *GenerationError {
	return &GenerationError{
		Code:        UnsupportedRegionCode,
		Message:     fmt.Sprintf("%s 지역은 현재 지원하지 않습니다.", identifier),
		Suggestions: suggestions,
		cause:       ErrUnsupportedRegion,
	}
}

func NewGenerationFailedError(identifier string, err error) *GenerationError {
	genErr := &GenerationError{
		Code:    GenerationFailedCode,
		Message: fmt.Sprintf("%s 지역의 여행 코스 생성에 실패했습니다.", identifier),
		cause:   ErrGenerationFailed,
	}
	if err != nil {
		genErr.Details = err.Error()
		genErr.cause = fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return genErr
}
