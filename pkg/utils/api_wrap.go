package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	RespondErrorWithData(c, code, message, nil)
}

// RespondErrorWithData is used when the client needs something to act on,
// e.g. region suggestions after an unsupported lookup.
func RespondErrorWithData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var genErr *GenerationError
	if errors.As(err, &genErr) && errors.Is(err, ErrUnsupportedRegion) {
		RespondErrorWithData(c, http.StatusNotFound, genErr.Message, gin.H{
			"error":       genErr.Code,
			"suggestions": genErr.Suggestions,
		})
		return
	}

	switch {
	case errors.Is(err, ErrRegionNotFound):
		RespondError(c, http.StatusNotFound, "Region not found")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrGenerationFailed):
		zap.L().Error("course generation failed", zap.Error(err))
		data := gin.H{"error": GenerationFailedCode}
		if genErr != nil {
			data["details"] = genErr.Details
		}
		RespondErrorWithData(c, http.StatusInternalServerError, "Course generation failed", data)
	case errors.Is(err, ErrTmapUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "Map provider unavailable")
	default:
		zap.L().Error("unhandled service error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
