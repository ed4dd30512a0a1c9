package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"koreatrip/internal/models/request_models"
	"koreatrip/internal/models/response_models"
	"koreatrip/internal/services"
	"koreatrip/pkg/utils"
)

type CoursesController struct {
	generationService services.CourseGenerationServiceInterface
}

func NewCoursesController(generationService services.CourseGenerationServiceInterface) *CoursesController {
	return &CoursesController{
		generationService: generationService,
	}
}

// GenerateCourse godoc
// @Summary Generate (or fetch a cached) travel course for a region
// @Tags Courses
// @Accept json
// @Produce json
// @Param request body request_models.GenerateCourseRequest true "Region and options"
// @Success 200 {object} response_models.GenerationResult
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse "Unsupported region, data carries suggestions"
// @Failure 500 {object} utils.APIResponse
// @Router /courses/generate [post]
func (cc *CoursesController) GenerateCourse(c *gin.Context) {
	var req request_models.GenerateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := cc.generationService.GenerateRegionCourse(c.Request.Context(), req.Region, req.CourseOptions)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Course generated successfully")
}

// GenerateBatch generates courses for several regions; unsupported or failing ones are left out.
func (cc *CoursesController) GenerateBatch(c *gin.Context) {
	var req request_models.BatchCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body (1-20 regions)")
		return
	}

	courses := cc.generationService.GenerateMultipleCourses(c.Request.Context(), req.Regions, req.CourseOptions)
	utils.RespondSuccess(c, courses, "Courses generated successfully")
}

func (cc *CoursesController) GetStats(c *gin.Context) {
	utils.RespondSuccess(c, cc.generationService.GetGenerationStats(c.Request.Context()), "Generation stats fetched successfully")
}

func (cc *CoursesController) SweepCache(c *gin.Context) {
	removed := cc.generationService.ClearExpiredCache(c.Request.Context())
	utils.RespondSuccess(c, response_models.CacheClearResult{Removed: removed}, "Expired courses removed")
}

func (cc *CoursesController) ClearCache(c *gin.Context) {
	removed := cc.generationService.ClearAllCache(c.Request.Context())
	utils.RespondSuccess(c, response_models.CacheClearResult{Removed: removed}, "Course cache cleared")
}

func (cc *CoursesController) TmapStatus(c *gin.Context) {
	utils.RespondSuccess(c, cc.generationService.APIStatus(c.Request.Context()), "Tmap status checked")
}
