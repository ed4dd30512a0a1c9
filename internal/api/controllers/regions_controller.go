package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"koreatrip/internal/services"
	"koreatrip/pkg/utils"
)

type RegionsController struct {
	regionService services.RegionServiceInterface
}

func NewRegionsController(regionService services.RegionServiceInterface) *RegionsController {
	return &RegionsController{
		regionService: regionService,
	}
}

// ListRegions godoc
// @Summary List supported regions
// @Description Paginated list of the 17 provinces followed by their districts
// @Tags Regions
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} response_models.RegionPage
// @Failure 400 {object} utils.APIResponse
// @Router /regions [get]
func (r *RegionsController) ListRegions(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	regions, err := r.regionService.ListRegions(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, regions, "Regions fetched successfully")
}

// ResolveRegion godoc
// @Summary Resolve a free-form region identifier
// @Tags Regions
// @Produce json
// @Param q query string true "Region code, name or partial name"
// @Success 200 {object} response_models.ResolutionResult
// @Router /regions/resolve [get]
func (r *RegionsController) ResolveRegion(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	utils.RespondSuccess(c, r.regionService.Resolve(q), "Region resolved")
}

func (r *RegionsController) GetRegion(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		utils.RespondError(c, http.StatusBadRequest, "Region code is required")
		return
	}

	region, err := r.regionService.GetRegion(code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, region, "Region fetched successfully")
}
