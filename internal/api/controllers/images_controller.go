package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"koreatrip/internal/models/request_models"
	"koreatrip/internal/services"
	"koreatrip/pkg/utils"
)

type ImagesController struct {
	imageService services.ImageServiceInterface
}

func NewImagesController(imageService services.ImageServiceInterface) *ImagesController {
	return &ImagesController{
		imageService: imageService,
	}
}

// ResolveImages godoc
// @Summary Resolve a representative image per region name
// @Tags Images
// @Accept json
// @Produce json
// @Param request body request_models.ResolveImagesRequest true "Region names (1-50)"
// @Success 200 {object} map[string]string
// @Router /images/resolve [post]
func (i *ImagesController) ResolveImages(c *gin.Context) {
	var req request_models.ResolveImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body (1-50 regions)")
		return
	}

	utils.RespondSuccess(c, i.imageService.ResolveImages(c.Request.Context(), req.Regions), "Images resolved")
}
