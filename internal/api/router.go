package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"koreatrip/internal/api/controllers"
	"koreatrip/internal/config"
	"koreatrip/pkg/metrics"
	"koreatrip/pkg/middleware"
)

func NewRouter(
	cfg config.Config,
	log *zap.Logger,
	collector *metrics.Collector,
	gatherer prometheus.Gatherer,
	regionsController *controllers.RegionsController,
	coursesController *controllers.CoursesController,
	imagesController *controllers.ImagesController,
) *gin.Engine {

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(collector.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins(),
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	RegisterRoutes(r, regionsController, coursesController, imagesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	regionsController *controllers.RegionsController,
	coursesController *controllers.CoursesController,
	imagesController *controllers.ImagesController) {

	regionsGroup := r.Group("/regions")
	regionsGroup.GET("", regionsController.ListRegions)
	regionsGroup.GET("/resolve", regionsController.ResolveRegion)
	regionsGroup.GET("/:code", regionsController.GetRegion)

	coursesGroup := r.Group("/courses")
	coursesGroup.POST("/generate", coursesController.GenerateCourse)
	coursesGroup.POST("/batch", coursesController.GenerateBatch)
	coursesGroup.GET("/stats", coursesController.GetStats)
	coursesGroup.POST("/cache/sweep", coursesController.SweepCache)
	coursesGroup.DELETE("/cache", coursesController.ClearCache)

	imagesGroup := r.Group("/images")
	imagesGroup.POST("/resolve", imagesController.ResolveImages)

	r.GET("/tmap/status", coursesController.TmapStatus)
}
