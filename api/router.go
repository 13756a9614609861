package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/finder/api/handlers"
	"github.com/meghashyamc/finder/logger"
	"github.com/meghashyamc/finder/metrics"
	"github.com/meghashyamc/finder/services/recents"
	"github.com/meghashyamc/finder/validation"
	"github.com/spf13/afero"
)

func setupRoutes(router *gin.Engine, logger logger.Logger, fs afero.Fs, recentsService *recents.Service, validator *validation.Validator, homeDir string) {
	router.GET("/health", health())
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	handlers.SetupDirectory(router, logger, fs, recentsService, validator)
	handlers.SetupSidebar(router, logger, fs, homeDir)
	handlers.SetupRecents(router, logger, recentsService, validator)
	handlers.SetupItems(router, logger, fs, validator)
}

func health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

func newRouter(logger logger.Logger) *gin.Engine {
	router := gin.New()
	router.UseRawPath = true
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(logger))
	router.Use(_CORSMiddleware())

	return router
}
